package points

import (
	"fmt"
	"math"
	"strings"
)

// Unit tags the unit an Angle value is stored in
type Unit int

const (
	// Degree is the default unit for user supplied angles
	Degree Unit = iota
	Radian
)

func (u Unit) String() string {
	if u == Radian {
		return "radians"
	}
	return "degrees"
}

// ParseUnit maps a unit string from a config file or flag to a Unit.
// Unrecognized strings map to Degree.
func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "radians", "radian", "rad", "rads":
		return Radian
	default:
		return Degree
	}
}

// Angle is a value tagged with its unit. Kernels consume Rad().
type Angle struct {
	value float64
	unit  Unit
}

// Degrees returns an angle of v degrees
func Degrees(v float64) Angle {
	return Angle{value: v, unit: Degree}
}

// Radians returns an angle of v radians
func Radians(v float64) Angle {
	return Angle{value: v, unit: Radian}
}

// NewAngle returns an angle of v in unit u
func NewAngle(v float64, u Unit) Angle {
	return Angle{value: v, unit: u}
}

// Value returns the stored number in the stored unit
func (a Angle) Value() float64 { return a.value }

// Unit returns the stored unit
func (a Angle) Unit() Unit { return a.unit }

// ToRadians returns the same angle tagged in radians.
// An angle already in radians is returned unchanged.
func (a Angle) ToRadians() Angle {
	if a.unit == Radian {
		return a
	}
	return Angle{value: a.value * math.Pi / 180, unit: Radian}
}

// ToDegrees returns the same angle tagged in degrees
func (a Angle) ToDegrees() Angle {
	if a.unit == Degree {
		return a
	}
	return Angle{value: a.value * 180 / math.Pi, unit: Degree}
}

// Rad returns the angle in radians
func (a Angle) Rad() float64 { return a.ToRadians().value }

// Deg returns the angle in degrees
func (a Angle) Deg() float64 { return a.ToDegrees().value }

// Add returns a+b in the unit of a
func (a Angle) Add(b Angle) Angle {
	if a.unit == Radian {
		return Radians(a.value + b.Rad())
	}
	return Degrees(a.value + b.Deg())
}

func (a Angle) String() string {
	if a.unit == Radian {
		return fmt.Sprintf("%.4f rad", a.value)
	}
	return fmt.Sprintf("%.2f°", a.value)
}
