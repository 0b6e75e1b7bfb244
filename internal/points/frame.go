package points

import (
	"math"

	"github.com/alexiusacademia/gomagnet/internal/tolerance"
)

// Frame2 maps global points into a magnet's local frame and local field
// vectors back out.
//
// Period is the rotational symmetry of the shape: rotation is skipped when
// Alpha is a whole multiple of it, which keeps axis-aligned magnets free of
// rotation round-off. Zero means 2π.
type Frame2 struct {
	Center Point2
	Alpha  float64
	Period float64
}

func (f Frame2) rotates() bool {
	period := f.Period
	if period == 0 {
		period = 2 * math.Pi
	}
	return !tolerance.IsZeroAngle(f.Alpha, period)
}

// ToLocal translates p by -Center and rotates it by -Alpha
func (f Frame2) ToLocal(p Point2) Point2 {
	local := p.Sub(f.Center)
	if f.rotates() {
		local = local.Rotate(-f.Alpha)
	}
	return local
}

// ToGlobal rotates a local field vector by +Alpha
func (f Frame2) ToGlobal(v Point2) Point2 {
	if f.rotates() {
		return v.Rotate(f.Alpha)
	}
	return v
}

// PointToGlobal maps a local point back into the global frame
func (f Frame2) PointToGlobal(p Point2) Point2 {
	return f.ToGlobal(p).Add(f.Center)
}

// Frame3 is the 3D analogue of Frame2 with orientation Rz(Gamma)·Ry(Beta)·Rx(Alpha)
type Frame3 struct {
	Center             Point3
	Alpha, Beta, Gamma float64
}

func (f Frame3) rotates() bool {
	for _, a := range [3]float64{f.Alpha, f.Beta, f.Gamma} {
		if !tolerance.IsZeroAngle(a, 2*math.Pi) {
			return true
		}
	}
	return false
}

// ToLocal translates p by -Center and applies the inverse orientation
func (f Frame3) ToLocal(p Point3) Point3 {
	local := p.Sub(f.Center)
	if f.rotates() {
		local = local.InverseRotate(f.Alpha, f.Beta, f.Gamma)
	}
	return local
}

// ToGlobal applies the orientation to a local field vector
func (f Frame3) ToGlobal(v Point3) Point3 {
	if f.rotates() {
		return v.Rotate(f.Alpha, f.Beta, f.Gamma)
	}
	return v
}
