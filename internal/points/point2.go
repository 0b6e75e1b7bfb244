package points

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point2 is a 2D point or vector
type Point2 struct {
	X float64 `json:"x" toml:"x" yaml:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y"`
}

// PolarPoint is a 2D point in polar form. Phi is measured from +x in radians.
type PolarPoint struct {
	Rho float64 `json:"rho"`
	Phi float64 `json:"phi"`
}

// NewPoint2 returns the point (x, y)
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

func (p Point2) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec2(v r2.Vec) Point2 { return Point2{X: v.X, Y: v.Y} }

func (p Point2) Add(q Point2) Point2 { return fromVec2(r2.Add(p.vec(), q.vec())) }

func (p Point2) Sub(q Point2) Point2 { return fromVec2(r2.Sub(p.vec(), q.vec())) }

func (p Point2) Scale(s float64) Point2 { return fromVec2(r2.Scale(s, p.vec())) }

func (p Point2) Neg() Point2 { return Point2{X: -p.X, Y: -p.Y} }

func (p Point2) Dot(q Point2) float64 { return r2.Dot(p.vec(), q.vec()) }

// Magnitude returns the Euclidean norm
func (p Point2) Magnitude() float64 { return math.Hypot(p.X, p.Y) }

// Unit returns p scaled to length one. The zero vector is returned unchanged.
func (p Point2) Unit() Point2 {
	m := p.Magnitude()
	if m == 0 {
		return p
	}
	return p.Scale(1 / m)
}

// Distance returns |p - q|
func (p Point2) Distance(q Point2) float64 { return p.Sub(q).Magnitude() }

// Rotate rotates p counter-clockwise by alpha radians about the origin
func (p Point2) Rotate(alpha float64) Point2 {
	return p.RotateAbout(alpha, Point2{})
}

// RotateAbout rotates p counter-clockwise by alpha radians about center
func (p Point2) RotateAbout(alpha float64, center Point2) Point2 {
	if alpha == 0 {
		return p
	}
	return fromVec2(r2.Rotate(p.vec(), alpha, center.vec()))
}

// IsFinite reports whether both components are finite
func (p Point2) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ToPolar converts to polar form
func (p Point2) ToPolar() PolarPoint {
	return PolarPoint{Rho: p.Magnitude(), Phi: math.Atan2(p.Y, p.X)}
}

func (p Point2) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", p.X, p.Y)
}

// ToCartesian converts back to Cartesian form
func (pp PolarPoint) ToCartesian() Point2 {
	sin, cos := math.Sincos(pp.Phi)
	return Point2{X: pp.Rho * cos, Y: pp.Rho * sin}
}

// VectorPolarToCartesian converts a vector given by its radial and azimuthal
// components (Rho, Phi fields of v) at a point with polar angle phi into
// Cartesian components.
func VectorPolarToCartesian(v PolarPoint, phi float64) Point2 {
	sin, cos := math.Sincos(phi)
	return Point2{
		X: v.Rho*cos - v.Phi*sin,
		Y: v.Rho*sin + v.Phi*cos,
	}
}
