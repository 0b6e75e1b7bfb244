package points

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is a 3D point or vector
type Point3 struct {
	X float64 `json:"x" toml:"x" yaml:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y"`
	Z float64 `json:"z" toml:"z" yaml:"z"`
}

// SphericalPoint is a 3D point in spherical form: Phi is the azimuth from +x
// in the xy-plane, Theta the polar angle from +z. Both in radians.
type SphericalPoint struct {
	Rho   float64 `json:"rho"`
	Phi   float64 `json:"phi"`
	Theta float64 `json:"theta"`
}

var (
	xAxis = r3.Vec{X: 1}
	yAxis = r3.Vec{Y: 1}
	zAxis = r3.Vec{Z: 1}
)

// NewPoint3 returns the point (x, y, z)
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) vec() r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

func fromVec3(v r3.Vec) Point3 { return Point3{X: v.X, Y: v.Y, Z: v.Z} }

func (p Point3) Add(q Point3) Point3 { return fromVec3(r3.Add(p.vec(), q.vec())) }

func (p Point3) Sub(q Point3) Point3 { return fromVec3(r3.Sub(p.vec(), q.vec())) }

func (p Point3) Scale(s float64) Point3 { return fromVec3(r3.Scale(s, p.vec())) }

func (p Point3) Neg() Point3 { return Point3{X: -p.X, Y: -p.Y, Z: -p.Z} }

func (p Point3) Dot(q Point3) float64 { return r3.Dot(p.vec(), q.vec()) }

// Magnitude returns the Euclidean norm
func (p Point3) Magnitude() float64 { return r3.Norm(p.vec()) }

// IsFinite reports whether all components are finite
func (p Point3) IsFinite() bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Rotate applies Rz(gamma)·Ry(beta)·Rx(alpha) to p. Angles in radians.
func (p Point3) Rotate(alpha, beta, gamma float64) Point3 {
	v := p.vec()
	if alpha != 0 {
		v = r3.NewRotation(alpha, xAxis).Rotate(v)
	}
	if beta != 0 {
		v = r3.NewRotation(beta, yAxis).Rotate(v)
	}
	if gamma != 0 {
		v = r3.NewRotation(gamma, zAxis).Rotate(v)
	}
	return fromVec3(v)
}

// InverseRotate undoes Rotate(alpha, beta, gamma)
func (p Point3) InverseRotate(alpha, beta, gamma float64) Point3 {
	v := p.vec()
	if gamma != 0 {
		v = r3.NewRotation(-gamma, zAxis).Rotate(v)
	}
	if beta != 0 {
		v = r3.NewRotation(-beta, yAxis).Rotate(v)
	}
	if alpha != 0 {
		v = r3.NewRotation(-alpha, xAxis).Rotate(v)
	}
	return fromVec3(v)
}

// ToSpherical converts to spherical form. Theta is NaN at the origin;
// callers must not rely on it there.
func (p Point3) ToSpherical() SphericalPoint {
	rho := p.Magnitude()
	return SphericalPoint{
		Rho:   rho,
		Phi:   math.Atan2(p.Y, p.X),
		Theta: math.Acos(p.Z / rho),
	}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", p.X, p.Y, p.Z)
}

// ToCartesian converts back to Cartesian form
func (sp SphericalPoint) ToCartesian() Point3 {
	sinPhi, cosPhi := math.Sincos(sp.Phi)
	sinTheta, cosTheta := math.Sincos(sp.Theta)
	return Point3{
		X: sp.Rho * sinTheta * cosPhi,
		Y: sp.Rho * sinTheta * sinPhi,
		Z: sp.Rho * cosTheta,
	}
}
