// Package magnets holds the magnet descriptors and their closed-form field
// kernels.
//
// Every kernel maps the evaluation point into the magnet's local frame,
// evaluates there and rotates the result back. A term that is singular at
// the evaluation point (a corner, an edge) contributes zero instead of
// poisoning the total with NaN or Inf. Fields are in tesla, lengths in
// whatever unit the caller uses consistently.
package magnets

import (
	"math"

	"github.com/alexiusacademia/gomagnet/internal/points"
)

// Kind names a magnet shape
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindPolygon   Kind = "polygon"
	KindLine      Kind = "line"
	KindPrism     Kind = "prism"
	KindSolenoid  Kind = "solenoid"
)

// Magnet2D is the closed set of planar magnets
type Magnet2D interface {
	Kind() Kind
	Center() points.Point2
	Alpha() points.Angle
	Size() []float64
	Magnetisation() Magnetisation2D
	// Outline returns the boundary in global coordinates
	Outline() []points.Point2
	Field(p points.Point2) (points.Point2, error)

	magnet2D()
}

// Magnet3D is the closed set of 3D magnets
type Magnet3D interface {
	Kind() Kind
	Center() points.Point3
	Orientation() [3]points.Angle
	Size() []float64
	Magnetisation() Magnetisation3D
	Field(p points.Point3) (points.Point3, error)

	magnet3D()
}

// Magnetisation2D is a planar remnant magnetisation held in polar and
// Cartesian form. The zero value is an unmagnetised body.
type Magnetisation2D struct {
	jr     float64
	phi    points.Angle
	jx, jy float64
}

// NewMagnetisation2D returns magnitude jr (tesla) along phi from +x
func NewMagnetisation2D(jr float64, phi points.Angle) Magnetisation2D {
	sin, cos := math.Sincos(phi.Rad())
	return Magnetisation2D{jr: jr, phi: phi, jx: jr * cos, jy: jr * sin}
}

func (m Magnetisation2D) Jr() float64 { return m.jr }
func (m Magnetisation2D) Phi() points.Angle { return m.phi }
func (m Magnetisation2D) Jx() float64 { return m.jx }
func (m Magnetisation2D) Jy() float64 { return m.jy }
func (m Magnetisation2D) Vector() points.Point2 { return points.Point2{X: m.jx, Y: m.jy} }

// Magnetisation3D is a remnant magnetisation held in spherical and Cartesian
// form. Phi is the azimuth from +x, Theta the polar angle from +z.
type Magnetisation3D struct {
	jr         float64
	phi, theta points.Angle
	jx, jy, jz float64
}

// NewMagnetisation3D returns magnitude jr (tesla) along (phi, theta)
func NewMagnetisation3D(jr float64, phi, theta points.Angle) Magnetisation3D {
	sinPhi, cosPhi := math.Sincos(phi.Rad())
	sinTheta, cosTheta := math.Sincos(theta.Rad())
	return Magnetisation3D{
		jr:    jr,
		phi:   phi,
		theta: theta,
		jx:    jr * sinTheta * cosPhi,
		jy:    jr * sinTheta * sinPhi,
		jz:    jr * cosTheta,
	}
}

func (m Magnetisation3D) Jr() float64 { return m.jr }
func (m Magnetisation3D) Phi() points.Angle { return m.phi }
func (m Magnetisation3D) Theta() points.Angle { return m.theta }
func (m Magnetisation3D) Jx() float64 { return m.jx }
func (m Magnetisation3D) Jy() float64 { return m.jy }
func (m Magnetisation3D) Jz() float64 { return m.jz }
func (m Magnetisation3D) Vector() points.Point3 { return points.Point3{X: m.jx, Y: m.jy, Z: m.jz} }

// finiteOr0 returns v, or zero when v is NaN or infinite
func finiteOr0(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func checkPoint2(kind Kind, p points.Point2) error {
	if !p.IsFinite() {
		return &FieldError{Kind: kind, Msg: "evaluation point " + p.String() + " is not finite"}
	}
	return nil
}

func checkPoint3(kind Kind, p points.Point3) error {
	if !p.IsFinite() {
		return &FieldError{Kind: kind, Msg: "evaluation point " + p.String() + " is not finite"}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
