package magnets

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomagnet/internal/points"
	"github.com/alexiusacademia/gomagnet/internal/tolerance"
)

// Line is a finite current sheet seen edge-on: a polygon boundary segment
// carrying the out-of-plane surface current density kr (tesla). Beta is the
// angle of the segment's outward normal from +x; in the local frame the sheet
// lies on the y axis.
type Line struct {
	length float64
	center points.Point2
	beta   points.Angle
	kr     float64
}

// NewLine returns a sheet of the given length centered at center
func NewLine(length float64, center points.Point2, beta points.Angle, kr float64) (*Line, error) {
	if !positive(length) {
		return nil, geometryErrorf(KindLine, "length %g must be positive", length)
	}
	return &Line{length: length, center: center, beta: beta, kr: kr}, nil
}

func (l *Line) magnet2D() {}

func (l *Line) Kind() Kind { return KindLine }
func (l *Line) Center() points.Point2 { return l.center }
func (l *Line) Alpha() points.Angle { return l.beta }
func (l *Line) Beta() points.Angle { return l.beta }
func (l *Line) Length() float64 { return l.length }
func (l *Line) Kr() float64 { return l.kr }
func (l *Line) Size() []float64 { return []float64{l.length} }

// Magnetisation reports the sheet density as a magnitude along the normal
func (l *Line) Magnetisation() Magnetisation2D {
	return NewMagnetisation2D(l.kr, l.beta)
}

// Normal returns the outward unit normal
func (l *Line) Normal() points.Point2 {
	sin, cos := math.Sincos(l.beta.Rad())
	return points.Point2{X: cos, Y: sin}
}

// Outline returns the two end points
func (l *Line) Outline() []points.Point2 {
	n := l.Normal()
	half := points.Point2{X: -n.Y, Y: n.X}.Scale(l.length / 2)
	return []points.Point2{l.center.Sub(half), l.center.Add(half)}
}

func (l *Line) frame() points.Frame2 {
	// a sheet is unchanged by a half turn
	return points.Frame2{Center: l.center, Alpha: l.beta.Rad(), Period: math.Pi}
}

func (l *Line) String() string {
	return fmt.Sprintf("Line[L=%g at %s, β=%s, Kr=%.4g]", l.length, l.center, l.beta.ToDegrees(), l.kr)
}

// Field returns the flux density of the sheet at p
func (l *Line) Field(p points.Point2) (points.Point2, error) {
	if err := checkPoint2(KindLine, p); err != nil {
		return points.Point2{}, err
	}
	if math.Abs(l.kr) <= tolerance.FPCutoff {
		return points.Point2{}, nil
	}
	f := l.frame()
	local := f.ToLocal(p)
	return f.ToGlobal(SheetField(local.X, local.Y, l.length/2, l.kr)), nil
}

// SheetField returns the field at (x, y) of a sheet of half-length h lying on
// the y axis and carrying surface current density kr. A singular log term
// (evaluation on an end of the sheet) contributes zero.
func SheetField(x, y, h, kr float64) points.Point2 {
	x2, y2 := x*x, y*y
	ymh, yph := y-h, y+h
	prefac := kr / (4 * math.Pi)

	bx := prefac * math.Log((x2+ymh*ymh)/(x2+yph*yph))
	by := 2 * prefac * math.Atan2(2*h*x, x2+y2-h*h)
	return points.Point2{X: finiteOr0(bx), Y: finiteOr0(by)}
}
