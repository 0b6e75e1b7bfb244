package magnets

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomagnet/internal/points"
)

// outlineSegments is the number of chords used to draw a circle
const outlineSegments = 72

// Circle is the cross-section of an infinitely long, uniformly magnetised
// cylinder.
type Circle struct {
	radius float64
	center points.Point2
	alpha  points.Angle
	mag    Magnetisation2D
}

// NewCircle builds a circle of the given radius. The magnetisation angle is
// measured in the magnet's frame, which is rotated by alpha.
func NewCircle(radius float64, center points.Point2, alpha points.Angle, jr float64, phi points.Angle) (*Circle, error) {
	if !positive(radius) {
		return nil, geometryErrorf(KindCircle, "radius %g must be positive", radius)
	}
	return &Circle{
		radius: radius,
		center: center,
		alpha:  alpha,
		mag:    NewMagnetisation2D(jr, phi),
	}, nil
}

func (c *Circle) magnet2D() {}

func (c *Circle) Kind() Kind { return KindCircle }
func (c *Circle) Center() points.Point2 { return c.center }
func (c *Circle) Alpha() points.Angle { return c.alpha }
func (c *Circle) Size() []float64 { return []float64{c.radius} }
func (c *Circle) Radius() float64 { return c.radius }
func (c *Circle) Magnetisation() Magnetisation2D { return c.mag }

// SetMagnetisation replaces the magnetisation
func (c *Circle) SetMagnetisation(jr float64, phi points.Angle) {
	c.mag = NewMagnetisation2D(jr, phi)
}

func (c *Circle) frame() points.Frame2 {
	return points.Frame2{Center: c.center, Alpha: c.alpha.Rad()}
}

// Outline returns the circle sampled as a closed polygon
func (c *Circle) Outline() []points.Point2 {
	out := make([]points.Point2, outlineSegments)
	for i := range out {
		phi := 2 * math.Pi * float64(i) / outlineSegments
		out[i] = points.PolarPoint{Rho: c.radius, Phi: phi}.ToCartesian().Add(c.center)
	}
	return out
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle[r=%g at %s, α=%s, J=%.3g T @ %s]", c.radius, c.center, c.alpha, c.mag.jr, c.mag.phi)
}

// Field returns the flux density at p. The expression is the exterior
// dipole field, B ∝ (R/ρ)²; p must not coincide with the center.
func (c *Circle) Field(p points.Point2) (points.Point2, error) {
	if err := checkPoint2(KindCircle, p); err != nil {
		return points.Point2{}, err
	}
	f := c.frame()
	local := f.ToLocal(p).ToPolar()

	polar := circlePolarField(c.radius, c.mag.jr, points.PolarPoint{
		Rho: local.Rho,
		Phi: local.Phi - c.mag.phi.Rad(),
	})
	return f.ToGlobal(points.VectorPolarToCartesian(polar, local.Phi)), nil
}

// circlePolarField returns (B_rho, B_phi) at p, where p.Phi is measured from
// the magnetisation axis.
func circlePolarField(radius, jr float64, p points.PolarPoint) points.PolarPoint {
	ratio := radius / p.Rho
	prefac := jr * ratio * ratio / 2
	sin, cos := math.Sincos(p.Phi)
	return points.PolarPoint{Rho: prefac * cos, Phi: prefac * sin}
}
