package magnets

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomagnet/internal/points"
	"github.com/alexiusacademia/gomagnet/internal/tolerance"
)

// Prism is a uniformly magnetised rectangular block. Orientation holds the
// rotations about x, y and z applied as Rz·Ry·Rx; the magnetisation angles
// are measured in the block's frame.
type Prism struct {
	size        [3]float64
	a, b, c     float64
	center      points.Point3
	orientation [3]points.Angle
	mag         Magnetisation3D
}

// NewPrism builds a width×height×depth block magnetised with jr tesla along
// azimuth phi and polar angle theta.
func NewPrism(size [3]float64, center points.Point3, orientation [3]points.Angle, jr float64, phi, theta points.Angle) (*Prism, error) {
	for _, s := range size {
		if !positive(s) {
			return nil, geometryErrorf(KindPrism, "size %v must be positive", size)
		}
	}
	return &Prism{
		size:        size,
		a:           size[0] / 2,
		b:           size[1] / 2,
		c:           size[2] / 2,
		center:      center,
		orientation: orientation,
		mag:         NewMagnetisation3D(jr, phi, theta),
	}, nil
}

func (p *Prism) magnet3D() {}

func (p *Prism) Kind() Kind { return KindPrism }
func (p *Prism) Center() points.Point3 { return p.center }
func (p *Prism) Orientation() [3]points.Angle { return p.orientation }
func (p *Prism) Size() []float64 { return p.size[:] }
func (p *Prism) Magnetisation() Magnetisation3D { return p.mag }

// SetMagnetisation replaces the magnetisation
func (p *Prism) SetMagnetisation(jr float64, phi, theta points.Angle) {
	p.mag = NewMagnetisation3D(jr, phi, theta)
}

func (p *Prism) String() string {
	return fmt.Sprintf("Prism[%gx%gx%g at %s, J=%.3g T @ φ=%s θ=%s]",
		p.size[0], p.size[1], p.size[2], p.center, p.mag.jr, p.mag.phi, p.mag.theta)
}

func orientationFrame(center points.Point3, o [3]points.Angle) points.Frame3 {
	return points.Frame3{Center: center, Alpha: o[0].Rad(), Beta: o[1].Rad(), Gamma: o[2].Rad()}
}

// Field returns the flux density at pt. Inside the block this includes the
// magnetisation itself.
func (p *Prism) Field(pt points.Point3) (points.Point3, error) {
	if err := checkPoint3(KindPrism, pt); err != nil {
		return points.Point3{}, err
	}
	f := orientationFrame(p.center, p.orientation)
	l := f.ToLocal(pt)

	var field points.Point3
	if tolerance.IsActive(p.mag.jx, p.mag.jr) {
		h1, h2, h3 := cuboidAxialField(p.a, p.b, p.c, l.X, l.Y, l.Z, p.mag.jx)
		field = field.Add(points.Point3{X: h1, Y: h2, Z: h3})
	}
	if tolerance.IsActive(p.mag.jy, p.mag.jr) {
		h1, h2, h3 := cuboidAxialField(p.b, p.c, p.a, l.Y, l.Z, l.X, p.mag.jy)
		field = field.Add(points.Point3{X: h3, Y: h1, Z: h2})
	}
	if tolerance.IsActive(p.mag.jz, p.mag.jr) {
		h1, h2, h3 := cuboidAxialField(p.c, p.a, p.b, l.Z, l.X, l.Y, p.mag.jz)
		field = field.Add(points.Point3{X: h2, Y: h3, Z: h1})
	}

	if math.Abs(l.X) < p.a && math.Abs(l.Y) < p.b && math.Abs(l.Z) < p.c {
		field = field.Add(p.mag.Vector())
	}
	return f.ToGlobal(field), nil
}

// cuboidAxialField returns μ0·H of a block with half sizes a, b, c
// magnetised with j along its first axis, at (x, y, z) in that axis order.
// The first value is the component along the magnetisation.
func cuboidAxialField(a, b, c, x, y, z, j float64) (h1, h2, h3 float64) {
	var sum float64
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				sum += f1(a, b, c, sx*x, sy*y, sz*z)
			}
		}
	}
	pre := j / (4 * math.Pi)
	h1 = -pre * sum
	h2 = pre * finiteOr0(math.Log(f2(x-a, y, b, z, c)/f2(x+a, y, b, z, c)))
	h3 = pre * finiteOr0(math.Log(f2(x-a, z, c, y, b)/f2(x+a, z, c, y, b)))
	return h1, h2, h3
}

// f1 is the arctangent term of one octant. It is zero on the corner and edge
// lines where the expression is undefined.
func f1(a, b, c, x, y, z float64) float64 {
	ax, by, cz := a+x, b+y, c+z
	r := math.Sqrt(ax*ax + by*by + cz*cz)
	return finiteOr0(math.Atan(by * cz / (ax * r)))
}

// f2 is the log-argument ratio of the face at distance u along the
// magnetisation, for the transverse component along v (half size bv) with w
// the remaining coordinate (half size cw). It is zero when the denominator is
// not finite.
func f2(u, v, bv, w, cw float64) float64 {
	num := rootSum(u, v-bv, w+cw) * rootSum(u, v+bv, w-cw)
	den := rootSum(u, v+bv, w+cw) * rootSum(u, v-bv, w-cw)
	if math.IsNaN(den) || math.IsInf(den, 0) || den == 0 {
		return 0
	}
	return num / den
}

// rootSum returns w + √(u²+v²+w²) without cancellation for negative w
func rootSum(u, v, w float64) float64 {
	uv := u*u + v*v
	r := math.Sqrt(uv + w*w)
	if w >= 0 {
		return w + r
	}
	return uv / (r - w)
}
