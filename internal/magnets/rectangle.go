package magnets

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomagnet/internal/points"
	"github.com/alexiusacademia/gomagnet/internal/tolerance"
)

// Rectangle is the cross-section of an infinitely long rectangular bar.
// Its magnetisation angle is measured in the magnet's own frame.
type Rectangle struct {
	width, height float64
	a, b          float64
	center        points.Point2
	alpha         points.Angle
	mag           Magnetisation2D
}

// NewRectangle builds a width×height rectangle centered at center, rotated
// counter-clockwise by alpha and magnetised with jr tesla along phi.
func NewRectangle(width, height float64, center points.Point2, alpha points.Angle, jr float64, phi points.Angle) (*Rectangle, error) {
	if !positive(width) || !positive(height) {
		return nil, geometryErrorf(KindRectangle, "size %gx%g must be positive", width, height)
	}
	return &Rectangle{
		width:  width,
		height: height,
		a:      width / 2,
		b:      height / 2,
		center: center,
		alpha:  alpha,
		mag:    NewMagnetisation2D(jr, phi),
	}, nil
}

func (r *Rectangle) magnet2D() {}

func (r *Rectangle) Kind() Kind { return KindRectangle }
func (r *Rectangle) Center() points.Point2 { return r.center }
func (r *Rectangle) Alpha() points.Angle { return r.alpha }
func (r *Rectangle) Size() []float64 { return []float64{r.width, r.height} }
func (r *Rectangle) Magnetisation() Magnetisation2D { return r.mag }

// SetMagnetisation replaces the magnetisation
func (r *Rectangle) SetMagnetisation(jr float64, phi points.Angle) {
	r.mag = NewMagnetisation2D(jr, phi)
}

func (r *Rectangle) frame() points.Frame2 {
	return points.Frame2{Center: r.center, Alpha: r.alpha.Rad()}
}

// Outline returns the corners counter-clockwise from the bottom left
func (r *Rectangle) Outline() []points.Point2 {
	f := r.frame()
	corners := []points.Point2{{X: -r.a, Y: -r.b}, {X: r.a, Y: -r.b}, {X: r.a, Y: r.b}, {X: -r.a, Y: r.b}}
	for i, c := range corners {
		corners[i] = f.PointToGlobal(c)
	}
	return corners
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle[%gx%g at %s, α=%s, J=%.3g T @ %s]", r.width, r.height, r.center, r.alpha, r.mag.jr, r.mag.phi)
}

// Field returns the flux density at p
func (r *Rectangle) Field(p points.Point2) (points.Point2, error) {
	if err := checkPoint2(KindRectangle, p); err != nil {
		return points.Point2{}, err
	}
	f := r.frame()
	local := f.ToLocal(p)

	var field points.Point2
	if tolerance.IsActive(r.mag.jx, r.mag.jr) {
		field.X += finiteOr0(rectBxX(local.X, local.Y, r.a, r.b, r.mag.jx))
		field.Y += finiteOr0(rectByX(local.X, local.Y, r.a, r.b, r.mag.jx))
	}
	if tolerance.IsActive(r.mag.jy, r.mag.jr) {
		field.X += finiteOr0(rectBxY(local.X, local.Y, r.a, r.b, r.mag.jy))
		field.Y += finiteOr0(rectByY(local.X, local.Y, r.a, r.b, r.mag.jy))
	}
	return f.ToGlobal(field), nil
}

// rectBxX is the x component for magnetisation j along x
func rectBxX(x, y, a, b, j float64) float64 {
	xa2 := x*x - a*a
	bpy, bmy := b+y, b-y
	return j / (2 * math.Pi) * (math.Atan2(2*a*bpy, xa2+bpy*bpy) + math.Atan2(2*a*bmy, xa2+bmy*bmy))
}

// rectByX is the y component for magnetisation j along x
func rectByX(x, y, a, b, j float64) float64 {
	xpa, xma := (x+a)*(x+a), (x-a)*(x-a)
	ypb, ymb := (y+b)*(y+b), (y-b)*(y-b)
	return -j / (4 * math.Pi) * (math.Log((xma+ymb)/(xpa+ymb)) - math.Log((xma+ypb)/(xpa+ypb)))
}

// rectBxY is the x component for magnetisation j along y
func rectBxY(x, y, a, b, j float64) float64 {
	xpa, xma := (x+a)*(x+a), (x-a)*(x-a)
	ypb, ymb := (y+b)*(y+b), (y-b)*(y-b)
	return j / (4 * math.Pi) * (math.Log((xpa+ymb)/(xpa+ypb)) - math.Log((xma+ymb)/(xma+ypb)))
}

// rectByY is the y component for magnetisation j along y
func rectByY(x, y, a, b, j float64) float64 {
	yb2 := y*y - b*b
	xpa, xma := x+a, x-a
	return j / (2 * math.Pi) * (math.Atan2(2*b*xpa, xpa*xpa+yb2) - math.Atan2(2*b*xma, xma*xma+yb2))
}
