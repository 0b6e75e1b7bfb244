package magnets

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gomagnet/internal/points"
)

// Dimension selects which size a regular polygon is specified by
type Dimension int

const (
	Apothem Dimension = iota
	Side
	Radius
)

func (d Dimension) String() string {
	switch d {
	case Apothem:
		return "apothem"
	case Side:
		return "side"
	default:
		return "radius"
	}
}

// ParseDimension maps "apothem", "side" or "radius". Anything else is Radius.
func ParseDimension(s string) Dimension {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "apothem":
		return Apothem
	case "side", "sidelength", "side_length", "length":
		return Side
	default:
		return Radius
	}
}

// VertexSpec describes how a polygon's vertices are produced.
// Implemented by Regular and Custom only.
type VertexSpec interface {
	localVertices() ([]points.Point2, error)
}

// Regular is a regular polygon with Sides vertices and the given Size,
// interpreted according to Dimension.
type Regular struct {
	Sides     int
	Dimension Dimension
	Size      float64
}

// Custom is an explicit vertex loop relative to the polygon center, in the
// polygon's own frame. Either winding is accepted.
type Custom struct {
	Vertices []points.Point2
}

// CircumRadius returns the circumscribed radius of the regular polygon
func (r Regular) CircumRadius() float64 {
	n := float64(r.Sides)
	switch r.Dimension {
	case Apothem:
		return r.Size / math.Cos(math.Pi/n)
	case Side:
		return r.Size / 2 / math.Sin(math.Pi/n)
	default:
		return r.Size
	}
}

// offset rotates the vertex fan so even polygons have a flat top edge and
// odd polygons a flat bottom edge.
func (r Regular) offset() float64 {
	n := float64(r.Sides)
	if r.Sides%2 == 0 {
		return math.Pi / n
	}
	return math.Pi/n + math.Pi
}

func (r Regular) localVertices() ([]points.Point2, error) {
	if r.Sides < 3 {
		return nil, geometryErrorf(KindPolygon, "regular polygon needs at least 3 sides, got %d", r.Sides)
	}
	if !positive(r.Size) {
		return nil, geometryErrorf(KindPolygon, "%s %g must be positive", r.Dimension, r.Size)
	}

	radius := r.CircumRadius()
	off := r.offset()
	n := float64(r.Sides)
	verts := make([]points.Point2, r.Sides)
	for k := range verts {
		// the sin/cos order walks the fan clockwise
		sin, cos := math.Sincos(2*math.Pi*float64(k)/n + off)
		verts[k] = points.Point2{X: radius * sin, Y: radius * cos}
	}
	return verts, nil
}

func (c Custom) localVertices() ([]points.Point2, error) {
	if len(c.Vertices) < 3 {
		return nil, geometryErrorf(KindPolygon, "custom polygon needs at least 3 vertices, got %d", len(c.Vertices))
	}
	verts := make([]points.Point2, len(c.Vertices))
	copy(verts, c.Vertices)
	return verts, nil
}

// GenerateVertices returns the vertex loop described by spec, rotated
// counter-clockwise by orientation and translated to center.
func GenerateVertices(spec VertexSpec, center points.Point2, orientation points.Angle) ([]points.Point2, error) {
	if spec == nil {
		return nil, geometryErrorf(KindPolygon, "no vertex specification")
	}
	verts, err := spec.localVertices()
	if err != nil {
		return nil, err
	}
	f := points.Frame2{Center: center, Alpha: orientation.Rad()}
	for i, v := range verts {
		verts[i] = f.PointToGlobal(v)
	}
	return verts, nil
}

// Polygon is the cross-section of an infinitely long polygonal bar. Its
// field is the superposition of the boundary sheets of its decomposition,
// which is rebuilt whenever the magnetisation changes.
type Polygon struct {
	spec   VertexSpec
	center points.Point2
	alpha  points.Angle
	mag    Magnetisation2D

	local  []points.Point2
	decomp Decomposition
}

// NewPolygon builds a polygon from spec. The magnetisation angle is
// measured in the polygon's frame, which is rotated by alpha.
func NewPolygon(spec VertexSpec, center points.Point2, alpha points.Angle, jr float64, phi points.Angle) (*Polygon, error) {
	if spec == nil {
		return nil, geometryErrorf(KindPolygon, "no vertex specification")
	}
	local, err := spec.localVertices()
	if err != nil {
		return nil, err
	}
	p := &Polygon{spec: spec, center: center, alpha: alpha, local: local}
	if err := p.rebuild(NewMagnetisation2D(jr, phi)); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Polygon) rebuild(mag Magnetisation2D) error {
	d, err := Decompose(p.local, mag.Vector())
	if err != nil {
		return err
	}
	p.mag = mag
	p.decomp = d
	return nil
}

// SetMagnetisation replaces the magnetisation and rebuilds the boundary
// sheets. On error the polygon keeps its previous magnetisation.
func (p *Polygon) SetMagnetisation(jr float64, phi points.Angle) error {
	return p.rebuild(NewMagnetisation2D(jr, phi))
}

func (p *Polygon) magnet2D() {}

func (p *Polygon) Kind() Kind { return KindPolygon }
func (p *Polygon) Center() points.Point2 { return p.center }
func (p *Polygon) Alpha() points.Angle { return p.alpha }
func (p *Polygon) Magnetisation() Magnetisation2D { return p.mag }
func (p *Polygon) Spec() VertexSpec { return p.spec }
func (p *Polygon) NumVertices() int { return len(p.local) }

// Size returns the width and height of the unrotated bounding box
func (p *Polygon) Size() []float64 {
	minX, maxX := p.local[0].X, p.local[0].X
	minY, maxY := p.local[0].Y, p.local[0].Y
	for _, v := range p.local[1:] {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	return []float64{maxX - minX, maxY - minY}
}

func (p *Polygon) frame() points.Frame2 {
	return points.Frame2{Center: p.center, Alpha: p.alpha.Rad()}
}

// Vertices returns the vertex loop in global coordinates
func (p *Polygon) Vertices() []points.Point2 {
	f := p.frame()
	out := make([]points.Point2, len(p.local))
	for i, v := range p.local {
		out[i] = f.PointToGlobal(v)
	}
	return out
}

// Outline is Vertices
func (p *Polygon) Outline() []points.Point2 { return p.Vertices() }

// Area returns the unsigned area
func (p *Polygon) Area() float64 { return p.decomp.Area() }

// Centroid returns the centroid in global coordinates
func (p *Polygon) Centroid() points.Point2 {
	return p.frame().PointToGlobal(p.decomp.Centroid)
}

// Segments returns the boundary sheets in global coordinates
func (p *Polygon) Segments() []Line {
	f := p.frame()
	out := make([]Line, len(p.decomp.Segments))
	for i, s := range p.decomp.Segments {
		s.center = f.PointToGlobal(s.center)
		s.beta = points.Radians(s.beta.Rad() + p.alpha.Rad())
		out[i] = s
	}
	return out
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon[%d vertices at %s, α=%s, J=%.3g T @ %s]", len(p.local), p.center, p.alpha, p.mag.jr, p.mag.phi)
}

// Field returns the flux density at pt
func (p *Polygon) Field(pt points.Point2) (points.Point2, error) {
	if err := checkPoint2(KindPolygon, pt); err != nil {
		return points.Point2{}, err
	}
	f := p.frame()
	return f.ToGlobal(p.decomp.Field(f.ToLocal(pt))), nil
}
