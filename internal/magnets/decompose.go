package magnets

import (
	"math"

	"github.com/alexiusacademia/gomagnet/internal/points"
	"github.com/alexiusacademia/gomagnet/internal/tolerance"
)

// Decomposition is a polygon expressed as boundary current sheets, together
// with the geometry computed in the same traversal.
type Decomposition struct {
	Segments []Line

	// SignedArea is negative for clockwise vertex loops
	SignedArea float64
	Centroid   points.Point2
}

// Area returns the unsigned area
func (d Decomposition) Area() float64 { return math.Abs(d.SignedArea) }

// Clockwise reports the winding of the source loop
func (d Decomposition) Clockwise() bool { return d.SignedArea < 0 }

// Field sums the contributions of all segments at p
func (d Decomposition) Field(p points.Point2) points.Point2 {
	var total points.Point2
	for i := range d.Segments {
		// segments never error for a finite point
		f, _ := d.Segments[i].Field(p)
		total = total.Add(f)
	}
	return total
}

// Decompose converts a closed vertex loop into boundary sheets for a body
// magnetised uniformly with j. Each edge from vertex i to i+1 (wrapping)
// becomes a sheet at the edge midpoint with outward normal n and density
// Kr = jx·ny − jy·nx. Signed area and centroid are accumulated in the same
// pass with the Shoelace formula.
func Decompose(vertices []points.Point2, j points.Point2) (Decomposition, error) {
	n := len(vertices)
	if n < 3 {
		return Decomposition{}, geometryErrorf(KindPolygon, "need at least 3 vertices, got %d", n)
	}

	if !j.IsFinite() {
		return Decomposition{}, geometryErrorf(KindPolygon, "magnetisation %s is not finite", j)
	}

	segments := make([]Line, n)
	var cross2, crossAbs, sumX, sumY float64

	for i := range n {
		vi, vj := vertices[i], vertices[(i+1)%n]
		if !vi.IsFinite() {
			return Decomposition{}, geometryErrorf(KindPolygon, "vertex %d %s is not finite", i, vi)
		}

		if tolerance.NearlyEqual(vi.X, vj.X) && tolerance.NearlyEqual(vi.Y, vj.Y) {
			return Decomposition{}, geometryErrorf(KindPolygon, "edge %d has zero length", i)
		}
		delta := vj.Sub(vi)
		length := delta.Magnitude()
		// (-dy, dx) points outward for a clockwise loop
		normal := points.Point2{X: -delta.Y, Y: delta.X}.Scale(1 / length)

		segments[i] = Line{
			length: length,
			center: vi.Add(vj).Scale(0.5),
			beta:   points.Radians(math.Atan2(normal.Y, normal.X)),
			kr:     j.X*normal.Y - j.Y*normal.X,
		}

		cross := vi.X*vj.Y - vj.X*vi.Y
		cross2 += cross
		crossAbs += math.Abs(vi.X*vj.Y) + math.Abs(vj.X*vi.Y)
		sumX += (vi.X + vj.X) * cross
		sumY += (vi.Y + vj.Y) * cross
	}

	// area lost to cancellation between the Shoelace terms
	if math.Abs(cross2) <= tolerance.ErrCutoff*crossAbs {
		return Decomposition{}, geometryErrorf(KindPolygon, "vertices enclose no area")
	}

	// counter-clockwise loop: the normals above point inward
	if cross2 > 0 {
		for i := range segments {
			segments[i].beta = points.Radians(flipAngle(segments[i].beta.Rad()))
			segments[i].kr = -segments[i].kr
		}
	}

	return Decomposition{
		Segments:   segments,
		SignedArea: cross2 / 2,
		Centroid:   points.Point2{X: sumX / (3 * cross2), Y: sumY / (3 * cross2)},
	}, nil
}

// flipAngle returns a+π wrapped into (-π, π]
func flipAngle(a float64) float64 {
	a += math.Pi
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
