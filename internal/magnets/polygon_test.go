package magnets

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gomagnet/internal/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircumRadius(t *testing.T) {
	tests := []struct {
		name string
		spec Regular
		want float64
	}{
		{"square by apothem", Regular{Sides: 4, Dimension: Apothem, Size: 2}, 2 / math.Cos(math.Pi/4)},
		{"hexagon by side", Regular{Sides: 6, Dimension: Side, Size: 1}, 1},
		{"heptagon by radius", Regular{Sides: 7, Dimension: Radius, Size: 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.spec.CircumRadius(), tol)
		})
	}
}

func TestParseDimension(t *testing.T) {
	assert.Equal(t, Apothem, ParseDimension("Apothem"))
	assert.Equal(t, Side, ParseDimension(" side "))
	assert.Equal(t, Radius, ParseDimension("radius"))
	assert.Equal(t, Radius, ParseDimension("diameter"))
	assert.Equal(t, "side", Side.String())
}

func TestGenerateVerticesSquare(t *testing.T) {
	verts, err := GenerateVertices(Regular{Sides: 4, Dimension: Side, Size: 2}, pt(0, 0), points.Degrees(0))
	require.NoError(t, err)
	require.Len(t, verts, 4)

	want := []points.Point2{pt(1, 1), pt(1, -1), pt(-1, -1), pt(-1, 1)}
	for i := range want {
		assertPoint2(t, want[i], verts[i], 1e-12)
	}
}

func TestGenerateVerticesHexagon(t *testing.T) {
	verts, err := GenerateVertices(Regular{Sides: 6, Dimension: Radius, Size: 3}, pt(0, 0), points.Degrees(0))
	require.NoError(t, err)
	require.Len(t, verts, 6)

	assertPoint2(t, pt(1.5, 3*math.Sqrt(3)/2), verts[0], 1e-12)
	assertPoint2(t, pt(3, 0), verts[1], 1e-12)
	assertPoint2(t, pt(-1.5, 3*math.Sqrt(3)/2), verts[5], 1e-12)
}

func TestGenerateVerticesOddHasFlatBottom(t *testing.T) {
	verts, err := GenerateVertices(Regular{Sides: 3, Dimension: Radius, Size: 1}, pt(0, 0), points.Degrees(0))
	require.NoError(t, err)
	require.Len(t, verts, 3)

	assertPoint2(t, pt(0, 1), verts[1], 1e-12)
	assert.InDelta(t, -0.5, verts[0].Y, 1e-12)
	assert.InDelta(t, -0.5, verts[2].Y, 1e-12)
}

func TestGenerateVerticesPlacement(t *testing.T) {
	// a quarter turn counter-clockwise, then moved to (2, 1)
	verts, err := GenerateVertices(Regular{Sides: 4, Dimension: Side, Size: 2}, pt(2, 1), points.Degrees(90))
	require.NoError(t, err)
	assertPoint2(t, pt(1, 2), verts[0], 1e-12)
	assertPoint2(t, pt(3, 2), verts[1], 1e-12)
}

func TestGenerateVerticesInvalid(t *testing.T) {
	for _, spec := range []VertexSpec{
		Regular{Sides: 2, Dimension: Side, Size: 1},
		Regular{Sides: 0, Dimension: Side, Size: 1},
		Regular{Sides: 5, Dimension: Side, Size: -1},
		Custom{Vertices: []points.Point2{pt(0, 0), pt(1, 0)}},
		nil,
	} {
		_, err := GenerateVertices(spec, pt(0, 0), points.Degrees(0))
		var gerr *GeometryError
		require.ErrorAs(t, err, &gerr, "spec %#v", spec)
		assert.Equal(t, KindPolygon, gerr.Kind)
	}
}

func TestDecomposeSquare(t *testing.T) {
	verts := []points.Point2{pt(1, 1), pt(1, -1), pt(-1, -1), pt(-1, 1)}
	d, err := Decompose(verts, pt(0, 1))
	require.NoError(t, err)

	assert.InDelta(t, -4, d.SignedArea, tol)
	assert.InDelta(t, 4, d.Area(), tol)
	assert.True(t, d.Clockwise())
	assertPoint2(t, pt(0, 0), d.Centroid, tol)

	require.Len(t, d.Segments, 4)
	want := []struct {
		center points.Point2
		beta   float64
		kr     float64
	}{
		{pt(1, 0), 0, -1},
		{pt(0, -1), -math.Pi / 2, 0},
		{pt(-1, 0), math.Pi, 1},
		{pt(0, 1), math.Pi / 2, 0},
	}
	for i, w := range want {
		s := d.Segments[i]
		assertPoint2(t, w.center, s.Center(), tol)
		assert.InDelta(t, 2, s.Length(), tol)
		assert.InDelta(t, w.beta, s.Beta().Rad(), tol, "segment %d", i)
		assert.InDelta(t, w.kr, s.Kr(), tol, "segment %d", i)
	}
}

func TestDecomposeCentroid(t *testing.T) {
	d, err := Decompose([]points.Point2{pt(0, 0), pt(4, 0), pt(0, 3)}, pt(1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 6, d.SignedArea, tol)
	assert.False(t, d.Clockwise())
	assertPoint2(t, pt(4.0/3, 1), d.Centroid, tol)
}

func TestDecomposeWindingIndependent(t *testing.T) {
	cw := []points.Point2{pt(0, 2), pt(1.5, -1), pt(-0.5, -1.2), pt(-1, 0.4)}
	ccw := make([]points.Point2, len(cw))
	for i := range cw {
		ccw[i] = cw[len(cw)-1-i]
	}
	j := pt(0.3, -0.8)

	a, err := Decompose(cw, j)
	require.NoError(t, err)
	b, err := Decompose(ccw, j)
	require.NoError(t, err)

	assert.InDelta(t, a.Area(), b.Area(), tol)
	assertPoint2(t, a.Centroid, b.Centroid, tol)
	for _, p := range []points.Point2{pt(0, 0), pt(3, 1), pt(-2, -2), pt(0.2, 2.5)} {
		assertPoint2(t, a.Field(p), b.Field(p), 1e-12)
	}
}

func TestDecomposeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		verts []points.Point2
	}{
		{"too few", []points.Point2{pt(0, 0), pt(1, 1)}},
		{"repeated vertex", []points.Point2{pt(0, 0), pt(1, 0), pt(1, 0), pt(0, 1)}},
		{"repeated within rounding", []points.Point2{pt(0, 0), pt(0.3, 0.7), pt(0.3+1e-15, 0.7), pt(0, 1)}},
		{"collinear", []points.Point2{pt(0, 0), pt(1, 1), pt(2, 2)}},
		{"collinear off origin", []points.Point2{pt(0.1, 0.3), pt(0.2, 0.6), pt(0.7, 2.1), pt(0.3, 0.9)}},
		{"folded back", []points.Point2{pt(0, 0), pt(2, 1), pt(1, 0.5), pt(3, 1.5)}},
		{"not finite", []points.Point2{pt(0, 0), pt(math.Inf(1), 0), pt(0, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompose(tt.verts, pt(0, 1))
			var gerr *GeometryError
			require.ErrorAs(t, err, &gerr)
		})
	}
}

func TestDecomposeSmallScale(t *testing.T) {
	// a micrometre square is still a valid loop
	s := 1e-6
	d, err := Decompose([]points.Point2{pt(0, 0), pt(s, 0), pt(s, s), pt(0, s)}, pt(0, 1))
	require.NoError(t, err)
	assert.InDelta(t, s*s, d.SignedArea, 1e-24)
	assert.False(t, d.Clockwise())
}

func TestPolygonMatchesRectangle(t *testing.T) {
	tests := []struct {
		name       string
		center     points.Point2
		alpha, phi float64
	}{
		{"axis aligned", pt(0, 0), 0, 90},
		{"offset", pt(-1, 0.5), 0, 30},
		{"rotated", pt(0.5, -0.3), 30, 90},
		{"rotated and tilted", pt(0, 0), -75, 200},
	}
	samples := []points.Point2{
		pt(0, -1.01), pt(0, 0.01), pt(1.7, 0.3), pt(-2.2, -1.9), pt(0.4, 2.6), pt(0.11, 0.13),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect := mustRectangle(t, 2, 2, tt.center, tt.alpha, 1, tt.phi)
			poly, err := NewPolygon(Regular{Sides: 4, Dimension: Side, Size: 2}, tt.center, points.Degrees(tt.alpha), 1, points.Degrees(tt.phi))
			require.NoError(t, err)

			assert.InDelta(t, 4, poly.Area(), 1e-12)
			assertPoint2(t, tt.center, poly.Centroid(), 1e-12)

			for _, p := range samples {
				want, err := rect.Field(p)
				require.NoError(t, err)
				got, err := poly.Field(p)
				require.NoError(t, err)
				assertPoint2(t, want, got, 1e-9)
			}
		})
	}
}

func TestPolygonSetMagnetisation(t *testing.T) {
	poly, err := NewPolygon(Regular{Sides: 4, Dimension: Side, Size: 2}, pt(0, 0), points.Degrees(0), 1, points.Degrees(90))
	require.NoError(t, err)
	require.NoError(t, poly.SetMagnetisation(1, points.Degrees(0)))

	rect := mustRectangle(t, 2, 2, pt(0, 0), 0, 1, 0)
	p := pt(1.3, 0.4)
	want, err := rect.Field(p)
	require.NoError(t, err)
	got, err := poly.Field(p)
	require.NoError(t, err)
	assertPoint2(t, want, got, 1e-9)

	assert.InDelta(t, 1, poly.Magnetisation().Jx(), tol)

	// a rejected magnetisation leaves the sheets untouched
	err = poly.SetMagnetisation(math.NaN(), points.Degrees(0))
	var gerr *GeometryError
	require.ErrorAs(t, err, &gerr)
	assert.InDelta(t, 1, poly.Magnetisation().Jx(), tol)
	got, err = poly.Field(p)
	require.NoError(t, err)
	assertPoint2(t, want, got, 1e-9)
}

func TestPolygonSegmentsAreGlobal(t *testing.T) {
	poly, err := NewPolygon(Regular{Sides: 4, Dimension: Side, Size: 2}, pt(3, 0), points.Degrees(90), 1, points.Degrees(90))
	require.NoError(t, err)

	segs := poly.Segments()
	require.Len(t, segs, 4)
	// local right edge, turned to face up
	assertPoint2(t, pt(3, 1), segs[0].Center(), 1e-12)
	assert.InDelta(t, math.Pi/2, segs[0].Beta().Rad(), 1e-12)

	total := points.Point2{}
	p := pt(5, 2)
	for _, s := range segs {
		f, err := s.Field(p)
		require.NoError(t, err)
		total = total.Add(f)
	}
	want, err := poly.Field(p)
	require.NoError(t, err)
	assertPoint2(t, want, total, 1e-12)
}

func TestCustomPolygon(t *testing.T) {
	triangle := Custom{Vertices: []points.Point2{pt(-1, -1), pt(1, -1), pt(0, 1)}}
	poly, err := NewPolygon(triangle, pt(1, 1), points.Degrees(0), 1, points.Degrees(90))
	require.NoError(t, err)

	assert.Equal(t, 3, poly.NumVertices())
	assert.InDelta(t, 2, poly.Area(), tol)
	assert.Equal(t, []float64{2, 2}, poly.Size())
	assertPoint2(t, pt(1, 1-1.0/3), poly.Centroid(), tol)

	verts := poly.Vertices()
	assertPoint2(t, pt(0, 0), verts[0], tol)
	assertPoint2(t, pt(1, 2), verts[2], tol)

	got, err := poly.Field(pt(1, 4))
	require.NoError(t, err)
	assert.True(t, got.IsFinite())
	assert.Greater(t, got.Y, 0.0)
}
