package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gomagnet/internal/points"
)

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("Field", []string{"|B| max = 0.5 T", "points: 4"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "Field")
	assert.Contains(t, lines[3], "|B| max = 0.5 T")

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
}

func TestDrawFieldProfile(t *testing.T) {
	values := []float64{0, 0.1, 0.4, math.NaN(), 0.4, 0.1, 0}
	out := DrawFieldProfile(values, "|B| along x", 40, 8)
	assert.Contains(t, out, "|B| along x")
	assert.Greater(t, strings.Count(out, "\n"), 8)

	out = DrawFieldProfile([]float64{math.NaN(), math.Inf(1)}, "empty", 0, 0)
	assert.Contains(t, out, "no finite values")
}

func testGrid(t *testing.T, n int) ([]points.Point2, []points.Point2) {
	t.Helper()
	pts := points.Grid2(points.NewPoint2(-1, -2), points.NewPoint2(1, 2), n)
	field := make([]points.Point2, len(pts))
	for i, p := range pts {
		field[i] = points.NewPoint2(p.X, 2*p.Y)
	}
	return pts, field
}

func TestNewFieldGrid(t *testing.T) {
	pts, field := testGrid(t, 5)
	field[7] = points.NewPoint2(math.Inf(1), 0)

	g, err := NewFieldGrid(pts, field)
	require.NoError(t, err)

	c, r := g.Dims()
	assert.Equal(t, 5, c)
	assert.Equal(t, 5, r)
	assert.Equal(t, -1.0, g.X(0))
	assert.Equal(t, 1.0, g.X(4))
	assert.Equal(t, -2.0, g.Y(0))
	assert.Equal(t, 2.0, g.Y(4))

	assert.InDelta(t, math.Hypot(1, 4), g.Z(4, 4), 1e-12)
	assert.True(t, math.IsNaN(g.Z(1, 2)))
	assert.InDelta(t, 0, g.Min(), 1e-12)
	assert.InDelta(t, math.Hypot(1, 4), g.Max(), 1e-12)
}

func TestNewFieldGridErrors(t *testing.T) {
	pts, field := testGrid(t, 3)

	_, err := NewFieldGrid(pts, field[:4])
	assert.Error(t, err)

	_, err = NewFieldGrid(nil, nil)
	assert.Error(t, err)

	line := points.Line2(points.NewPoint2(0, 0), points.NewPoint2(1, 1), 4)
	_, err = NewFieldGrid(line, line)
	assert.Error(t, err)
}

func TestExportFieldMap(t *testing.T) {
	pts, field := testGrid(t, 10)
	g, err := NewFieldGrid(pts, field)
	require.NoError(t, err)

	square := []points.Point2{
		points.NewPoint2(0.5, 0.5), points.NewPoint2(0.5, -0.5),
		points.NewPoint2(-0.5, -0.5), points.NewPoint2(-0.5, 0.5),
	}
	path := filepath.Join(t.TempDir(), "plots", "map.png")
	require.NoError(t, ExportFieldMap(FieldMapData{Units: "m", Grid: g, Outlines: [][]points.Point2{square}}, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, ExportFieldMap(FieldMapData{}, path))
}

func TestExportFieldProfile(t *testing.T) {
	pts := points.Line2(points.NewPoint2(0, 0), points.NewPoint2(3, 4), 6)
	field := make([]points.Point2, len(pts))
	for i := range pts {
		field[i] = points.NewPoint2(float64(i), -float64(i))
	}
	field[2] = points.NewPoint2(math.NaN(), math.NaN())

	data := ProfileFromField(pts, field)
	require.Len(t, data.Distance, 6)
	assert.InDelta(t, 5, data.Distance[5], 1e-12)
	require.Len(t, data.Series, 3)
	assert.Equal(t, "|B|", data.Series[0].Name)

	dir := t.TempDir()
	require.NoError(t, ExportFieldProfile(data, filepath.Join(dir, "profile.svg")))
	_, err := os.Stat(filepath.Join(dir, "profile.svg"))
	require.NoError(t, err)

	// unknown extension falls back to PNG
	require.NoError(t, ExportFieldProfile(data, filepath.Join(dir, "profile")))
	_, err = os.Stat(filepath.Join(dir, "profile.png"))
	require.NoError(t, err)

	empty := ProfileData{Distance: []float64{0, 1}, Series: []Series{{"|B|", []float64{math.NaN(), math.NaN()}}}}
	assert.Error(t, ExportFieldProfile(empty, filepath.Join(dir, "empty.png")))
}

func TestProfileFromField3(t *testing.T) {
	pts := points.Line3(points.NewPoint3(0, 0, -1), points.NewPoint3(0, 0, 1), 3)
	field := []points.Point3{points.NewPoint3(0, 0, 1), points.NewPoint3(0, 0, 2), points.NewPoint3(0, 0, 1)}

	data := ProfileFromField3(pts, field)
	assert.Equal(t, []float64{0, 1, 2}, data.Distance)
	require.Len(t, data.Series, 4)
	assert.Equal(t, []float64{1, 2, 1}, data.Series[0].Values)
	assert.Equal(t, []float64{1, 2, 1}, data.Series[3].Values)
}
