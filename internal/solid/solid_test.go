package solid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gomagnet/internal/magnets"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

func orientation(x, y, z float64) [3]points.Angle {
	return [3]points.Angle{points.Degrees(x), points.Degrees(y), points.Degrees(z)}
}

func TestBuildBounds(t *testing.T) {
	p, err := magnets.NewPrism([3]float64{2, 1, 1}, points.NewPoint3(1, 0, 0), orientation(0, 0, 0), 1, points.Degrees(0), points.Degrees(90))
	require.NoError(t, err)
	s, err := magnets.NewSolenoid(0.5, 2, points.NewPoint3(0, 0, 3), orientation(0, 0, 0), 1)
	require.NoError(t, err)

	body, err := Build([]magnets.Magnet3D{p, s})
	require.NoError(t, err)

	bb := body.BoundingBox()
	assert.InDelta(t, -0.5, bb.Min.X, 1e-9)
	assert.InDelta(t, 2, bb.Max.X, 1e-9)
	assert.InDelta(t, -0.5, bb.Min.Z, 1e-9)
	assert.InDelta(t, 4, bb.Max.Z, 1e-9)
}

func TestBuildRotated(t *testing.T) {
	p, err := magnets.NewPrism([3]float64{4, 1, 1}, points.NewPoint3(0, 0, 0), orientation(0, 0, 90), 1, points.Degrees(0), points.Degrees(90))
	require.NoError(t, err)

	body, err := Build([]magnets.Magnet3D{p})
	require.NoError(t, err)

	bb := body.BoundingBox()
	assert.InDelta(t, 0.5, bb.Max.X, 1e-9)
	assert.InDelta(t, 2, bb.Max.Y, 1e-9)
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(nil)
	require.ErrorIs(t, err, ErrNoMagnets)

	_, err = Export(filepath.Join(t.TempDir(), "x.stl"), nil, 10)
	require.ErrorIs(t, err, ErrNoMagnets)
}

func TestExport(t *testing.T) {
	p, err := magnets.NewPrism([3]float64{1, 1, 1}, points.NewPoint3(0, 0, 0), orientation(0, 0, 0), 1, points.Degrees(0), points.Degrees(0))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cube.stl")
	n, err := Export(path, []magnets.Magnet3D{p}, 20)
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(84))
}
