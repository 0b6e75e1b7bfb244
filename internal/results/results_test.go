package results

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gomagnet/internal/config"
	"github.com/alexiusacademia/gomagnet/internal/magnets"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

func TestFloatsJSON(t *testing.T) {
	data, err := json.Marshal(Floats{1.5, math.NaN(), -2, math.Inf(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null, -2, null]`, string(data))

	var back Floats
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 4)
	assert.Equal(t, 1.5, back[0])
	assert.True(t, math.IsNaN(back[1]))
	assert.True(t, math.IsNaN(back[3]))

	data, err = json.Marshal(Floats(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveAndLoad(t *testing.T) {
	f := config.Demo()
	mags, err := f.Build2D()
	require.NoError(t, err)

	pts := []points.Point2{points.NewPoint2(0, 1), points.NewPoint2(0.5, 0)}
	fieldAt := []points.Point2{points.NewPoint2(0.1, 0.2), points.NewPoint2(math.NaN(), 0)}

	r := New("mm")
	_, err = uuid.Parse(r.ID)
	require.NoError(t, err)
	r.Add2D(mags, pts, fieldAt)

	path := filepath.Join(t.TempDir(), "out", "result.json")
	require.NoError(t, r.Save(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r.ID, back.ID)
	assert.Equal(t, "mm", back.Units)
	assert.True(t, r.CreatedAt.Equal(back.CreatedAt))

	require.Len(t, back.Magnets, 2)
	assert.Equal(t, config.KindRectangle, back.Magnets[0].Kind)
	assert.Equal(t, []float64{-1, 90}, back.Magnets[1].Magnetisation)

	assert.Equal(t, pts, back.Points.Points())
	got := back.Field.Points()
	assert.Equal(t, fieldAt[0], got[0])
	assert.True(t, math.IsNaN(got[1].X))

	require.NotNil(t, back.Summary)
	assert.Equal(t, 1, back.Summary.NonFinite)
	assert.Nil(t, back.Points3D)
}

func TestSaveFieldLayout(t *testing.T) {
	r := New("m")
	r.Add2D(nil, []points.Point2{points.NewPoint2(1, 2)}, []points.Point2{points.NewPoint2(3, 4)})
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, r.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, map[string]any{"x": []any{1.0}, "y": []any{2.0}}, raw["points"])
	assert.Equal(t, map[string]any{"x": []any{3.0}, "y": []any{4.0}}, raw["field"])
	assert.Equal(t, "m", raw["units"])
	assert.NotContains(t, raw, "field3d")
}

func TestAdd3D(t *testing.T) {
	o := [3]points.Angle{points.Degrees(0), points.Degrees(0), points.Degrees(0)}
	s, err := magnets.NewSolenoid(1, 2, points.NewPoint3(0, 0, 0), o, 1)
	require.NoError(t, err)

	pts := []points.Point3{points.NewPoint3(0, 0, 0)}
	fieldAt := []points.Point3{points.NewPoint3(0, 0, 0.7)}

	r := New("m")
	r.Add3D([]magnets.Magnet3D{s}, pts, fieldAt)
	path := filepath.Join(t.TempDir(), "r3.json")
	require.NoError(t, r.Save(path))

	back, err := Load(path)
	require.NoError(t, err)
	require.Len(t, back.Magnets3D, 1)
	assert.Equal(t, config.KindSolenoid, back.Magnets3D[0].Kind)
	assert.Equal(t, fieldAt, back.Field3D.Points())
	assert.InDelta(t, 0.7, back.Summary3D.Max, 1e-12)
	assert.Nil(t, back.Points)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	f := config.Demo()
	path := filepath.Join(t.TempDir(), "echo.toml")
	require.NoError(t, SaveConfig(path, f))

	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, f.Grid, back.Grid)
	require.Len(t, back.Magnets, 2)
	assert.Equal(t, f.Magnets[1].Center, back.Magnets[1].Center)
	assert.Equal(t, f.Magnets[1].Magnetisation, back.Magnets[1].Magnetisation)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
