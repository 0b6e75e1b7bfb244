package field

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexiusacademia/gomagnet/internal/magnets"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

func deg(v float64) points.Angle { return points.Degrees(v) }

func demoMagnets(t *testing.T) []magnets.Magnet2D {
	t.Helper()
	a, err := magnets.NewRectangle(1, 1, points.NewPoint2(-1, -0.5), deg(0), 1, deg(90))
	require.NoError(t, err)
	b, err := magnets.NewRectangle(1, 1, points.NewPoint2(1, -0.5), deg(0), -1, deg(90))
	require.NoError(t, err)
	c, err := magnets.NewCircle(0.4, points.NewPoint2(0, 1), deg(20), 0.8, deg(45))
	require.NoError(t, err)
	d, err := magnets.NewPolygon(magnets.Regular{Sides: 6, Dimension: magnets.Side, Size: 0.3}, points.NewPoint2(1.2, 1.2), deg(10), 1.1, deg(-30))
	require.NoError(t, err)
	return []magnets.Magnet2D{a, b, c, d}
}

func TestTotal2DEmpty(t *testing.T) {
	got, err := Total2D(nil, points.NewPoint2(1, 2))
	require.NoError(t, err)
	assert.Equal(t, points.Point2{}, got)

	got3, err := Total3D(nil, points.NewPoint3(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, points.Point3{}, got3)
}

func TestTotal2DOrderIndependent(t *testing.T) {
	mags := demoMagnets(t)
	reversed := make([]magnets.Magnet2D, len(mags))
	for i := range mags {
		reversed[i] = mags[len(mags)-1-i]
	}

	for _, p := range points.Grid2(points.NewPoint2(-2.03, -2.01), points.NewPoint2(2.02, 2.05), 7) {
		a, err := Total2D(mags, p)
		require.NoError(t, err)
		b, err := Total2D(reversed, p)
		require.NoError(t, err)
		assert.InDelta(t, a.X, b.X, 1e-12)
		assert.InDelta(t, a.Y, b.Y, 1e-12)

		var sum points.Point2
		for _, m := range mags {
			f, err := m.Field(p)
			require.NoError(t, err)
			sum = sum.Add(f)
		}
		assert.InDelta(t, sum.X, a.X, 1e-12)
		assert.InDelta(t, sum.Y, a.Y, 1e-12)
	}
}

func TestTotal2DOpposedPair(t *testing.T) {
	mags := demoMagnets(t)[:2]
	// on the symmetry axis the y components of the opposed pair cancel
	got, err := Total2D(mags, points.NewPoint2(0, 1))
	require.NoError(t, err)
	assert.InDelta(t, 0, got.Y, 1e-12)
	assert.Greater(t, got.X, 0.0)
}

func TestTotal2DError(t *testing.T) {
	_, err := Total2D(demoMagnets(t), points.NewPoint2(math.NaN(), 0))
	var ferr *magnets.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, err.Error(), "magnet 0")
}

func TestTotal3D(t *testing.T) {
	o := [3]points.Angle{deg(0), deg(0), deg(0)}
	p, err := magnets.NewPrism([3]float64{1, 1, 1}, points.NewPoint3(0, 0, 0), o, 1, deg(0), deg(0))
	require.NoError(t, err)
	s, err := magnets.NewSolenoid(1, 2, points.NewPoint3(0, 0, 0), o, 0.5)
	require.NoError(t, err)

	got, err := Total3D([]magnets.Magnet3D{p, s}, points.NewPoint3(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3+0.5/math.Sqrt2, got.Z, 1e-9)
}

func TestEvaluatorMatchesSequential(t *testing.T) {
	mags := demoMagnets(t)
	pts := points.Grid2(points.NewPoint2(-2.01, -2.02), points.NewPoint2(2.03, 2.04), 40)

	tests := []struct {
		name string
		e    *Evaluator
	}{
		{"zero value", &Evaluator{}},
		{"nil", nil},
		{"single worker", &Evaluator{Workers: 1, ChunkSize: 7}},
		{"many small chunks", &Evaluator{Workers: 8, ChunkSize: 1}},
		{"one chunk", &Evaluator{Workers: 3, ChunkSize: len(pts) * 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.e.Field2D(context.Background(), mags, pts)
			require.NoError(t, err)
			require.Len(t, got, len(pts))
			for i, p := range pts {
				want, err := Total2D(mags, p)
				require.NoError(t, err)
				assert.Equal(t, want, got[i], "point %d", i)
			}
		})
	}
}

func TestEvaluatorEmpty(t *testing.T) {
	got, err := (&Evaluator{}).Field2D(context.Background(), demoMagnets(t), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEvaluatorField3D(t *testing.T) {
	o := [3]points.Angle{deg(0), deg(0), deg(0)}
	p, err := magnets.NewPrism([3]float64{1, 1, 1}, points.NewPoint3(0, 0, 0), o, 1, deg(90), deg(90))
	require.NoError(t, err)
	mags := []magnets.Magnet3D{p}
	pts := points.Line3(points.NewPoint3(-2, 0.1, 0.2), points.NewPoint3(2, 0.1, 0.2), 33)

	got, err := (&Evaluator{Workers: 2, ChunkSize: 5}).Field3D(context.Background(), mags, pts)
	require.NoError(t, err)
	require.Len(t, got, len(pts))
	for i, q := range pts {
		want, err := Total3D(mags, q)
		require.NoError(t, err)
		assert.Equal(t, want, got[i])
	}
}

func TestEvaluatorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pts := points.Grid2(points.NewPoint2(-1, -1), points.NewPoint2(1, 1), 20)
	_, err := (&Evaluator{ChunkSize: 10}).Field2D(ctx, demoMagnets(t), pts)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluatorPropagatesErrors(t *testing.T) {
	pts := []points.Point2{points.NewPoint2(0, 0), points.NewPoint2(math.Inf(1), 0)}
	_, err := (&Evaluator{ChunkSize: 1}).Field2D(context.Background(), demoMagnets(t), pts)
	var ferr *magnets.FieldError
	require.ErrorAs(t, err, &ferr)
}

func TestEvaluatorWarnsOnNonFinite(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := &Evaluator{Logger: zap.New(core)}

	c, err := magnets.NewCircle(1, points.NewPoint2(0, 0), deg(0), 1, deg(90))
	require.NoError(t, err)
	pts := []points.Point2{points.NewPoint2(0, 0), points.NewPoint2(0, 2)}

	got, err := e.Field2D(context.Background(), []magnets.Magnet2D{c}, pts)
	require.NoError(t, err)
	assert.False(t, got[0].IsFinite())
	assert.True(t, got[1].IsFinite())

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(1), warnings[0].ContextMap()["count"])
}

func TestSummarize(t *testing.T) {
	field := []points.Point2{
		points.NewPoint2(3, 4),
		points.NewPoint2(0, 1),
		points.NewPoint2(math.NaN(), 0),
		points.NewPoint2(0, -2),
	}
	s := Summarize(field)

	assert.Equal(t, 4, s.Points)
	assert.Equal(t, 1, s.NonFinite)
	assert.InDelta(t, 8.0/3, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(13.0/3), s.StdDev, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 0, s.MaxIndex)
	assert.Contains(t, s.String(), "1 not finite")
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Points)
	assert.Equal(t, -1, s.MaxIndex)

	s3 := Summarize3([]points.Point3{points.NewPoint3(1, 2, 2)})
	assert.InDelta(t, 3, s3.Max, 1e-12)
	assert.Equal(t, 0.0, s3.StdDev)
}
