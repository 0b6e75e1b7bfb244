package field

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gomagnet/internal/magnets"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

// DefaultChunkSize is the number of points handed to one goroutine
const DefaultChunkSize = 256

// Evaluator computes the superposed field over many points in parallel. The
// zero value is ready to use.
type Evaluator struct {
	// Workers bounds the number of concurrent chunks. Zero means GOMAXPROCS.
	Workers int
	// ChunkSize is the number of points per chunk. Zero means DefaultChunkSize.
	ChunkSize int
	Logger    *zap.Logger
}

func (e *Evaluator) logger() *zap.Logger {
	if e == nil || e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Evaluator) limits() (workers, chunk int) {
	workers, chunk = runtime.GOMAXPROCS(0), DefaultChunkSize
	if e != nil && e.Workers > 0 {
		workers = e.Workers
	}
	if e != nil && e.ChunkSize > 0 {
		chunk = e.ChunkSize
	}
	return workers, chunk
}

// Field2D returns the total field of mags at every point of pts, in order.
func (e *Evaluator) Field2D(ctx context.Context, mags []magnets.Magnet2D, pts []points.Point2) ([]points.Point2, error) {
	start := time.Now()
	out, err := mapChunks(ctx, e, pts, func(p points.Point2) (points.Point2, error) {
		return Total2D(mags, p)
	})
	if err != nil {
		return nil, err
	}

	bad := 0
	for _, f := range out {
		if !f.IsFinite() {
			bad++
		}
	}
	e.report(len(mags), len(pts), bad, time.Since(start))
	return out, nil
}

// Field3D returns the total field of mags at every point of pts, in order.
func (e *Evaluator) Field3D(ctx context.Context, mags []magnets.Magnet3D, pts []points.Point3) ([]points.Point3, error) {
	start := time.Now()
	out, err := mapChunks(ctx, e, pts, func(p points.Point3) (points.Point3, error) {
		return Total3D(mags, p)
	})
	if err != nil {
		return nil, err
	}

	bad := 0
	for _, f := range out {
		if !f.IsFinite() {
			bad++
		}
	}
	e.report(len(mags), len(pts), bad, time.Since(start))
	return out, nil
}

func (e *Evaluator) report(nMags, nPoints, nonFinite int, elapsed time.Duration) {
	log := e.logger()
	log.Debug("field evaluated",
		zap.Int("magnets", nMags),
		zap.Int("points", nPoints),
		zap.Duration("elapsed", elapsed),
	)
	if nonFinite > 0 {
		log.Warn("field is not finite at some points",
			zap.Int("count", nonFinite),
			zap.Int("points", nPoints),
		)
	}
}

// mapChunks applies fn to every element of in, one goroutine per chunk, and
// returns the results in input order. Chunks write disjoint ranges of the
// output, so no locking is needed.
func mapChunks[T, R any](ctx context.Context, e *Evaluator, in []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	workers, size := e.limits()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < len(in); lo += size {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+size, len(in))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				r, err := fn(in[i])
				if err != nil {
					return err
				}
				out[i] = r
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the group context is always done after Wait
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
