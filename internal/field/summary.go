package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/alexiusacademia/gomagnet/internal/points"
)

// Summary describes the flux density magnitude over a point set. Non-finite
// vectors are counted and left out of the statistics.
type Summary struct {
	Points    int     `json:"points"`
	NonFinite int     `json:"nonFinite"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"stdDev"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	MaxIndex  int     `json:"maxIndex"`
}

// Magnitudes returns |B| for every vector
func Magnitudes(field []points.Point2) []float64 {
	out := make([]float64, len(field))
	for i, f := range field {
		out[i] = f.Magnitude()
	}
	return out
}

// Magnitudes3 returns |B| for every vector
func Magnitudes3(field []points.Point3) []float64 {
	out := make([]float64, len(field))
	for i, f := range field {
		out[i] = f.Magnitude()
	}
	return out
}

// Summarize computes a Summary of a 2D field
func Summarize(field []points.Point2) Summary {
	return summarize(Magnitudes(field))
}

// Summarize3 computes a Summary of a 3D field
func Summarize3(field []points.Point3) Summary {
	return summarize(Magnitudes3(field))
}

func summarize(mags []float64) Summary {
	s := Summary{Points: len(mags), MaxIndex: -1}

	finite := make([]float64, 0, len(mags))
	index := make([]int, 0, len(mags))
	for i, m := range mags {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			s.NonFinite++
			continue
		}
		finite = append(finite, m)
		index = append(index, i)
	}
	if len(finite) == 0 {
		return s
	}

	s.Mean = stat.Mean(finite, nil)
	if len(finite) > 1 {
		s.StdDev = stat.StdDev(finite, nil)
	}
	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	s.MaxIndex = index[floats.MaxIdx(finite)]
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("|B| mean=%.6g std=%.6g min=%.6g max=%.6g (%d points, %d not finite)",
		s.Mean, s.StdDev, s.Min, s.Max, s.Points, s.NonFinite)
}
