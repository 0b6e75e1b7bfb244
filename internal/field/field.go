// Package field superposes the fields of several magnets and evaluates them
// over point sets.
package field

import (
	"fmt"

	"github.com/alexiusacademia/gomagnet/internal/magnets"
	"github.com/alexiusacademia/gomagnet/internal/points"
)

// Total2D returns the sum of the fields of mags at p. An empty list gives the
// zero vector.
func Total2D(mags []magnets.Magnet2D, p points.Point2) (points.Point2, error) {
	var total points.Point2
	for i, m := range mags {
		f, err := m.Field(p)
		if err != nil {
			return points.Point2{}, fmt.Errorf("magnet %d (%s): %w", i, m.Kind(), err)
		}
		total = total.Add(f)
	}
	return total, nil
}

// Total3D is the 3D analogue of Total2D
func Total3D(mags []magnets.Magnet3D, p points.Point3) (points.Point3, error) {
	var total points.Point3
	for i, m := range mags {
		f, err := m.Field(p)
		if err != nil {
			return points.Point3{}, fmt.Errorf("magnet %d (%s): %w", i, m.Kind(), err)
		}
		total = total.Add(f)
	}
	return total, nil
}
