package points

import "gonum.org/v1/gonum/floats"

// span returns n evenly spaced values from lo to hi inclusive
func span(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Line2 returns n points evenly spaced from start to stop inclusive
func Line2(start, stop Point2, n int) []Point2 {
	xs := span(start.X, stop.X, n)
	ys := span(start.Y, stop.Y, n)
	if len(xs) == 0 {
		return nil
	}
	pts := make([]Point2, len(xs))
	for i := range xs {
		pts[i] = Point2{X: xs[i], Y: ys[i]}
	}
	return pts
}

// Grid2 returns the n×n cartesian product of the x and y spans between
// start and stop. The x coordinate varies slowest.
func Grid2(start, stop Point2, n int) []Point2 {
	xs := span(start.X, stop.X, n)
	ys := span(start.Y, stop.Y, n)
	if len(xs) == 0 {
		return nil
	}
	pts := make([]Point2, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			pts = append(pts, Point2{X: x, Y: y})
		}
	}
	return pts
}

// Line3 returns n points evenly spaced from start to stop inclusive
func Line3(start, stop Point3, n int) []Point3 {
	xs := span(start.X, stop.X, n)
	ys := span(start.Y, stop.Y, n)
	zs := span(start.Z, stop.Z, n)
	if len(xs) == 0 {
		return nil
	}
	pts := make([]Point3, len(xs))
	for i := range xs {
		pts[i] = Point3{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return pts
}

// Plane3 returns an n×n grid in the plane z = start.Z spanning the x and y
// ranges of start and stop.
func Plane3(start, stop Point3, n int) []Point3 {
	flat := Grid2(Point2{X: start.X, Y: start.Y}, Point2{X: stop.X, Y: stop.Y}, n)
	if flat == nil {
		return nil
	}
	pts := make([]Point3, len(flat))
	for i, p := range flat {
		pts[i] = Point3{X: p.X, Y: p.Y, Z: start.Z}
	}
	return pts
}

// Zip pairs parallel coordinate slices. The slices must have equal length.
func Zip(xs, ys []float64) []Point2 {
	pts := make([]Point2, len(xs))
	for i := range xs {
		pts[i] = Point2{X: xs[i], Y: ys[i]}
	}
	return pts
}

// Unzip splits points into parallel coordinate slices
func Unzip(pts []Point2) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
