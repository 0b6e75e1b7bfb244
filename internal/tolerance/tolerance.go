package tolerance

import "math"

// Numerical cutoffs shared by every field kernel

const (
	// FPCutoff is the alignment tolerance. A magnetisation component or a
	// rotation angle at or below it is treated as exactly zero.
	FPCutoff = 1e-6

	// ErrCutoff is the relative error used by NearlyEqual and by the
	// polygon zero-area test
	ErrCutoff = 1e-12

	// ErrTol is the convergence tolerance of the elliptic integral iteration
	ErrTol = 1e-6
)

// NearlyEqual reports whether a and b agree within ErrCutoff.
// Absolute error is used near zero, relative error elsewhere.
func NearlyEqual(a, b float64) bool {
	return NearlyEqualTol(a, b, ErrCutoff)
}

// NearlyEqualTol is NearlyEqual with a caller supplied tolerance
func NearlyEqualTol(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 || diff < tol {
		return diff < tol
	}
	return diff/math.Min(math.Abs(a)+math.Abs(b), math.MaxFloat64) < tol
}

// IsZeroAngle reports whether angle (radians) is a whole multiple of period
// within FPCutoff, i.e. whether rotating by it is the identity for a shape
// with that rotational symmetry.
func IsZeroAngle(angle, period float64) bool {
	r := math.Mod(angle, period)
	if r < 0 {
		r += period
	}
	return r <= FPCutoff || period-r <= FPCutoff
}

// IsActive reports whether the component c of a vector with magnitude m is
// large enough to evaluate.
func IsActive(c, m float64) bool {
	if m == 0 {
		return false
	}
	return math.Abs(c/m) > FPCutoff
}
