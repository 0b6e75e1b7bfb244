// Package elliptic evaluates Bulirsch's generalized complete elliptic
// integral
//
//	C(kc, p, c, s) = ∫₀^{π/2} (c cos²φ + s sin²φ) dφ / ((cos²φ + p sin²φ) √(cos²φ + kc² sin²φ))
//
// from which the Legendre forms follow:
//
//	K(k) = C(kc, 1, 1, 1)
//	E(k) = C(kc, 1, 1, kc²)
//	Π(n, k) = C(kc, n+1, 1, 1)
//
// with kc = √(1 - k²).
package elliptic

import (
	"math"

	"github.com/alexiusacademia/gomagnet/internal/tolerance"
)

// MaxIterations bounds the refinement loop. Convergence is quadratic, so
// well-conditioned inputs finish in well under ten iterations.
const MaxIterations = 64

// Cel returns C(kc, p, c, s). It returns NaN when kc is zero, where the
// integral diverges, and when the iteration fails to converge within
// MaxIterations.
func Cel(kc, p, c, s float64) float64 {
	if kc == 0 {
		return math.NaN()
	}

	k := math.Abs(kc)
	kk := k
	em := 1.0
	pp, cc, ss := p, c, s

	var f, g, q float64
	if p > 0 {
		pp = math.Sqrt(p)
		ss = s / pp
	} else {
		// Each line below depends on the one before it.
		f = kc * kc
		q = 1 - f
		g = 1 - pp
		f -= pp
		q *= ss - c*pp
		pp = math.Sqrt(f / g)
		cc = (c - ss) / g
		ss = -q/(g*g*pp) + cc*pp
	}

	f = cc
	cc += ss / pp
	g = k / pp
	ss = 2 * (ss + f*g)
	pp += g
	g = em
	em += k

	for i := 0; math.Abs(g-k) > g*tolerance.ErrTol; i++ {
		if i == MaxIterations {
			return math.NaN()
		}
		k = 2 * math.Sqrt(kk)
		kk = k * em
		f = cc
		cc += ss / pp
		g = kk / pp
		ss = 2 * (ss + f*g)
		pp += g
		g = em
		em += k
	}

	return (math.Pi / 2) * (ss + cc*em) / (em * (em + pp))
}

// K returns the complete elliptic integral of the first kind for the
// complementary modulus kc.
func K(kc float64) float64 {
	return Cel(kc, 1, 1, 1)
}

// E returns the complete elliptic integral of the second kind for the
// complementary modulus kc.
func E(kc float64) float64 {
	return Cel(kc, 1, 1, kc*kc)
}

// Pi returns the complete elliptic integral of the third kind with
// characteristic n for the complementary modulus kc.
func Pi(n, kc float64) float64 {
	return Cel(kc, n+1, 1, 1)
}
