// Package algebra implements the symbolic layer of the root-finding
// pipeline: polynomial greatest common divisors, content and primitive
// part over integer coefficients, and Yun's square-free decomposition.
package algebra

import (
	"errors"

	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// Errors returned by the algebra package.
var (
	// ErrNotInteger is returned by Content and PrimitivePart when the
	// polynomial has non-integer coefficients.
	ErrNotInteger = errors.New("algebra: coefficients are not integers")

	// ErrNotIntegerReducible is returned by Yun when the input cannot be
	// reduced to integer coefficients via content extraction.
	ErrNotIntegerReducible = errors.New("algebra: polynomial is not reducible to integer coefficients")
)

// Euclidean computes the greatest common divisor of p and q by the classic
// Euclidean algorithm over polynomials. The result is normalized (monic).
// Euclidean(0, 0) is the zero polynomial.
func Euclidean[T constraints.Float](p, q poly.Polynomial[T]) poly.Polynomial[T] {
	a, b := p, q

	for !b.IsZero() {
		r, err := a.Rem(b)
		if err != nil {
			break
		}
		a, b = b, r
	}

	return a.Normalize()
}

// ExtendedEuclidean computes the polynomials s, t and g such that
// g = gcd(p, q) = s*p + t*q, tracking the Bezout cofactors along the same
// quotient sequence as Euclidean. g is normalized (monic), and s and t are
// scaled accordingly so the identity holds exactly.
func ExtendedEuclidean[T constraints.Float](p, q poly.Polynomial[T]) (s, t, g poly.Polynomial[T]) {
	a, b := p, q
	s, sNext := poly.One[T](), poly.Zero[T]()
	t, tNext := poly.Zero[T](), poly.One[T]()

	for !b.IsZero() {
		quot, rem, err := a.Divide(b)
		if err != nil {
			break
		}

		a, b = b, rem
		s, sNext = sNext, s.Sub(quot.Mul(sNext))
		t, tNext = tNext, t.Sub(quot.Mul(tNext))
	}

	if a.IsZero() {
		return s, t, a
	}

	lead := a.LeadingCoefficient()
	return s.DivScalar(lead), t.DivScalar(lead), a.DivScalar(lead)
}
