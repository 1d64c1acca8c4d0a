package roots

import (
	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// CauchyBound returns Cauchy's upper bound on the magnitude of any real
// root of p: 1 + max|a_i/a_n| over the non-leading coefficients. It fails
// with ErrZeroPolynomial for the zero polynomial.
func CauchyBound[T constraints.Float](p poly.Polynomial[T]) (T, error) {
	if p.IsZero() {
		return 0, ErrZeroPolynomial
	}

	lead := abs(p.LeadingCoefficient())
	coeffs := p.Coeffs()

	var maxRatio T
	for _, c := range coeffs[:len(coeffs)-1] {
		if r := abs(c) / lead; r > maxRatio {
			maxRatio = r
		}
	}

	return 1 + maxRatio, nil
}

// LagrangeBound returns Lagrange's upper bound on the magnitude of any
// real root of p: max(1, sum|a_i/a_n|) over the non-leading coefficients.
// It fails with ErrZeroPolynomial for the zero polynomial.
func LagrangeBound[T constraints.Float](p poly.Polynomial[T]) (T, error) {
	if p.IsZero() {
		return 0, ErrZeroPolynomial
	}

	lead := abs(p.LeadingCoefficient())
	coeffs := p.Coeffs()

	var sum T
	for _, c := range coeffs[:len(coeffs)-1] {
		sum += abs(c) / lead
	}

	if sum < 1 {
		sum = 1
	}
	return sum, nil
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
