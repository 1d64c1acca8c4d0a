package roots

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-poly/poly"
)

// ErrDegeneratePolynomial is returned by the complex solvers when a
// polynomial has degenerate coefficients (zero leading coefficient, too
// few coefficients).
var ErrDegeneratePolynomial = errors.New("roots: degenerate polynomial")

// Complex-solver iteration parameters.
const (
	complexMaxIterations = 500
	complexTol           = 1e-12
	complexResidualTol   = 1e-6
)

// NthRootsOfUnity returns the n complex solutions of z^n = 1, starting at
// 1 and proceeding counter-clockwise.
func NthRootsOfUnity(n int) []complex128 {
	if n <= 0 {
		return nil
	}

	out := make([]complex128, n)
	for k := range n {
		angle := 2 * math.Pi * float64(k) / float64(n)
		out[k] = cmplx.Rect(1, angle)
	}
	return out
}

// DurandKerner finds all complex roots of a polynomial using the
// Durand-Kerner (Weierstrass) simultaneous iteration. Coefficients are in
// ascending power order: coeff[0] + coeff[1]*z + ... + coeff[n]*z^n.
func DurandKerner(coeff []complex128) ([]complex128, error) {
	norm, n, err := normalizeComplex(coeff)
	if err != nil {
		return nil, err
	}

	roots := seedRoots(norm, n)

	for range complexMaxIterations {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)
			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := evalComplex(norm, roots[i]) / den
			roots[i] -= delta

			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < complexTol {
			return roots, nil
		}
	}

	return acceptByResidual(norm, roots)
}

// AberthEhrlich finds all complex roots using the Aberth-Ehrlich
// simultaneous iteration, the Newton-corrected variant of Durand-Kerner.
// Coefficients are in ascending power order.
func AberthEhrlich(coeff []complex128) ([]complex128, error) {
	norm, n, err := normalizeComplex(coeff)
	if err != nil {
		return nil, err
	}

	deriv := deriveComplex(norm)
	roots := seedRoots(norm, n)

	for range complexMaxIterations {
		maxDelta := 0.0

		for i := range n {
			pv := evalComplex(norm, roots[i])
			dv := evalComplex(deriv, roots[i])

			if cmplx.Abs(dv) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			ratio := pv / dv

			sum := complex(0, 0)
			for j := range n {
				if i != j {
					sum += 1 / (roots[i] - roots[j])
				}
			}

			delta := ratio / (1 - ratio*sum)
			roots[i] -= delta

			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < complexTol {
			return roots, nil
		}
	}

	return acceptByResidual(norm, roots)
}

// ComplexRoots finds all complex roots of a real polynomial via
// Aberth-Ehrlich.
func ComplexRoots(p poly.Polynomial[float64]) ([]complex128, error) {
	coeffs := p.Coeffs()
	c := make([]complex128, len(coeffs))
	for i, v := range coeffs {
		c[i] = complex(v, 0)
	}
	return AberthEhrlich(c)
}

// normalizeComplex validates the coefficients and divides through by the
// leading one. It returns the monic ascending coefficients and the degree.
func normalizeComplex(coeff []complex128) ([]complex128, int, error) {
	if len(coeff) < 2 {
		return nil, 0, ErrDegeneratePolynomial
	}

	lead := coeff[len(coeff)-1]
	if lead == 0 {
		return nil, 0, ErrDegeneratePolynomial
	}

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	return norm, len(coeff) - 1, nil
}

// seedRoots places the initial root estimates on a loose circle whose
// radius dominates the root magnitudes, with a small spiral and angular
// offset to break symmetry.
func seedRoots(norm []complex128, n int) []complex128 {
	radius := 0.0
	for _, c := range norm[:n] {
		if r := cmplx.Abs(c); r > radius {
			radius = r
		}
	}
	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}
	return roots
}

// acceptByResidual accepts a slow-converging result when every root still
// has a small residual, and reports ErrNoConvergence otherwise.
func acceptByResidual(norm, roots []complex128) ([]complex128, error) {
	for _, r := range roots {
		if cmplx.Abs(evalComplex(norm, r)) > complexResidualTol {
			return nil, ErrNoConvergence
		}
	}
	return roots, nil
}

// evalComplex evaluates ascending coefficients at z by Horner's method.
func evalComplex(coeff []complex128, z complex128) complex128 {
	v := coeff[len(coeff)-1]
	for i := len(coeff) - 2; i >= 0; i-- {
		v = v*z + coeff[i]
	}
	return v
}

// deriveComplex returns the ascending coefficients of the derivative.
func deriveComplex(coeff []complex128) []complex128 {
	if len(coeff) < 2 {
		return []complex128{0}
	}
	d := make([]complex128, len(coeff)-1)
	for i := 1; i < len(coeff); i++ {
		d[i-1] = complex(float64(i), 0) * coeff[i]
	}
	return d
}
