// Package refine provides scalar root refinement for real-valued
// functions: interval bisection, regula falsi and Newton-Raphson. The
// root-finding pipeline uses these to turn an isolating interval into a
// numeric root; they are equally usable on arbitrary scalar functions.
package refine

import (
	"errors"

	"github.com/cwbudde/algo-poly/interval"
	"golang.org/x/exp/constraints"
)

// Errors returned by the refiners.
var (
	// ErrNoSignChange is returned when the function does not change sign
	// over the given interval, violating the bracketing precondition.
	ErrNoSignChange = errors.New("refine: no sign change over interval")

	// ErrDerivativeVanishes is returned by NewtonRaphson when the
	// derivative is nearly zero at an iterate.
	ErrDerivativeVanishes = errors.New("refine: derivative vanishes at iterate")

	// ErrMaxIterations is returned when the iteration cap is exhausted
	// before convergence.
	ErrMaxIterations = errors.New("refine: maximum iterations exceeded")
)

// maxBracketIterations caps the bracketing methods. Bisection halves the
// interval each step, so 200 iterations exhaust float64 resolution for any
// realistic starting interval.
const maxBracketIterations = 200

// Bisection finds a zero of f inside the interval by repeated halving.
// It requires a sign change across the interval and stops when either the
// function value at the midpoint or the interval width falls below tol.
func Bisection[T constraints.Float](f func(T) T, i interval.Interval[T], tol T) (T, error) {
	a, b := i.Lower(), i.Upper()
	fa, fb := f(a), f(b)

	if r, ok := endpointRoot(a, b, fa, fb, tol); ok {
		return r, nil
	}
	if fa*fb > 0 {
		return 0, ErrNoSignChange
	}

	for range maxBracketIterations {
		mid := (a + b) / 2
		fm := f(mid)

		if abs(fm) < tol || b-a < tol {
			return mid, nil
		}

		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}

	return 0, ErrMaxIterations
}

// RegulaFalsi finds a zero of f inside the interval using the secant
// formula (a*f(b) - b*f(a)) / (f(b) - f(a)) for the next iterate. The same
// bracketing precondition and stopping rules as Bisection apply.
func RegulaFalsi[T constraints.Float](f func(T) T, i interval.Interval[T], tol T) (T, error) {
	a, b := i.Lower(), i.Upper()
	fa, fb := f(a), f(b)

	if r, ok := endpointRoot(a, b, fa, fb, tol); ok {
		return r, nil
	}
	if fa*fb > 0 {
		return 0, ErrNoSignChange
	}

	x := a
	for range maxBracketIterations {
		x = (a*fb - b*fa) / (fb - fa)
		fx := f(x)

		if abs(fx) < tol || b-a < tol {
			return x, nil
		}

		if fa*fx < 0 {
			b, fb = x, fx
		} else {
			a, fa = x, fx
		}
	}

	return 0, ErrMaxIterations
}

// NewtonRaphson iterates x <- x - f(x)/df(x) from the initial guess until
// |f(x)| < tol. It fails with ErrDerivativeVanishes when df is nearly zero
// at an iterate and with ErrMaxIterations when maxIter steps do not reach
// convergence.
func NewtonRaphson[T constraints.Float](f, df func(T) T, initial T, maxIter int, tol T) (T, error) {
	x := initial

	for range maxIter {
		fx := f(x)
		if abs(fx) < tol {
			return x, nil
		}

		dx := df(x)
		if abs(dx) < tol*tol {
			return 0, ErrDerivativeVanishes
		}

		x -= fx / dx
	}

	if abs(f(x)) < tol {
		return x, nil
	}
	return 0, ErrMaxIterations
}

// endpointRoot handles the degenerate bracketing case where an endpoint is
// already a root within tolerance.
func endpointRoot[T constraints.Float](a, b, fa, fb, tol T) (T, bool) {
	switch {
	case abs(fa) < tol:
		return a, true
	case abs(fb) < tol:
		return b, true
	default:
		return 0, false
	}
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
