package roots

import (
	"github.com/cwbudde/algo-poly/algebra"
	"github.com/cwbudde/algo-poly/interval"
	"github.com/cwbudde/algo-poly/poly"
	"github.com/cwbudde/algo-poly/refine"
	"golang.org/x/exp/constraints"
)

// newtonMaxIterations bounds the polynomial Newton-Raphson iteration and
// the polish step inside FindRoots.
const newtonMaxIterations = 100

// NewtonRaphson finds a root of p near the initial guess by Newton's
// iteration on p and its derivative.
func NewtonRaphson[T constraints.Float](p poly.Polynomial[T], initial T) (T, error) {
	return NewtonRaphsonTol(p, initial, newtonMaxIterations, p.Spec().Epsilon)
}

// NewtonRaphsonTol is NewtonRaphson with an explicit iteration cap and
// tolerance.
func NewtonRaphsonTol[T constraints.Float](p poly.Polynomial[T], initial T, maxIter int, tol T) (T, error) {
	dp := p.Derive()
	return refine.NewtonRaphson(p.Evaluate, dp.Evaluate, initial, maxIter, tol)
}

// FindRoots computes all real roots of p together with their
// multiplicities. The polynomial is square-free decomposed (Yun), each
// factor's roots are isolated via Sturm bisection and refined numerically,
// and every root of the i-th factor is tagged with multiplicity i+1.
// Roots are reported factor by factor in ascending multiplicity, each
// factor's roots in ascending order.
//
// Degenerate intervals that fail to refine are skipped rather than
// reported as errors: a bracket without a discoverable root means there is
// no root there, not a fault.
func FindRoots[T constraints.Float](p poly.Polynomial[T]) ([]T, []int, error) {
	factors, err := algebra.Yun(p)
	if err != nil {
		return nil, nil, err
	}

	var (
		roots          []T
		multiplicities []int
	)

	for i, factor := range factors {
		if factor.IsConstant() {
			continue
		}

		for _, bracket := range Isolate(factor) {
			root, err := refineRoot(factor, bracket)
			if err != nil {
				continue
			}
			roots = append(roots, root)
			multiplicities = append(multiplicities, i+1)
		}
	}

	return roots, multiplicities, nil
}

// refineRoot turns an isolating interval into a numeric root: a bisection
// pass down to the polynomial tolerance, then a Newton polish to full
// precision. The polish is discarded if it wanders out of the bracket.
func refineRoot[T constraints.Float](p poly.Polynomial[T], bracket interval.Interval[T]) (T, error) {
	eps := p.Spec().Epsilon

	root, err := refine.Bisection(p.Evaluate, bracket, eps)
	if err != nil {
		return 0, err
	}

	polished, err := NewtonRaphsonTol(p, root, newtonMaxIterations, eps*eps)
	if err == nil && polished >= bracket.Lower() && polished <= bracket.Upper() {
		return polished, nil
	}
	return root, nil
}
