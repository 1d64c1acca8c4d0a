// Package roots finds all real roots of a polynomial with correct
// multiplicities, without an external numeric solver. The pipeline is
// square-free decomposition (algebra.Yun), Sturm-sequence root counting,
// recursive interval isolation, and numeric refinement (refine.Bisection
// with a Newton polish). Closed-form quadratic and cubic solvers and
// complex simultaneous-iteration solvers are provided alongside.
package roots

import (
	"github.com/cwbudde/algo-poly/algebra"
	"github.com/cwbudde/algo-poly/interval"
	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// SturmSequence builds the canonical Sturm chain of p: the polynomial
// itself, its derivative, and then each term the negated remainder of the
// two preceding terms, ending with a constant. The degree strictly
// decreases along the chain, so it always terminates.
func SturmSequence[T constraints.Float](p poly.Polynomial[T]) []poly.Polynomial[T] {
	seq := []poly.Polynomial[T]{p, p.Derive()}

	for !seq[len(seq)-1].IsConstant() {
		rem, err := seq[len(seq)-2].Rem(seq[len(seq)-1])
		if err != nil {
			break
		}
		seq = append(seq, rem.Neg())
	}

	return seq
}

// SignVariations evaluates every member of the sequence at x and returns
// the signs (+1 or -1) of the values, dropping those within tolerance of
// zero. The tolerance comes from the first sequence member's spec.
func SignVariations[T constraints.Float](seq []poly.Polynomial[T], x T) []int {
	if len(seq) == 0 {
		return nil
	}
	eps := seq[0].Spec().Epsilon

	signs := make([]int, 0, len(seq))
	for _, q := range seq {
		v := q.Evaluate(x)
		if poly.NearlyZero(v, eps) {
			continue
		}
		if v > 0 {
			signs = append(signs, 1)
		} else {
			signs = append(signs, -1)
		}
	}

	return signs
}

// signChangeCount counts adjacent sign flips in a +1/-1 sequence.
func signChangeCount(signs []int) int {
	changes := 0
	for i := 1; i < len(signs); i++ {
		if signs[i] != signs[i-1] {
			changes++
		}
	}
	return changes
}

// SignChanges counts the sign changes in the coefficient sequence of p,
// the quantity Descartes' rule of signs bounds the positive roots with.
func SignChanges[T constraints.Float](p poly.Polynomial[T]) int {
	return poly.SignChanges(p.Coeffs(), p.Spec().Epsilon)
}

// NumberDistinctRootsIn counts the distinct real roots of the square-free
// polynomial p in the half-open interval (i.Lower, i.Upper] by Sturm's
// theorem: the difference of the sign-variation counts at the endpoints.
// It fails with ErrNotSquareFree when p has repeated roots.
func NumberDistinctRootsIn[T constraints.Float](p poly.Polynomial[T], i interval.Interval[T]) (int, error) {
	if !algebra.IsSquareFree(p) {
		return 0, ErrNotSquareFree
	}

	seq := SturmSequence(p)
	return numberDistinctRoots(seq, i), nil
}

// NumberDistinctRoots counts all distinct real roots of the square-free
// polynomial p, using the Cauchy bound to pick a finite interval that
// contains every root.
func NumberDistinctRoots[T constraints.Float](p poly.Polynomial[T]) (int, error) {
	bound, err := CauchyBound(p)
	if err != nil {
		return 0, err
	}
	return NumberDistinctRootsIn(p, interval.New(-bound, bound))
}

// numberDistinctRoots applies Sturm's theorem to a precomputed chain.
func numberDistinctRoots[T constraints.Float](seq []poly.Polynomial[T], i interval.Interval[T]) int {
	lower := signChangeCount(SignVariations(seq, i.Lower()))
	upper := signChangeCount(SignVariations(seq, i.Upper()))
	return lower - upper
}
