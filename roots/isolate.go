package roots

import (
	"github.com/cwbudde/algo-poly/algebra"
	"github.com/cwbudde/algo-poly/interval"
	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// maxIsolationDepth caps the bisection recursion. 64 halvings of any sane
// starting interval reach sub-denormal widths, so the cap only fires on
// pathological inputs (see the midpoint nudge below).
const maxIsolationDepth = 64

// Isolate returns disjoint half-open intervals, each containing exactly
// one real root of p, which together cover all real roots. The polynomial
// must be square-free; otherwise the result is empty. Intervals are
// reported in ascending order of their position on the real line.
func Isolate[T constraints.Float](p poly.Polynomial[T]) []interval.Interval[T] {
	if p.IsConstant() || !algebra.IsSquareFree(p) {
		return nil
	}

	bound, err := CauchyBound(p)
	if err != nil {
		return nil
	}

	seq := SturmSequence(p)
	var isolated []interval.Interval[T]
	isolateInterval(p, seq, interval.New(-bound, bound), 0, &isolated)
	return isolated
}

// isolateInterval recursively bisects the candidate interval, keeping
// sub-intervals that contain exactly one root and discarding empty ones.
// The left half is always visited first, so the output stays ordered.
func isolateInterval[T constraints.Float](
	p poly.Polynomial[T],
	seq []poly.Polynomial[T],
	i interval.Interval[T],
	depth int,
	out *[]interval.Interval[T],
) {
	if depth > maxIsolationDepth {
		return
	}

	switch n := numberDistinctRoots(seq, i); {
	case n <= 0:
		return
	case n == 1:
		*out = append(*out, i)
	default:
		mid := i.Midpoint()

		// Sturm counts are unreliable at a point where p itself
		// vanishes; nudge the split point off the root.
		if p.HasRoot(mid) {
			mid += p.Spec().Epsilon
		}

		left, right := i.BisectAt(mid)
		isolateInterval(p, seq, left, depth+1, out)
		isolateInterval(p, seq, right, depth+1, out)
	}
}
