// Package orthopoly generates orthogonal polynomial families (Chebyshev of
// the first kind, Legendre) and the quadrature rules built on them. The
// generators memoize through an explicit cache owned by the caller rather
// than hidden package state; a zero-value cache is ready to use.
package orthopoly

import (
	"math"

	"github.com/cwbudde/algo-poly/interval"
	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// defaultQuadratureNodes is the node count used by the convenience
// quadrature functions; exact for polynomials up to degree 127.
const defaultQuadratureNodes = 64

// Chebyshev lazily generates Chebyshev polynomials of the first kind via
// the recurrence T_{n+1} = 2X*T_n - T_{n-1}, caching every order
// generated so far.
type Chebyshev[T constraints.Float] struct {
	cache []poly.Polynomial[T]
}

// NewChebyshev returns an empty Chebyshev generator.
func NewChebyshev[T constraints.Float]() *Chebyshev[T] {
	return &Chebyshev[T]{}
}

// Len returns the number of cached polynomials.
func (c *Chebyshev[T]) Len() int { return len(c.cache) }

// FirstKind returns the Chebyshev polynomial T_n of the first kind.
func (c *Chebyshev[T]) FirstKind(n int) poly.Polynomial[T] {
	if len(c.cache) == 0 {
		c.cache = append(c.cache, poly.One[T](), poly.X[T]())
	}

	twoX := poly.Monomial(1, T(2))
	for len(c.cache) <= n {
		k := len(c.cache)
		next := twoX.Mul(c.cache[k-1]).Sub(c.cache[k-2])
		c.cache = append(c.cache, next)
	}

	return c.cache[n]
}

// Series expands the Chebyshev series sum alphas[k]*T_k into a plain
// polynomial.
func (c *Chebyshev[T]) Series(alphas []T) poly.Polynomial[T] {
	p := poly.Zero[T]()
	for k, a := range alphas {
		p = p.Add(c.FirstKind(k).MulScalar(a))
	}
	return p
}

// Nodes returns the n Chebyshev nodes, the roots of T_n, affinely mapped
// onto the given interval.
func Nodes[T constraints.Float](n int, i interval.Interval[T]) []T {
	mid := T(0.5) * (i.Lower() + i.Upper())
	half := T(0.5) * (i.Upper() - i.Lower())

	nodes := make([]T, n)
	for k := range n {
		t := math.Cos(math.Pi * (2*float64(k) + 1) / (2 * float64(n)))
		nodes[k] = mid + half*T(t)
	}
	return nodes
}

// UnitNodes returns the n Chebyshev nodes on [-1, 1].
func UnitNodes[T constraints.Float](n int) []T {
	return Nodes(n, interval.NewClosed[T](-1, 1))
}

// Clenshaw evaluates the Chebyshev series sum alphas[k]*T_k(x) by
// Clenshaw's recurrence, without expanding the polynomials.
func Clenshaw[T constraints.Float](alphas []T, x T) T {
	var b1, b2 T
	for k := len(alphas) - 1; k >= 1; k-- {
		b1, b2 = alphas[k]+2*x*b1-b2, b1
	}

	var a0 T
	if len(alphas) > 0 {
		a0 = alphas[0]
	}
	return a0 + x*b1 - b2
}

// Quadrature approximates the Chebyshev-Gauss integral of f over [-1, 1]
// with weight 1/sqrt(1-x^2), using the default node count.
func Quadrature[T constraints.Float](f func(T) T) T {
	return QuadratureN(f, defaultQuadratureNodes)
}

// QuadratureN is Quadrature with an explicit node count: the rule is exact
// for polynomial integrands up to degree 2n-1.
func QuadratureN[T constraints.Float](f func(T) T, n int) T {
	var sum T
	for _, x := range UnitNodes[T](n) {
		sum += f(x)
	}
	return sum * T(math.Pi) / T(n)
}

// QuadratureOver approximates the weighted integral of f over the given
// interval, the weight being 1/sqrt(1-t^2) in the interval's normalized
// coordinate.
func QuadratureOver[T constraints.Float](f func(T) T, i interval.Interval[T]) T {
	half := T(0.5) * (i.Upper() - i.Lower())

	var sum T
	for _, x := range Nodes(defaultQuadratureNodes, i) {
		sum += f(x)
	}
	return sum * half * T(math.Pi) / T(defaultQuadratureNodes)
}
