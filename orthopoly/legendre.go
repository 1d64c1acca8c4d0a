package orthopoly

import (
	"errors"
	"sort"

	"github.com/cwbudde/algo-poly/interval"
	"github.com/cwbudde/algo-poly/poly"
	"github.com/cwbudde/algo-poly/roots"
	"golang.org/x/exp/constraints"
)

// ErrQuadratureOrder is returned by GaussLegendre when the nodes of the
// requested order cannot be computed.
var ErrQuadratureOrder = errors.New("orthopoly: cannot compute quadrature nodes for order")

// Legendre lazily generates Legendre polynomials via the recurrence
// (n+1)P_{n+1} = (2n+1)X*P_n - n*P_{n-1}, caching every order generated
// so far.
type Legendre[T constraints.Float] struct {
	cache []poly.Polynomial[T]
}

// NewLegendre returns an empty Legendre generator.
func NewLegendre[T constraints.Float]() *Legendre[T] {
	return &Legendre[T]{}
}

// Len returns the number of cached polynomials.
func (l *Legendre[T]) Len() int { return len(l.cache) }

// Create returns the Legendre polynomial P_n.
func (l *Legendre[T]) Create(n int) poly.Polynomial[T] {
	if len(l.cache) == 0 {
		l.cache = append(l.cache, poly.One[T](), poly.X[T]())
	}

	x := poly.X[T]()
	for len(l.cache) <= n {
		k := len(l.cache) - 1
		next := x.Mul(l.cache[k]).MulScalar(T(2*k + 1)).
			Sub(l.cache[k-1].MulScalar(T(k))).
			DivScalar(T(k + 1))
		l.cache = append(l.cache, next)
	}

	return l.cache[n]
}

// GaussLegendreNodes computes the order-n Gauss-Legendre nodes (the roots
// of P_n, ascending) and their quadrature weights 2/((1-x^2)*P_n'(x)^2).
func (l *Legendre[T]) GaussLegendreNodes(n int) ([]T, []T, error) {
	if n < 1 {
		return nil, nil, ErrQuadratureOrder
	}

	pn := l.Create(n)
	nodes, _, err := roots.FindRoots(pn)
	if err != nil || len(nodes) != n {
		return nil, nil, ErrQuadratureOrder
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	dpn := pn.Derive()
	weights := make([]T, n)
	for i, x := range nodes {
		d := dpn.Evaluate(x)
		weights[i] = 2 / ((1 - x*x) * d * d)
	}

	return nodes, weights, nil
}

// GaussLegendre approximates the integral of f over the interval with an
// order-n Gauss-Legendre rule, exact for polynomial integrands up to
// degree 2n-1.
func (l *Legendre[T]) GaussLegendre(f func(T) T, n int, i interval.Interval[T]) (T, error) {
	nodes, weights, err := l.GaussLegendreNodes(n)
	if err != nil {
		return 0, err
	}

	mid := T(0.5) * (i.Lower() + i.Upper())
	half := T(0.5) * (i.Upper() - i.Lower())

	var sum T
	for k, x := range nodes {
		sum += weights[k] * f(mid+half*x)
	}
	return half * sum, nil
}
