package algebra

import (
	"math"

	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// IsSquareFree reports whether p has no repeated roots, i.e. whether
// gcd(p, p') is constant.
func IsSquareFree[T constraints.Float](p poly.Polynomial[T]) bool {
	return Euclidean(p, p.Derive()).IsConstant()
}

// Content returns the integer content of p: the (positive) greatest common
// divisor of its rounded coefficients. It fails with ErrNotInteger when p
// has non-integer coefficients. The content of the zero polynomial is 0.
func Content[T constraints.Float](p poly.Polynomial[T]) (int64, error) {
	if !p.IsInteger() {
		return 0, ErrNotInteger
	}

	var g int64
	for _, c := range p.Coeffs() {
		g = gcdInt(g, int64(math.Round(float64(c))))
	}
	return g, nil
}

// PrimitivePart returns p divided by its integer content. It fails with
// ErrNotInteger when p has non-integer coefficients.
func PrimitivePart[T constraints.Float](p poly.Polynomial[T]) (poly.Polynomial[T], error) {
	c, err := Content(p)
	if err != nil {
		return poly.Zero[T](), err
	}
	if c == 0 {
		return p, nil
	}
	return p.DivScalar(T(c)), nil
}

// Yun computes the square-free decomposition of p: an ordered sequence
// q1, q2, ..., qk of pairwise-coprime square-free polynomials such that
// p = q1 * q2^2 * ... * qk^k up to leading-coefficient normalization, the
// 1-based index being the multiplicity of the factor's roots in p.
//
// A polynomial that is already square-free decomposes as the single-element
// sequence [p]. Otherwise the algorithm works on the primitive part of p
// and fails with ErrNotIntegerReducible when that is not an integer
// polynomial.
func Yun[T constraints.Float](p poly.Polynomial[T]) ([]poly.Polynomial[T], error) {
	if IsSquareFree(p) {
		return []poly.Polynomial[T]{p}, nil
	}

	prim, err := PrimitivePart(p)
	if err != nil {
		return nil, ErrNotIntegerReducible
	}

	g := Euclidean(prim, prim.Derive())

	b, err := prim.Quo(g)
	if err != nil {
		return nil, err
	}
	c, err := prim.Derive().Quo(g)
	if err != nil {
		return nil, err
	}

	var seq []poly.Polynomial[T]
	for {
		d := c.Sub(b.Derive())
		if d.IsZero() {
			seq = append(seq, snapInteger(b))
			break
		}

		q := Euclidean(b, d)
		seq = append(seq, snapInteger(q))

		if b, err = b.Quo(q); err != nil {
			return nil, err
		}
		if c, err = d.Quo(q); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// FromSquareFree reconstructs the polynomial whose square-free
// decomposition is the given sequence: the product of seq[i]^(i+1).
func FromSquareFree[T constraints.Float](seq []poly.Polynomial[T]) poly.Polynomial[T] {
	p := poly.One[T]()
	for i, q := range seq {
		p = p.Mul(q.Pow(uint(i + 1)))
	}
	return p
}

// snapInteger rounds coefficients that drifted within tolerance of
// integers back onto them, containing the float error the gcd chain
// accumulates on integer inputs.
func snapInteger[T constraints.Float](p poly.Polynomial[T]) poly.Polynomial[T] {
	if rounded, err := p.ToInteger(); err == nil {
		return rounded
	}
	return p
}

// gcdInt computes the non-negative gcd of two integers.
func gcdInt(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
