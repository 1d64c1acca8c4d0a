// Package poly implements dense univariate polynomials with floating-point
// coefficients. Polynomials are immutable value types: every operation
// returns a new, trimmed polynomial and leaves its operands untouched.
//
// Coefficients are stored in ascending power order, so the coefficient at
// index i belongs to X^i. Comparisons (equality, zero tests, root tests)
// are tolerance-based; the tolerance comes from the Spec the polynomial was
// constructed with (see DefaultSpec).
package poly

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Polynomial is a dense univariate polynomial over the coefficient type T.
// The zero value is not usable; construct values with New, Zero, One,
// Monomial or FromRoots.
type Polynomial[T constraints.Float] struct {
	coeffs []T
	spec   Spec[T]
}

// New creates a polynomial from coefficients in ascending power order.
// Leading coefficients within the default tolerance of zero are trimmed.
// An empty or all-zero coefficient list yields the zero polynomial.
func New[T constraints.Float](coeffs []T) Polynomial[T] {
	return NewWithSpec(coeffs, DefaultSpec[T]())
}

// NewWithSpec is like New but binds a custom numeric policy.
func NewWithSpec[T constraints.Float](coeffs []T, spec Spec[T]) Polynomial[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)

	p := Polynomial[T]{coeffs: c, spec: spec}
	return p.trim()
}

// Zero returns the zero polynomial.
func Zero[T constraints.Float]() Polynomial[T] {
	return New([]T{0})
}

// One returns the constant polynomial 1.
func One[T constraints.Float]() Polynomial[T] {
	return New([]T{1})
}

// Constant returns the constant polynomial c.
func Constant[T constraints.Float](c T) Polynomial[T] {
	return New([]T{c})
}

// Monomial returns coeff * X^degree.
func Monomial[T constraints.Float](degree int, coeff T) Polynomial[T] {
	if degree < 0 {
		return Zero[T]()
	}

	c := make([]T, degree+1)
	c[degree] = coeff
	return New(c)
}

// X returns the monomial X, the usual building block for literals:
//
//	p := poly.X[float64]().Pow(2).Sub(poly.One[float64]())
func X[T constraints.Float]() Polynomial[T] {
	return Monomial(1, T(1))
}

// FromRoots builds the monic polynomial whose roots are the given values,
// i.e. the product of (X - r) over all roots. An empty root list yields
// the constant polynomial 1.
func FromRoots[T constraints.Float](roots []T) Polynomial[T] {
	p := One[T]()
	for _, r := range roots {
		p = p.Mul(New([]T{-r, 1}))
	}
	return p
}

// trim removes leading coefficients that are within epsilon of zero,
// keeping at least the constant term. Trimmed-away mass is dropped, not
// redistributed.
func (p Polynomial[T]) trim() Polynomial[T] {
	n := len(p.coeffs)
	for n > 1 && NearlyZero(p.coeffs[n-1], p.spec.Epsilon) {
		n--
	}

	if n == 0 {
		return Polynomial[T]{coeffs: []T{0}, spec: p.spec}
	}

	p.coeffs = p.coeffs[:n]
	return p
}

// Spec returns the numeric policy bound to this polynomial.
func (p Polynomial[T]) Spec() Spec[T] { return p.spec }

// Degree returns the degree of the polynomial. The zero polynomial has
// the conventional degree 0.
func (p Polynomial[T]) Degree() int { return len(p.coeffs) - 1 }

// Coeffs returns a copy of the coefficients in ascending power order.
func (p Polynomial[T]) Coeffs() []T {
	c := make([]T, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// At returns the coefficient of X^i, or zero when i is out of range.
func (p Polynomial[T]) At(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// LeadingCoefficient returns the coefficient of the highest power.
func (p Polynomial[T]) LeadingCoefficient() T {
	return p.coeffs[len(p.coeffs)-1]
}

// IsZero reports whether the polynomial is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return p.Degree() == 0 && NearlyZero(p.coeffs[0], p.spec.Epsilon)
}

// IsOne reports whether the polynomial is the constant 1.
func (p Polynomial[T]) IsOne() bool {
	return p.Degree() == 0 && NearlyEqual(p.coeffs[0], p.spec.One, p.spec.Epsilon)
}

// IsConstant reports whether the polynomial has degree 0.
func (p Polynomial[T]) IsConstant() bool { return p.Degree() == 0 }

// IsLinear reports whether the polynomial has degree 1.
func (p Polynomial[T]) IsLinear() bool { return p.Degree() == 1 }

// IsQuadratic reports whether the polynomial has degree 2.
func (p Polynomial[T]) IsQuadratic() bool { return p.Degree() == 2 }

// IsCubic reports whether the polynomial has degree 3.
func (p Polynomial[T]) IsCubic() bool { return p.Degree() == 3 }

// Evaluate computes p(x) by Horner's method.
func (p Polynomial[T]) Evaluate(x T) T {
	v := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		v = v*x + p.coeffs[i]
	}
	return v
}

// Equal reports whether p and q have the same degree and coefficients
// within the receiver's tolerance.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	if p.Degree() != q.Degree() {
		return false
	}
	for i, c := range p.coeffs {
		if !NearlyEqual(c, q.coeffs[i], p.spec.Epsilon) {
			return false
		}
	}
	return true
}

// HasRoot reports whether x is a root of p within tolerance.
func (p Polynomial[T]) HasRoot(x T) bool {
	return NearlyZero(p.Evaluate(x), p.spec.Epsilon)
}

// HasRoots reports whether every given value is a root of p.
func (p Polynomial[T]) HasRoots(xs []T) bool {
	for _, x := range xs {
		if !p.HasRoot(x) {
			return false
		}
	}
	return true
}

// IsInteger reports whether every coefficient is within tolerance of an
// integer.
func (p Polynomial[T]) IsInteger() bool {
	for _, c := range p.coeffs {
		if !NearlyEqual(c, T(math.Round(float64(c))), p.spec.Epsilon) {
			return false
		}
	}
	return true
}

// ToInteger returns the polynomial with every coefficient rounded to the
// nearest integer. It fails with ErrNotInteger when any coefficient is not
// within tolerance of an integer.
func (p Polynomial[T]) ToInteger() (Polynomial[T], error) {
	if !p.IsInteger() {
		return Zero[T](), ErrNotInteger
	}

	c := make([]T, len(p.coeffs))
	for i, v := range p.coeffs {
		c[i] = T(math.Round(float64(v)))
	}
	return NewWithSpec(c, p.spec), nil
}

// String renders the polynomial in conventional notation, highest power
// first, e.g. "2x^3 - x + 1".
func (p Polynomial[T]) String() string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	first := true

	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if NearlyZero(c, p.spec.Epsilon) {
			continue
		}

		switch {
		case first && c < 0:
			b.WriteString("-")
		case !first && c < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false

		abs := c
		if abs < 0 {
			abs = -abs
		}

		if i == 0 || !NearlyEqual(abs, p.spec.One, p.spec.Epsilon) {
			fmt.Fprintf(&b, "%v", abs)
		}

		switch {
		case i == 1:
			b.WriteString("x")
		case i > 1:
			fmt.Fprintf(&b, "x^%d", i)
		}
	}

	return b.String()
}
