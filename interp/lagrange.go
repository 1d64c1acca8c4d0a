// Package interp implements Lagrange polynomial interpolation.
package interp

import (
	"errors"

	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// Errors returned by the interpolation functions.
var (
	// ErrDimensionMismatch is returned when the x and y value lists have
	// different lengths or are empty.
	ErrDimensionMismatch = errors.New("interp: mismatched or empty value lists")

	// ErrDuplicateNodes is returned when two interpolation nodes coincide
	// within tolerance.
	ErrDuplicateNodes = errors.New("interp: duplicate interpolation nodes")
)

// LagrangeBasis returns the Lagrange basis polynomials for the given
// distinct nodes: l_j(x_m) is 1 when j == m and 0 otherwise.
func LagrangeBasis[T constraints.Float](xs []T) ([]poly.Polynomial[T], error) {
	if len(xs) == 0 {
		return nil, ErrDimensionMismatch
	}
	if err := checkDistinct(xs); err != nil {
		return nil, err
	}

	basis := make([]poly.Polynomial[T], len(xs))
	for j := range xs {
		l := poly.One[T]()
		for m := range xs {
			if m == j {
				continue
			}
			factor := poly.New([]T{-xs[m], 1}).DivScalar(xs[j] - xs[m])
			l = l.Mul(factor)
		}
		basis[j] = l
	}

	return basis, nil
}

// Lagrange computes the interpolating polynomial through the points
// (xs[i], ys[i]). The nodes must be pairwise distinct.
func Lagrange[T constraints.Float](xs, ys []T) (poly.Polynomial[T], error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return poly.Zero[T](), ErrDimensionMismatch
	}

	basis, err := LagrangeBasis(xs)
	if err != nil {
		return poly.Zero[T](), err
	}

	p := poly.Zero[T]()
	for j, l := range basis {
		p = p.Add(l.MulScalar(ys[j]))
	}
	return p, nil
}

func checkDistinct[T constraints.Float](xs []T) error {
	eps := poly.DefaultSpec[T]().Epsilon
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if poly.NearlyEqual(xs[i], xs[j], eps) {
				return ErrDuplicateNodes
			}
		}
	}
	return nil
}
