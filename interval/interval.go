// Package interval provides a real interval type with open/closed boundary
// flags, used by the root-isolation pipeline. The default construction is
// the half-open interval (a, b], the convention the Sturm counting theorem
// works with.
package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bounds indicates whether an interval endpoint is excluded or included.
type Bounds int

const (
	// Open excludes the endpoint from the interval.
	Open Bounds = iota

	// Closed includes the endpoint in the interval.
	Closed
)

// Interval is a real interval with per-endpoint boundary flags.
type Interval[T constraints.Float] struct {
	lower, upper T
	lowerBounds  Bounds
	upperBounds  Bounds
}

// New creates the half-open interval (a, b].
func New[T constraints.Float](a, b T) Interval[T] {
	return NewBounds(a, b, Open, Closed)
}

// NewClosed creates the closed interval [a, b].
func NewClosed[T constraints.Float](a, b T) Interval[T] {
	return NewBounds(a, b, Closed, Closed)
}

// NewBounds creates an interval with explicit boundary flags.
func NewBounds[T constraints.Float](a, b T, lower, upper Bounds) Interval[T] {
	return Interval[T]{lower: a, upper: b, lowerBounds: lower, upperBounds: upper}
}

// Lower returns the lower endpoint.
func (i Interval[T]) Lower() T { return i.lower }

// Upper returns the upper endpoint.
func (i Interval[T]) Upper() T { return i.upper }

// Length returns upper - lower.
func (i Interval[T]) Length() T { return i.upper - i.lower }

// IsLowerOpen reports whether the lower endpoint is excluded.
func (i Interval[T]) IsLowerOpen() bool { return i.lowerBounds == Open }

// IsUpperOpen reports whether the upper endpoint is excluded.
func (i Interval[T]) IsUpperOpen() bool { return i.upperBounds == Open }

// IsClosed reports whether both endpoints are included.
func (i Interval[T]) IsClosed() bool {
	return i.lowerBounds == Closed && i.upperBounds == Closed
}

// IsOpened reports whether both endpoints are excluded.
func (i Interval[T]) IsOpened() bool {
	return i.lowerBounds == Open && i.upperBounds == Open
}

// IsHalfOpen reports whether exactly one endpoint is included.
func (i Interval[T]) IsHalfOpen() bool { return i.lowerBounds != i.upperBounds }

// IsDegenerate reports whether the endpoints coincide within eps.
func (i Interval[T]) IsDegenerate(eps T) bool {
	d := i.upper - i.lower
	if d < 0 {
		d = -d
	}
	return d < eps
}

// IsEmpty reports whether the interval contains no points: the endpoints
// are out of order, or they coincide and at least one of them is excluded.
func (i Interval[T]) IsEmpty(eps T) bool {
	if i.lower > i.upper {
		return true
	}
	return i.IsDegenerate(eps) && !i.IsClosed()
}

// Contains reports whether x lies in the interval, honoring the boundary
// flags.
func (i Interval[T]) Contains(x T) bool {
	if x < i.lower || (x == i.lower && i.lowerBounds == Open) {
		return false
	}
	if x > i.upper || (x == i.upper && i.upperBounds == Open) {
		return false
	}
	return true
}

// Midpoint returns the arithmetic midpoint of the endpoints.
func (i Interval[T]) Midpoint() T { return (i.lower + i.upper) / 2 }

// Bisect splits the interval at its midpoint into two half-open intervals
// (lower, mid] and (mid, upper].
func (i Interval[T]) Bisect() (Interval[T], Interval[T]) {
	return i.BisectBounds(Open, Closed)
}

// BisectBounds splits the interval at its midpoint, applying the given
// boundary flags to both halves.
func (i Interval[T]) BisectBounds(lower, upper Bounds) (Interval[T], Interval[T]) {
	mid := i.Midpoint()
	return NewBounds(i.lower, mid, lower, upper), NewBounds(mid, i.upper, lower, upper)
}

// BisectAt splits the interval at the given point, keeping the default
// (lower, mid], (mid, upper] boundary convention.
func (i Interval[T]) BisectAt(mid T) (Interval[T], Interval[T]) {
	return New(i.lower, mid), New(mid, i.upper)
}

// LinearTransform returns the affine function mapping this interval onto
// dst, sending lower to dst.Lower and upper to dst.Upper. The interval
// must not be degenerate.
func (i Interval[T]) LinearTransform(dst Interval[T]) func(T) T {
	m := (dst.upper - dst.lower) / (i.upper - i.lower)
	c := (dst.lower*i.upper - dst.upper*i.lower) / (i.upper - i.lower)

	return func(x T) T { return m*x + c }
}

// String renders the interval with conventional bracket notation.
func (i Interval[T]) String() string {
	left, right := "[", "]"
	if i.lowerBounds == Open {
		left = "("
	}
	if i.upperBounds == Open {
		right = ")"
	}
	return fmt.Sprintf("%s%v, %v%s", left, i.lower, i.upper, right)
}
