package poly

import (
	"golang.org/x/exp/constraints"
)

// Spec bundles the numeric policy for a coefficient type: the comparison
// tolerance and the additive/multiplicative identities. All tolerance-based
// predicates of a Polynomial use the Spec it was constructed with.
type Spec[T constraints.Float] struct {
	Epsilon T
	Zero    T
	One     T
}

// DefaultSpec returns the standard numeric policy for T.
// float64 uses an epsilon of 1e-5, float32 uses 1e-4.
func DefaultSpec[T constraints.Float]() Spec[T] {
	var probe T

	eps := T(1e-5)
	if _, ok := any(probe).(float32); ok {
		eps = T(1e-4)
	}

	return Spec[T]{Epsilon: eps, Zero: 0, One: 1}
}

// NearlyZero reports whether |a| < eps.
func NearlyZero[T constraints.Float](a, eps T) bool {
	if a < 0 {
		a = -a
	}
	return a < eps
}

// NearlyEqual reports whether a and b differ by less than eps.
func NearlyEqual[T constraints.Float](a, b, eps T) bool {
	return NearlyZero(a-b, eps)
}

// SignChanges counts the sign changes of a numeric sequence, skipping
// entries whose magnitude is below eps.
func SignChanges[T constraints.Float](seq []T, eps T) int {
	changes := 0
	prev := 0

	for _, v := range seq {
		if NearlyZero(v, eps) {
			continue
		}

		sign := 1
		if v < 0 {
			sign = -1
		}

		if prev != 0 && sign != prev {
			changes++
		}
		prev = sign
	}

	return changes
}
