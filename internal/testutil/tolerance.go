// Package testutil provides tolerance and residual helpers shared by the
// package tests.
package testutil

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
)

// AlmostEqual reports whether a and b agree within tol, using a relative
// comparison for large magnitudes and an absolute one otherwise.
func AlmostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(a), math.Abs(b))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireUnique fails t if any two values coincide within eps.
func RequireUnique(t *testing.T, values []float64, eps float64) {
	t.Helper()
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if math.Abs(values[i]-values[j]) < eps {
				t.Fatalf("values %d and %d coincide: %v ~ %v", i, j, values[i], values[j])
			}
		}
	}
}

// ResidualStats returns the maximum and mean absolute value of f over the
// given points, typically used to judge how well a set of roots annuls a
// polynomial.
func ResidualStats(f func(float64) float64, xs []float64) (maxAbs, meanAbs float64, err error) {
	if len(xs) == 0 {
		return 0, 0, nil
	}

	residuals := make([]float64, len(xs))
	for i, x := range xs {
		residuals[i] = math.Abs(f(x))
	}

	if maxAbs, err = stats.Max(residuals); err != nil {
		return 0, 0, err
	}
	if meanAbs, err = stats.Mean(residuals); err != nil {
		return 0, 0, err
	}
	return maxAbs, meanAbs, nil
}

// RequireSmallResiduals fails t when any |f(x)| exceeds eps.
func RequireSmallResiduals(t *testing.T, f func(float64) float64, xs []float64, eps float64) {
	t.Helper()

	maxAbs, meanAbs, err := ResidualStats(f, xs)
	if err != nil {
		t.Fatalf("residual stats: %v", err)
	}
	if maxAbs > eps {
		t.Fatalf("max residual %v exceeds %v (mean %v)", maxAbs, meanAbs, eps)
	}
}
