package roots

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-poly/poly"
	"github.com/stretchr/testify/require"
)

func TestCauchyBound(t *testing.T) {
	// 2x^3 + x^2 - 2x + 3: ratios 1.5, 1, 0.5.
	b, err := CauchyBound(poly.New([]float64{3, -2, 1, 2}))
	require.NoError(t, err)
	require.InDelta(t, 2.5, b, 1e-12)

	// x - 5.
	b, err = CauchyBound(poly.New([]float64{-5, 1}))
	require.NoError(t, err)
	require.InDelta(t, 6, b, 1e-12)

	// Constant polynomials have no non-leading coefficients.
	b, err = CauchyBound(poly.Constant(3.0))
	require.NoError(t, err)
	require.InDelta(t, 1, b, 1e-12)
}

func TestLagrangeBound(t *testing.T) {
	b, err := LagrangeBound(poly.New([]float64{3, -2, 1, 2}))
	require.NoError(t, err)
	require.InDelta(t, 3, b, 1e-12)

	b, err = LagrangeBound(poly.New([]float64{-5, 1}))
	require.NoError(t, err)
	require.InDelta(t, 5, b, 1e-12)

	// The sum clamps at 1 from below.
	b, err = LagrangeBound(poly.New([]float64{0.25, 0.25, 1}))
	require.NoError(t, err)
	require.InDelta(t, 1, b, 1e-12)
}

func TestBoundsContainRoots(t *testing.T) {
	roots := []float64{-7.5, -0.25, 0.5, 3, 12.125}
	p := poly.FromRoots(roots)

	cauchy, err := CauchyBound(p)
	require.NoError(t, err)
	lagrange, err := LagrangeBound(p)
	require.NoError(t, err)

	for _, r := range roots {
		require.Less(t, math.Abs(r), cauchy)
		require.Less(t, math.Abs(r), lagrange)
	}
}

func TestBoundsZeroPolynomial(t *testing.T) {
	_, err := CauchyBound(poly.Zero[float64]())
	require.ErrorIs(t, err, ErrZeroPolynomial)

	_, err = LagrangeBound(poly.Zero[float64]())
	require.ErrorIs(t, err, ErrZeroPolynomial)
}
