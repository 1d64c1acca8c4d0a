package orthopoly

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-poly/interval"
	"github.com/cwbudde/algo-poly/poly"
	"github.com/stretchr/testify/require"
)

func TestLegendreCreate(t *testing.T) {
	l := NewLegendre[float64]()

	want := []poly.Polynomial[float64]{
		poly.New([]float64{1}),
		poly.New([]float64{0, 1}),
		poly.New([]float64{-0.5, 0, 1.5}),
		poly.New([]float64{0, -1.5, 0, 2.5}),
		poly.New([]float64{3.0 / 8, 0, -30.0 / 8, 0, 35.0 / 8}),
		poly.New([]float64{0, 15.0 / 8, 0, -70.0 / 8, 0, 63.0 / 8}),
	}
	for n, w := range want {
		require.True(t, l.Create(n).Equal(w), "P_%d = %v, want %v", n, l.Create(n), w)
	}
	require.Equal(t, 6, l.Len())
}

func TestLegendreUnitValueAtOne(t *testing.T) {
	// P_n(1) = 1 and P_n(-1) = (-1)^n for every n.
	l := NewLegendre[float64]()

	for n := range 9 {
		pn := l.Create(n)
		require.InDelta(t, 1, pn.Evaluate(1), 1e-9, "P_%d(1)", n)

		want := 1.0
		if n%2 == 1 {
			want = -1
		}
		require.InDelta(t, want, pn.Evaluate(-1), 1e-9, "P_%d(-1)", n)
	}
}

func TestGaussLegendreNodes(t *testing.T) {
	l := NewLegendre[float64]()

	nodes, weights, err := l.GaussLegendreNodes(1)
	require.NoError(t, err)
	require.InDelta(t, 0, nodes[0], 1e-9)
	require.InDelta(t, 2, weights[0], 1e-9)

	nodes, weights, err = l.GaussLegendreNodes(2)
	require.NoError(t, err)
	require.InDelta(t, -1/math.Sqrt(3), nodes[0], 1e-8)
	require.InDelta(t, 1/math.Sqrt(3), nodes[1], 1e-8)
	require.InDelta(t, 1, weights[0], 1e-8)
	require.InDelta(t, 1, weights[1], 1e-8)

	nodes, weights, err = l.GaussLegendreNodes(3)
	require.NoError(t, err)
	require.InDelta(t, -math.Sqrt(0.6), nodes[0], 1e-8)
	require.InDelta(t, 0, nodes[1], 1e-8)
	require.InDelta(t, math.Sqrt(0.6), nodes[2], 1e-8)
	require.InDelta(t, 5.0/9, weights[0], 1e-8)
	require.InDelta(t, 8.0/9, weights[1], 1e-8)
	require.InDelta(t, 5.0/9, weights[2], 1e-8)
}

func TestGaussLegendreNodesWeightSum(t *testing.T) {
	l := NewLegendre[float64]()

	for _, n := range []int{4, 6, 7} {
		_, weights, err := l.GaussLegendreNodes(n)
		require.NoError(t, err)

		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		require.InDelta(t, 2, sum, 1e-7, "order %d", n)
	}
}

func TestGaussLegendreOrderError(t *testing.T) {
	l := NewLegendre[float64]()

	_, _, err := l.GaussLegendreNodes(0)
	require.ErrorIs(t, err, ErrQuadratureOrder)

	_, err2 := l.GaussLegendre(func(x float64) float64 { return x }, -1, interval.NewClosed(0.0, 1.0))
	require.ErrorIs(t, err2, ErrQuadratureOrder)
}

func TestGaussLegendrePolynomialExactness(t *testing.T) {
	l := NewLegendre[float64]()

	// Order 2 integrates cubics exactly.
	got, err := l.GaussLegendre(func(x float64) float64 { return x * x * x }, 2, interval.NewClosed(0.0, 1.0))
	require.NoError(t, err)
	require.InDelta(t, 0.25, got, 1e-8)

	got, err = l.GaussLegendre(func(x float64) float64 { return x * x * x * x }, 3, interval.NewClosed(-1.0, 1.0))
	require.NoError(t, err)
	require.InDelta(t, 0.4, got, 1e-8)
}

func TestGaussLegendreSmooth(t *testing.T) {
	l := NewLegendre[float64]()

	got, err := l.GaussLegendre(math.Exp, 8, interval.NewClosed(-1.0, 1.0))
	require.NoError(t, err)
	require.InDelta(t, math.E-1/math.E, got, 1e-8)

	got, err = l.GaussLegendre(math.Sin, 6, interval.NewClosed(0.0, math.Pi))
	require.NoError(t, err)
	require.InDelta(t, 2, got, 1e-6)
}
