package roots

import (
	"testing"

	"github.com/cwbudde/algo-poly/interval"
	"github.com/cwbudde/algo-poly/poly"
	"github.com/stretchr/testify/require"
)

// testQuartic is x^4 + x^3 - x - 1 = (x-1)(x+1)(x^2+x+1), with exactly
// two real roots.
func testQuartic() poly.Polynomial[float64] {
	return poly.New([]float64{-1, -1, 0, 1, 1})
}

func TestSturmSequence(t *testing.T) {
	seq := SturmSequence(testQuartic())

	require.Len(t, seq, 5)
	require.True(t, seq[0].Equal(testQuartic()))
	require.True(t, seq[1].Equal(poly.New([]float64{-1, 0, 3, 4})))
	require.True(t, seq[2].Equal(poly.New([]float64{15.0 / 16, 3.0 / 4, 3.0 / 16})))
	require.True(t, seq[3].Equal(poly.New([]float64{-64, -32})))
	require.True(t, seq[4].Equal(poly.Constant(-3.0/16)))
}

func TestSturmSequenceDegreesDecrease(t *testing.T) {
	seq := SturmSequence(poly.FromRoots([]float64{-3, -1, 0.5, 2, 4}))

	for i := 1; i < len(seq); i++ {
		require.Less(t, seq[i].Degree(), seq[i-1].Degree())
	}
	require.True(t, seq[len(seq)-1].IsConstant())
}

func TestSignVariations(t *testing.T) {
	seq := SturmSequence(testQuartic())

	require.Equal(t, []int{1, -1, 1, 1, -1}, SignVariations(seq, -10.0))
	require.Equal(t, []int{1, 1, 1, -1, -1}, SignVariations(seq, 10.0))
}

func TestSignVariationsDropsZeros(t *testing.T) {
	// x^2 - 1 evaluated at its root 1 contributes no sign.
	seq := SturmSequence(poly.New([]float64{-1, 0, 1}))

	signs := SignVariations(seq, 1.0)
	for _, s := range signs {
		require.Contains(t, []int{-1, 1}, s)
	}
	require.Less(t, len(signs), len(seq))
}

func TestNumberDistinctRoots(t *testing.T) {
	n, err := NumberDistinctRoots(testQuartic())
	require.NoError(t, err)
	require.Equal(t, 2, n)

	p := poly.FromRoots([]float64{-2.5, -1.15, 0, 0.5, 1.25, 4.125, 6.5})
	n, err = NumberDistinctRoots(p)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	// No real roots at all.
	n, err = NumberDistinctRoots(poly.New([]float64{1, 0, 1}))
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestNumberDistinctRootsIn(t *testing.T) {
	p := testQuartic()

	cases := []struct {
		iv   interval.Interval[float64]
		want int
	}{
		{interval.New(0.0, 2.0), 1},  // root 1
		{interval.New(-2.0, 0.0), 1}, // root -1
		{interval.New(-2.0, 2.0), 2},
		{interval.New(2.0, 10.0), 0},
	}
	for _, c := range cases {
		n, err := NumberDistinctRootsIn(p, c.iv)
		require.NoError(t, err)
		require.Equal(t, c.want, n, "interval %v", c.iv)
	}
}

func TestNumberDistinctRootsNotSquareFree(t *testing.T) {
	p := poly.FromRoots([]float64{2, 2, 2})

	_, err := NumberDistinctRoots(p)
	require.ErrorIs(t, err, ErrNotSquareFree)

	_, err = NumberDistinctRootsIn(p, interval.New(-10.0, 10.0))
	require.ErrorIs(t, err, ErrNotSquareFree)
}

func TestSignChangesDescartes(t *testing.T) {
	// Descartes: one coefficient sign change, exactly one positive root.
	require.Equal(t, 1, SignChanges(testQuartic()))

	// (x-1)(x-2) has two positive roots and two sign changes.
	require.Equal(t, 2, SignChanges(poly.FromRoots([]float64{1, 2})))

	require.Equal(t, 0, SignChanges(poly.New([]float64{1, 2, 3})))
}
