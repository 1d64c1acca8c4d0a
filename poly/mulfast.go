package poly

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/constraints"
)

// Thresholds for the float64 convolution dispatch. Below simdThreshold the
// scalar loop wins; from fftThreshold upward the FFT path wins.
const (
	simdThreshold = 4
	fftThreshold  = 64
)

// convolve computes the linear convolution of two coefficient vectors.
// float64 inputs are dispatched to vectorized or FFT-based paths.
func convolve[T constraints.Float](a, b []T) []T {
	if af, ok := any(a).([]float64); ok {
		bf := any(b).([]float64)
		return any(convolveFloat64(af, bf)).([]T)
	}

	return convolveScalar(a, b)
}

func convolveScalar[T constraints.Float](a, b []T) []T {
	dst := make([]T, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			dst[i+j] += av * bv
		}
	}
	return dst
}

func convolveFloat64(a, b []float64) []float64 {
	// Keep b the shorter operand.
	if len(b) > len(a) {
		a, b = b, a
	}

	switch {
	case len(b) < simdThreshold:
		return convolveScalar(a, b)
	case len(b) >= fftThreshold:
		if dst, err := convolveFFT(a, b); err == nil {
			return dst
		}
		// Plan creation failed; the block path always works.
		fallthrough
	default:
		return convolveBlock(a, b)
	}
}

// convolveBlock accumulates the scaled kernel into the destination using
// vectorized block operations.
func convolveBlock(a, b []float64) []float64 {
	dst := make([]float64, len(a)+len(b)-1)
	temp := make([]float64, len(b))

	for i := range a {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+len(b)], temp)
	}

	return dst
}

// convolveFFT multiplies the coefficient vectors in the frequency domain.
func convolveFFT(a, b []float64) ([]float64, error) {
	resultLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(resultLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	fa := make([]complex128, fftSize)
	fb := make([]complex128, fftSize)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, err
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, err
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, err
	}

	dst := make([]float64, resultLen)
	for i := range dst {
		dst[i] = real(fa[i])
	}
	return dst, nil
}

// scaleCoeffs multiplies the coefficients by s in place.
func scaleCoeffs[T constraints.Float](c []T, s T) {
	if cf, ok := any(c).([]float64); ok {
		vecmath.ScaleBlock(cf, cf, float64(s))
		return
	}
	for i := range c {
		c[i] *= s
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
