package poly

import "testing"

func TestDerive(t *testing.T) {
	// d/dx (x^3 - 2x^2 + 5) = 3x^2 - 4x
	p := New([]float64{5, 0, -2, 1})
	if got := p.Derive(); !got.Equal(New([]float64{0, -4, 3})) {
		t.Fatalf("Derive = %v", got)
	}

	if !Constant(7.0).Derive().IsZero() {
		t.Fatal("derivative of a constant should be 0")
	}
	if !Zero[float64]().Derive().IsZero() {
		t.Fatal("derivative of 0 should be 0")
	}
}

func TestIntegrate(t *testing.T) {
	// ∫ 3x^2 - 4x dx = x^3 - 2x^2
	p := New([]float64{0, -4, 3})
	if got := p.Integrate(); !got.Equal(New([]float64{0, 0, -2, 1})) {
		t.Fatalf("Integrate = %v", got)
	}

	q := p.IntegrateConst(5)
	if q.At(0) != 5 {
		t.Fatalf("constant term = %v, want 5", q.At(0))
	}

	if got := Zero[float64]().IntegrateConst(2); !got.Equal(Constant(2.0)) {
		t.Fatalf("IntegrateConst on zero = %v", got)
	}
}

func TestDeriveIntegrateRoundTrip(t *testing.T) {
	p := New([]float64{0, 1.5, -3, 0.25, 2})
	if got := p.Integrate().Derive(); !got.Equal(p) {
		t.Fatalf("derivative of antiderivative = %v, want %v", got, p)
	}
}
