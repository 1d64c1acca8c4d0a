package poly

import (
	"testing"
)

func TestAddSub(t *testing.T) {
	p := New([]float64{1, 2, 3})    // 3x^2 + 2x + 1
	q := New([]float64{4, 0, 0, 1}) // x^3 + 4

	sum := p.Add(q)
	if !sum.Equal(New([]float64{5, 2, 3, 1})) {
		t.Fatalf("Add = %v", sum)
	}

	diff := sum.Sub(q)
	if !diff.Equal(p) {
		t.Fatalf("Sub does not undo Add: %v", diff)
	}
}

func TestAddCancelsDegree(t *testing.T) {
	p := New([]float64{0, 0, 1})
	q := New([]float64{1, 0, -1})

	sum := p.Add(q)
	if sum.Degree() != 0 || sum.At(0) != 1 {
		t.Fatalf("x^2 + (1 - x^2) = %v, want 1", sum)
	}
}

func TestScalarOps(t *testing.T) {
	p := New([]float64{1, -2, 4})

	if got := p.AddScalar(3); got.At(0) != 4 {
		t.Fatalf("AddScalar = %v", got)
	}
	if got := p.SubScalar(1); got.At(0) != 0 {
		t.Fatalf("SubScalar = %v", got)
	}
	if got := p.MulScalar(2); !got.Equal(New([]float64{2, -4, 8})) {
		t.Fatalf("MulScalar = %v", got)
	}
	if got := p.DivScalar(4); !got.Equal(New([]float64{0.25, -0.5, 1})) {
		t.Fatalf("DivScalar = %v", got)
	}
	if got := p.Neg().Add(p); !got.IsZero() {
		t.Fatalf("p + (-p) = %v, want 0", got)
	}

	if got := p.MulScalar(0); !got.IsZero() {
		t.Fatalf("p * 0 = %v, want 0", got)
	}
}

func TestMul(t *testing.T) {
	// (x - 1)(x + 1) = x^2 - 1
	p := New([]float64{-1, 1})
	q := New([]float64{1, 1})

	if got := p.Mul(q); !got.Equal(New([]float64{-1, 0, 1})) {
		t.Fatalf("Mul = %v", got)
	}

	// (2x + 3)(x^2 - x + 1) = 2x^3 + x^2 - x + 3
	a := New([]float64{3, 2})
	b := New([]float64{1, -1, 1})
	if got := a.Mul(b); !got.Equal(New([]float64{3, -1, 1, 2})) {
		t.Fatalf("Mul = %v", got)
	}

	if got := p.Mul(Zero[float64]()); !got.IsZero() {
		t.Fatalf("p * 0 = %v, want 0", got)
	}
	if got := p.Mul(One[float64]()); !got.Equal(p) {
		t.Fatalf("p * 1 = %v, want p", got)
	}
}

func TestPow(t *testing.T) {
	p := New([]float64{1, 1}) // x + 1

	if !p.Pow(0).IsOne() {
		t.Fatal("p^0 should be 1")
	}
	if !p.Pow(1).Equal(p) {
		t.Fatal("p^1 should be p")
	}

	// (x + 1)^4 = x^4 + 4x^3 + 6x^2 + 4x + 1
	if got := p.Pow(4); !got.Equal(New([]float64{1, 4, 6, 4, 1})) {
		t.Fatalf("(x+1)^4 = %v", got)
	}

	if !Zero[float64]().Pow(0).IsOne() {
		t.Fatal("0^0 should be the constant 1")
	}
}

func TestCompose(t *testing.T) {
	// p(x) = x^2 + 1, q(x) = x - 2, p(q(x)) = x^2 - 4x + 5
	p := New([]float64{1, 0, 1})
	q := New([]float64{-2, 1})

	if got := p.Compose(q); !got.Equal(New([]float64{5, -4, 1})) {
		t.Fatalf("Compose = %v", got)
	}

	// Composing with X is the identity.
	if got := p.Compose(X[float64]()); !got.Equal(p) {
		t.Fatalf("p(x) = %v, want p", got)
	}
}

func TestDivide(t *testing.T) {
	// (x^2 + 3x + 2) / (x + 1) = (x + 2), remainder 0
	p := New([]float64{2, 3, 1})
	d := New([]float64{1, 1})

	quot, rem, err := p.Divide(d)
	if err != nil {
		t.Fatal(err)
	}
	if !quot.Equal(New([]float64{2, 1})) {
		t.Fatalf("quotient = %v", quot)
	}
	if !rem.IsZero() {
		t.Fatalf("remainder = %v, want 0", rem)
	}
}

func TestDivideLaw(t *testing.T) {
	cases := []struct {
		p, d Polynomial[float64]
	}{
		{New([]float64{1, -2, 0, 5, 3}), New([]float64{-1, 2, 1})},
		{New([]float64{7, 0, 0, 0, 0, 1}), New([]float64{1, 1})},
		{New([]float64{2, 3}), New([]float64{1, 0, 4})}, // degree(p) < degree(d)
		{FromRoots([]float64{1, 2, 3}), New([]float64{0.5, -1.5, 2})},
	}

	for _, c := range cases {
		quot, rem, err := c.p.Divide(c.d)
		if err != nil {
			t.Fatal(err)
		}
		if !rem.IsZero() && rem.Degree() >= c.d.Degree() {
			t.Fatalf("remainder degree %d not below divisor degree %d", rem.Degree(), c.d.Degree())
		}
		if got := c.d.Mul(quot).Add(rem); !got.Equal(c.p) {
			t.Fatalf("d*q + r = %v, want %v", got, c.p)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	p := New([]float64{1, 1})
	if _, _, err := p.Divide(Zero[float64]()); err != ErrDivisionByZero {
		t.Fatalf("err = %v, want ErrDivisionByZero", err)
	}
	if _, err := p.Quo(Zero[float64]()); err != ErrDivisionByZero {
		t.Fatalf("Quo err = %v, want ErrDivisionByZero", err)
	}
	if _, err := p.Rem(Zero[float64]()); err != ErrDivisionByZero {
		t.Fatalf("Rem err = %v, want ErrDivisionByZero", err)
	}
}

func TestNormalize(t *testing.T) {
	p := New([]float64{2, -4, 8})

	n := p.Normalize()
	if !almostEqual(n.LeadingCoefficient(), 1, 1e-12) {
		t.Fatalf("leading coefficient = %v, want 1", n.LeadingCoefficient())
	}
	if !n.Equal(New([]float64{0.25, -0.5, 1})) {
		t.Fatalf("Normalize = %v", n)
	}

	if got := Zero[float64]().Normalize(); !got.IsZero() {
		t.Fatalf("Normalize(0) = %v, want 0", got)
	}
}
