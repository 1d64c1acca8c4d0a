package refine

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-poly/interval"
)

func TestBisectionSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	root, err := Bisection(f, interval.New(1.0, 2.0), 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-9 {
		t.Fatalf("root = %v, want %v", root, math.Sqrt2)
	}
}

func TestBisectionDescendingFunction(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) }

	root, err := Bisection(f, interval.New(1.0, 2.0), 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(root-math.Pi/2) > 1e-9 {
		t.Fatalf("root = %v, want %v", root, math.Pi/2)
	}
}

func TestBisectionEndpointRoot(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }

	root, err := Bisection(f, interval.New(1.0, 2.0), 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if root != 1 {
		t.Fatalf("root = %v, want the endpoint 1", root)
	}
}

func TestBisectionNoSignChange(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	if _, err := Bisection(f, interval.New(-1.0, 1.0), 1e-10); err != ErrNoSignChange {
		t.Fatalf("err = %v, want ErrNoSignChange", err)
	}
}

func TestRegulaFalsi(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }

	root, err := RegulaFalsi(f, interval.New(1.0, 2.0), 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f(root)) > 1e-9 {
		t.Fatalf("f(root) = %v, want ~0", f(root))
	}

	if _, err := RegulaFalsi(f, interval.New(3.0, 4.0), 1e-10); err != ErrNoSignChange {
		t.Fatalf("err = %v, want ErrNoSignChange", err)
	}
}

func TestNewtonRaphson(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	root, err := NewtonRaphson(f, df, 1.0, 50, 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-9 {
		t.Fatalf("root = %v, want %v", root, math.Sqrt2)
	}
}

func TestNewtonRaphsonDerivativeVanishes(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }

	if _, err := NewtonRaphson(f, df, 0.0, 50, 1e-10); err != ErrDerivativeVanishes {
		t.Fatalf("err = %v, want ErrDerivativeVanishes", err)
	}
}

func TestNewtonRaphsonMaxIterations(t *testing.T) {
	// Newton on x^2 + 1 from x = 1 cycles without converging.
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }

	if _, err := NewtonRaphson(f, df, 1.0, 5, 1e-12); err == nil {
		t.Fatal("expected an error on a rootless function")
	}
}
