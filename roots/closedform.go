package roots

import (
	"math"

	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// QuadraticRoots solves a degree-2 polynomial by the quadratic formula.
// The roots are returned as ((-b+sqrt(D))/2a, (-b-sqrt(D))/2a); a double
// root is reported twice. It fails with ErrNotQuadratic for other degrees
// and ErrNoRealRoots when the discriminant is negative.
func QuadraticRoots[T constraints.Float](p poly.Polynomial[T]) (T, T, error) {
	if !p.IsQuadratic() {
		return 0, 0, ErrNotQuadratic
	}

	a, b, c := p.At(2), p.At(1), p.At(0)
	eps := p.Spec().Epsilon

	disc := b*b - 4*a*c
	switch {
	case poly.NearlyZero(disc, eps):
		disc = 0
	case disc < 0:
		return 0, 0, ErrNoRealRoots
	}

	sqrtD := T(math.Sqrt(float64(disc)))
	return (-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a), nil
}

// HasCubicNormalForm reports whether p is monic of degree 3 with no
// quadratic term, i.e. of the shape X^3 + aX + b.
func HasCubicNormalForm[T constraints.Float](p poly.Polynomial[T]) bool {
	eps := p.Spec().Epsilon
	return p.IsCubic() &&
		poly.NearlyEqual(p.At(3), 1, eps) &&
		poly.NearlyZero(p.At(2), eps)
}

// CubicNormalFormRoots solves the depressed cubic X^3 + pX + q by
// Cardano's method. With three real roots (negative discriminant) the
// trigonometric branch orders them by the k = 0, 1, 2 angles; a single
// real root is returned alone; boundary discriminants produce the double
// or triple root layouts [single, double, double] and [r, r, r]. It fails
// with ErrNotCubic when the polynomial is not in normal form.
func CubicNormalFormRoots[T constraints.Float](c poly.Polynomial[T]) ([]T, error) {
	if !HasCubicNormalForm(c) {
		return nil, ErrNotCubic
	}

	p := float64(c.At(1))
	q := float64(c.At(0))
	eps := float64(c.Spec().Epsilon)

	disc := q*q/4 + p*p*p/27

	switch {
	case math.Abs(disc) < eps && math.Abs(p) < eps:
		// Triple root.
		r := T(math.Cbrt(-q))
		return []T{r, r, r}, nil

	case math.Abs(disc) < eps:
		// One single and one double root.
		single := T(3 * q / p)
		double := T(-3 * q / (2 * p))
		return []T{single, double, double}, nil

	case disc > 0:
		// One real root (Cardano).
		s := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + s)
		v := math.Cbrt(-q/2 - s)
		return []T{T(u + v)}, nil

	default:
		// Three distinct real roots (trigonometric form).
		m := 2 * math.Sqrt(-p/3)
		phi := math.Acos(3 * q / (p * m))

		roots := make([]T, 3)
		for k := range 3 {
			roots[k] = T(m * math.Cos(phi/3-2*math.Pi*float64(k)/3))
		}
		return roots, nil
	}
}

// CubicRoots solves a degree-3 polynomial: it normalizes, substitutes
// X -> X - a2/3 to reach the depressed normal form, solves that, and maps
// the roots back. It fails with ErrNotCubic for other degrees.
func CubicRoots[T constraints.Float](p poly.Polynomial[T]) ([]T, error) {
	if !p.IsCubic() {
		return nil, ErrNotCubic
	}

	monic := p.Normalize()
	shift := monic.At(2) / 3

	// Depressed coefficients via the Tschirnhaus substitution.
	a2, a1, a0 := monic.At(2), monic.At(1), monic.At(0)
	dp := a1 - a2*a2/3
	dq := 2*a2*a2*a2/27 - a2*a1/3 + a0

	normal := poly.NewWithSpec([]T{dq, dp, 0, 1}, p.Spec())
	depressed, err := CubicNormalFormRoots(normal)
	if err != nil {
		return nil, err
	}

	roots := make([]T, len(depressed))
	for i, r := range depressed {
		roots[i] = r - shift
	}
	return roots, nil
}
