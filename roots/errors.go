package roots

import "errors"

// Errors returned by the root finders.
var (
	// ErrNotQuadratic is returned by QuadraticRoots for polynomials that
	// are not of degree 2.
	ErrNotQuadratic = errors.New("roots: polynomial is not quadratic")

	// ErrNotCubic is returned by the cubic solvers for polynomials that
	// are not of degree 3.
	ErrNotCubic = errors.New("roots: polynomial is not cubic")

	// ErrNoRealRoots is returned when a closed-form solver finds no real
	// roots.
	ErrNoRealRoots = errors.New("roots: no real roots")

	// ErrNotSquareFree is returned by the Sturm counting operations when
	// the polynomial has repeated roots.
	ErrNotSquareFree = errors.New("roots: polynomial is not square-free")

	// ErrZeroPolynomial is returned by the root bounds for the zero
	// polynomial, whose roots are unbounded.
	ErrZeroPolynomial = errors.New("roots: zero polynomial")

	// ErrNoConvergence is returned when an iterative solver fails to
	// converge within its iteration budget.
	ErrNoConvergence = errors.New("roots: iteration did not converge")
)
