package poly

import "errors"

// Errors returned by polynomial operations.
var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("poly: division by zero polynomial")

	// ErrNotInteger is returned by ToInteger when a coefficient is not
	// within tolerance of an integer.
	ErrNotInteger = errors.New("poly: coefficients are not integers")
)
