package poly

// AddScalar returns p with the scalar added to the constant term.
func (p Polynomial[T]) AddScalar(s T) Polynomial[T] {
	c := p.Coeffs()
	c[0] += s
	return NewWithSpec(c, p.spec)
}

// SubScalar returns p with the scalar subtracted from the constant term.
func (p Polynomial[T]) SubScalar(s T) Polynomial[T] {
	return p.AddScalar(-s)
}

// MulScalar returns p with every coefficient multiplied by the scalar.
func (p Polynomial[T]) MulScalar(s T) Polynomial[T] {
	c := p.Coeffs()
	scaleCoeffs(c, s)
	return NewWithSpec(c, p.spec)
}

// DivScalar returns p with every coefficient divided by the scalar.
// The scalar must be non-zero.
func (p Polynomial[T]) DivScalar(s T) Polynomial[T] {
	return p.MulScalar(1 / s)
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	return p.MulScalar(-1)
}

// Add returns p + q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}

	c := make([]T, n)
	for i := range c {
		c[i] = p.At(i) + q.At(i)
	}
	return NewWithSpec(c, p.spec)
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	return p.Add(q.Neg())
}

// Mul returns the product p * q via coefficient convolution. For float64
// coefficients, larger operands are dispatched to vectorized or FFT-based
// convolution.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	if p.IsZero() || q.IsZero() {
		return Polynomial[T]{coeffs: []T{0}, spec: p.spec}
	}

	c := convolve(p.coeffs, q.coeffs)
	return NewWithSpec(c, p.spec)
}

// Pow returns p raised to the given non-negative exponent by repeated
// squaring. Pow(0) is the constant polynomial 1.
func (p Polynomial[T]) Pow(n uint) Polynomial[T] {
	result := One[T]()
	base := p

	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result
}

// Compose returns the composition p(q(x)), evaluated by Horner's method
// over polynomial values.
func (p Polynomial[T]) Compose(q Polynomial[T]) Polynomial[T] {
	result := Constant(p.coeffs[len(p.coeffs)-1])
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		result = result.Mul(q).AddScalar(p.coeffs[i])
	}
	return result
}

// Divide performs Euclidean division of p by the divisor, returning the
// quotient and remainder such that p = divisor*quotient + remainder and
// the remainder has smaller degree than the divisor (or is zero).
// Dividing by the zero polynomial fails with ErrDivisionByZero.
func (p Polynomial[T]) Divide(divisor Polynomial[T]) (quotient, remainder Polynomial[T], err error) {
	if divisor.IsZero() {
		return Zero[T](), Zero[T](), ErrDivisionByZero
	}

	quotient = Polynomial[T]{coeffs: []T{0}, spec: p.spec}
	remainder = p

	lead := divisor.LeadingCoefficient()

	for !remainder.IsZero() && remainder.Degree() >= divisor.Degree() {
		shift := remainder.Degree() - divisor.Degree()
		ratio := remainder.LeadingCoefficient() / lead

		term := Monomial(shift, ratio)
		quotient = quotient.Add(term)
		remainder = remainder.Sub(term.Mul(divisor))
	}

	return quotient, remainder, nil
}

// Quo returns the quotient of the Euclidean division of p by q.
func (p Polynomial[T]) Quo(q Polynomial[T]) (Polynomial[T], error) {
	quot, _, err := p.Divide(q)
	return quot, err
}

// Rem returns the remainder of the Euclidean division of p by q.
func (p Polynomial[T]) Rem(q Polynomial[T]) (Polynomial[T], error) {
	_, rem, err := p.Divide(q)
	return rem, err
}

// Normalize returns the monic polynomial obtained by dividing every
// coefficient by the leading coefficient. The zero polynomial is returned
// unchanged.
func (p Polynomial[T]) Normalize() Polynomial[T] {
	if p.IsZero() {
		return p
	}
	return p.DivScalar(p.LeadingCoefficient())
}
