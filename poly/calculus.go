package poly

// Derive returns the derivative p'. The derivative of a constant is the
// zero polynomial.
func (p Polynomial[T]) Derive() Polynomial[T] {
	if p.IsConstant() {
		return Polynomial[T]{coeffs: []T{0}, spec: p.spec}
	}

	c := make([]T, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		c[i-1] = T(i) * p.coeffs[i]
	}
	return NewWithSpec(c, p.spec)
}

// Integrate returns the antiderivative of p with constant term 0.
func (p Polynomial[T]) Integrate() Polynomial[T] {
	return p.IntegrateConst(0)
}

// IntegrateConst returns the antiderivative of p whose constant term is c0.
func (p Polynomial[T]) IntegrateConst(c0 T) Polynomial[T] {
	if p.IsZero() {
		return Constant(c0)
	}

	c := make([]T, len(p.coeffs)+1)
	c[0] = c0
	for i, v := range p.coeffs {
		c[i+1] = v / T(i+1)
	}
	return NewWithSpec(c, p.spec)
}
