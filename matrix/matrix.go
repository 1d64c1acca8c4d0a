// Package matrix provides a dense 2-D container over floating-point
// element types. Unlike the numeric packages, shape violations here are
// programmer errors and panic rather than returning an absent result.
package matrix

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-poly/poly"
	"golang.org/x/exp/constraints"
)

// Matrix is a dense row-major matrix.
type Matrix[T constraints.Float] struct {
	rows, cols int
	data       []T
}

// New creates a zero-filled rows x cols matrix.
func New[T constraints.Float](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %dx%d", rows, cols))
	}
	return Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// NewFilled creates a rows x cols matrix with every element set to v.
func NewFilled[T constraints.Float](rows, cols int, v T) Matrix[T] {
	m := New[T](rows, cols)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// FromRows creates a matrix from row slices, which must all have the same
// length.
func FromRows[T constraints.Float](rows [][]T) Matrix[T] {
	if len(rows) == 0 {
		return New[T](0, 0)
	}

	cols := len(rows[0])
	m := New[T](len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("matrix: ragged row %d: %d columns, want %d", r, len(row), cols))
		}
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m
}

// Identity creates the n x n identity matrix.
func Identity[T constraints.Float](n int) Matrix[T] {
	m := New[T](n, n)
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the element at (row, col).
func (m Matrix[T]) At(row, col int) T {
	m.check(row, col)
	return m.data[row*m.cols+col]
}

// Set assigns the element at (row, col).
func (m Matrix[T]) Set(row, col int, v T) {
	m.check(row, col)
	m.data[row*m.cols+col] = v
}

func (m Matrix[T]) check(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range %dx%d", row, col, m.rows, m.cols))
	}
}

// Equal reports whether two matrices have the same shape and elements
// within the default tolerance for T.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}

	eps := poly.DefaultSpec[T]().Epsilon
	for i, v := range m.data {
		if !poly.NearlyEqual(v, other.data[i], eps) {
			return false
		}
	}
	return true
}

// Add returns the element-wise sum. The shapes must match.
func (m Matrix[T]) Add(other Matrix[T]) Matrix[T] {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("matrix: dimension mismatch %dx%d + %dx%d", m.rows, m.cols, other.rows, other.cols))
	}

	out := New[T](m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] + other.data[i]
	}
	return out
}

// Sub returns the element-wise difference. The shapes must match.
func (m Matrix[T]) Sub(other Matrix[T]) Matrix[T] {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("matrix: dimension mismatch %dx%d - %dx%d", m.rows, m.cols, other.rows, other.cols))
	}

	out := New[T](m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] - other.data[i]
	}
	return out
}

// MulScalar returns the matrix scaled element-wise.
func (m Matrix[T]) MulScalar(s T) Matrix[T] {
	out := New[T](m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] * s
	}
	return out
}

// Mul returns the matrix product. The inner dimensions must agree.
func (m Matrix[T]) Mul(other Matrix[T]) Matrix[T] {
	if m.cols != other.rows {
		panic(fmt.Sprintf("matrix: dimension mismatch %dx%d * %dx%d", m.rows, m.cols, other.rows, other.cols))
	}

	out := New[T](m.rows, other.cols)
	for r := range m.rows {
		for k := range m.cols {
			v := m.data[r*m.cols+k]
			if v == 0 {
				continue
			}
			for c := range other.cols {
				out.data[r*other.cols+c] += v * other.data[k*other.cols+c]
			}
		}
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := New[T](m.cols, m.rows)
	for r := range m.rows {
		for c := range m.cols {
			out.data[c*m.rows+r] = m.data[r*m.cols+c]
		}
	}
	return out
}

// String renders the matrix row by row.
func (m Matrix[T]) String() string {
	var b strings.Builder
	for r := range m.rows {
		if r > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[")
		for c := range m.cols {
			if c > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%v", m.data[r*m.cols+c])
		}
		b.WriteString("]")
	}
	return b.String()
}
