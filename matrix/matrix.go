package matrix

import (
	"strconv"
	"strings"
)

// Matrix is a dense matrix of float64 values. The zero value is the null matrix.
//
// Matrix values returned by operations never share their element buffer with
// an operand. Methods with pointer receivers modify the matrix in place.
type Matrix struct {
	rows, cols int
	data       []float64 // row-major, len = rows*cols; nil for null
}

// Null returns the null matrix.
func Null() Matrix {
	return Matrix{}
}

// New creates a zero-filled matrix of shape rows × cols.
// Non-positive dimensions yield the null matrix.
func New(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		return Null()
	}
	return Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Scalar creates a 1×1 matrix holding v.
func Scalar(v float64) Matrix {
	return Matrix{rows: 1, cols: 1, data: []float64{v}}
}

// FromSlice creates a matrix of shape rows × cols from row-major values.
// values is copied. If len(values) does not match the shape, the null
// matrix is returned.
func FromSlice(rows, cols int, values []float64) Matrix {
	m := New(rows, cols)
	if m.IsNull() || len(values) != rows*cols {
		return Null()
	}
	copy(m.data, values)
	return m
}

// Identity creates an n × n identity matrix.
func Identity(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows, 0 for the null matrix.
func (m Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns, 0 for the null matrix.
func (m Matrix) Cols() int {
	return m.cols
}

// Len returns the number of elements.
func (m Matrix) Len() int {
	return len(m.data)
}

// IsNull is a predicate: is m the null matrix?
func (m Matrix) IsNull() bool {
	return m.rows == 0
}

// IsScalar is a predicate: is m of shape 1×1?
func (m Matrix) IsScalar() bool {
	return m.rows == 1 && m.cols == 1
}

// IsSquare is a predicate: has m as many rows as columns? The null matrix
// is not square.
func (m Matrix) IsSquare() bool {
	return !m.IsNull() && m.rows == m.cols
}

// ScalarValue returns the single element of a 1×1 matrix.
func (m Matrix) ScalarValue() (float64, bool) {
	if !m.IsScalar() {
		return 0, false
	}
	return m.data[0], true
}

// At returns the element at (row, col), counting from 0. Access out of
// bounds or on the null matrix returns false.
func (m Matrix) At(row, col int) (float64, bool) {
	if !m.inside(row, col) {
		return 0, false
	}
	return m.data[row*m.cols+col], true
}

// Set sets the element at (row, col), counting from 0. Returns false if the
// position is out of bounds.
func (m *Matrix) Set(row, col int, v float64) bool {
	if !m.inside(row, col) {
		return false
	}
	m.data[row*m.cols+col] = v
	return true
}

func (m Matrix) inside(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Clone returns a copy of m with its own element buffer.
func (m Matrix) Clone() Matrix {
	if m.IsNull() {
		return Null()
	}
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Resize changes the shape of m in place. Elements in the region common to
// the old and the new shape are preserved, new elements are 0.
// Non-positive dimensions make m the null matrix.
func (m *Matrix) Resize(rows, cols int) {
	r := New(rows, cols)
	if r.IsNull() {
		*m = r
		return
	}
	for i := 0; i < min(rows, m.rows); i++ {
		copy(r.data[i*cols:i*cols+min(cols, m.cols)], m.data[i*m.cols:])
	}
	tracer().Debugf("resized %d×%d matrix to %d×%d", m.rows, m.cols, rows, cols)
	*m = r
}

// Fill sets every element of m to v.
func (m *Matrix) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Equal is a predicate: have m and o the same shape and equal elements?
// Two null matrices are equal.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// EqualScalar is a predicate: is m a 1×1 matrix holding v?
func (m Matrix) EqualScalar(v float64) bool {
	s, ok := m.ScalarValue()
	return ok && s == v
}

// String returns m as a matrix literal, e.g. "[1,2,3;4,5,6]". The null
// matrix is "[]". If every element is finite, the result is accepted by
// Parse; literals have no notation for NaN and ±Inf.
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteByte(';')
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.cols+j], 'f', -1, 64))
		}
	}
	b.WriteByte(']')
	return b.String()
}
