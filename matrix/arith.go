package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// zipWith combines m and o element by element. A 1×1 operand is broadcast
// into the shape of the other operand; otherwise shapes have to be equal.
func (m Matrix) zipWith(o Matrix, f func(a, b float64) float64) Matrix {
	if m.IsNull() || o.IsNull() {
		return Null()
	}
	var r Matrix
	switch {
	case o.IsScalar():
		r = m.Clone()
		s := o.data[0]
		for i, v := range r.data {
			r.data[i] = f(v, s)
		}
	case m.IsScalar():
		r = o.Clone()
		s := m.data[0]
		for i, v := range r.data {
			r.data[i] = f(s, v)
		}
	case m.rows == o.rows && m.cols == o.cols:
		r = m.Clone()
		for i, v := range r.data {
			r.data[i] = f(v, o.data[i])
		}
	default:
		tracer().Debugf("shape mismatch: %d×%d vs %d×%d", m.rows, m.cols, o.rows, o.cols)
		return Null()
	}
	return r
}

// Add returns m + o, element by element.
func (m Matrix) Add(o Matrix) Matrix {
	return m.zipWith(o, func(a, b float64) float64 { return a + b })
}

// Sub returns m - o, element by element.
func (m Matrix) Sub(o Matrix) Matrix {
	return m.zipWith(o, func(a, b float64) float64 { return a - b })
}

// Div returns m / o, element by element. Division by zero elements follows
// IEEE 754 rules.
func (m Matrix) Div(o Matrix) Matrix {
	return m.zipWith(o, func(a, b float64) float64 { return a / b })
}

// ElemMul returns the element-by-element product of m and o.
func (m Matrix) ElemMul(o Matrix) Matrix {
	return m.zipWith(o, func(a, b float64) float64 { return a * b })
}

// Mul implements the '*' operator.
//
// A 1×1 operand scales the other operand. Otherwise, if m has as many columns
// as o has rows, the result is the matrix product. Otherwise, if m and o have
// the same shape, they are multiplied element by element. All other
// combinations yield the null matrix.
func (m Matrix) Mul(o Matrix) Matrix {
	switch {
	case m.IsNull() || o.IsNull():
		return Null()
	case m.IsScalar() || o.IsScalar():
		return m.ElemMul(o)
	case m.cols == o.rows:
		return m.Product(o)
	}
	return m.ElemMul(o)
}

// Product returns the matrix product m · o, or the null matrix if the
// number of columns of m differs from the number of rows of o.
func (m Matrix) Product(o Matrix) Matrix {
	if m.IsNull() || o.IsNull() || m.cols != o.rows {
		return Null()
	}
	var p mat.Dense
	p.Mul(m.dense(), o.dense())
	return fromDense(&p)
}

// AddScalar returns m with s added to every element.
func (m Matrix) AddScalar(s float64) Matrix {
	return m.Add(Scalar(s))
}

// SubScalar returns m with s subtracted from every element.
func (m Matrix) SubScalar(s float64) Matrix {
	return m.Sub(Scalar(s))
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix) MulScalar(s float64) Matrix {
	return m.ElemMul(Scalar(s))
}

// DivScalar returns m with every element divided by s.
func (m Matrix) DivScalar(s float64) Matrix {
	return m.Div(Scalar(s))
}

// Neg returns -m.
func (m Matrix) Neg() Matrix {
	return m.MulScalar(-1)
}

// Transpose returns the transpose of m. The transpose of the null matrix
// is null.
func (m Matrix) Transpose() Matrix {
	if m.IsNull() {
		return Null()
	}
	return fromDense(mat.DenseCopyOf(m.dense().T()))
}

// dense wraps the element buffer of m without copying. Callers must not
// modify the result.
func (m Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

func fromDense(d *mat.Dense) Matrix {
	rows, cols := d.Dims()
	r := New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			r.data[i*cols+j] = d.At(i, j)
		}
	}
	return r
}
