package matrix

// Elementary row operations. Rows are counted from 0. Operations with row
// indices out of range do nothing and return false.

// Row returns a 1×cols copy of row i, or the null matrix if i is out of range.
func (m Matrix) Row(i int) Matrix {
	if i < 0 || i >= m.rows {
		return Null()
	}
	return FromSlice(1, m.cols, m.data[i*m.cols:(i+1)*m.cols])
}

// SwapRows exchanges rows i and j.
func (m *Matrix) SwapRows(i, j int) bool {
	if !m.hasRow(i) || !m.hasRow(j) {
		return false
	}
	ri, rj := m.rowSlice(i), m.rowSlice(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
	return true
}

// ScaleRow multiplies every element of row i by k.
func (m *Matrix) ScaleRow(i int, k float64) bool {
	if !m.hasRow(i) {
		return false
	}
	r := m.rowSlice(i)
	for c := range r {
		r[c] *= k
	}
	return true
}

// AddRow adds k times row src to row dst.
func (m *Matrix) AddRow(src, dst int, k float64) bool {
	if !m.hasRow(src) || !m.hasRow(dst) {
		return false
	}
	s, d := m.rowSlice(src), m.rowSlice(dst)
	for c := range d {
		d[c] += k * s[c]
	}
	return true
}

func (m *Matrix) hasRow(i int) bool {
	return i >= 0 && i < m.rows
}

func (m *Matrix) rowSlice(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}
