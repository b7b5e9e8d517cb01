package matrix

import (
	"strconv"
	"strings"
)

// Parse creates a matrix from a literal like "[1,2,3;4,5,6]".
//
// Rows are separated by ';', elements by ',' or blanks. Every element is an
// unsigned decimal number with an optional leading '-' and at most one
// decimal point. The first row establishes the column count, every
// following row has to match it exactly. Parse returns the null matrix for
// any violation of these rules, including unbalanced brackets and empty rows.
func Parse(literal string) Matrix {
	lit := strings.TrimSpace(literal)
	if len(lit) < 2 || lit[0] != '[' || lit[len(lit)-1] != ']' {
		tracer().Debugf("matrix literal %q not enclosed in brackets", literal)
		return Null()
	}
	body := lit[1 : len(lit)-1]
	if strings.ContainsAny(body, "[]") {
		tracer().Debugf("matrix literal %q has unbalanced brackets", literal)
		return Null()
	}
	rowtexts := strings.Split(body, ";")
	cols := len(elements(rowtexts[0])) // first row establishes column count
	if cols == 0 {
		return Null()
	}
	m := New(len(rowtexts), cols)
	for i, rowtext := range rowtexts {
		elems := elements(rowtext)
		if len(elems) != cols {
			tracer().Debugf("row %d of matrix literal has %d elements, expected %d",
				i, len(elems), cols)
			return Null()
		}
		for j, e := range elems {
			v, ok := parseElement(e)
			if !ok {
				tracer().Debugf("invalid matrix element %q", e)
				return Null()
			}
			m.data[i*cols+j] = v
		}
	}
	return m
}

func elements(row string) []string {
	return strings.FieldsFunc(row, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// parseElement checks for -?[0-9.]+ with at least one digit and at most one '.'
func parseElement(e string) (float64, bool) {
	digits, dots := 0, 0
	for i, c := range e {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		case c == '-' && i == 0:
		default:
			return 0, false
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(e, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
