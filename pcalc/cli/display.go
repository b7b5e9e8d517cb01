package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/matrix"
	"github.com/Asaurus1/personal-calc/pcalc/ui/termui"
	"github.com/Asaurus1/personal-calc/variables"
	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

// Formatter prints calculator results. Everything else is delegated to
// termui.DefaultFormatter.
type Formatter struct {
	termui.DefaultFormatter
	Precision int // fractional digits
	Width     int // minimum cell width of matrix grids
}

// NewFormatter creates a formatter from the global configuration.
func NewFormatter() Formatter {
	return Formatter{
		Precision: pcalc.ConfigInt("display.precision", 6),
		Width:     pcalc.ConfigInt("display.width", 6),
	}
}

// Format is part of interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case *variables.Variable:
		_, err := io.WriteString(w, f.variable(t))
		return err == nil, err
	case []*variables.Variable:
		return f.DefaultFormatter.Format(f.who(t), w)
	case *pcalc.Error:
		_, err := io.WriteString(w, prtxt.FgRed.Sprint("\t"+t.Error())+"\n")
		return err == nil, err
	}
	return f.DefaultFormatter.Format(item, w)
}

func (f Formatter) variable(v *variables.Variable) string {
	m := v.Value
	switch {
	case m.IsNull():
		return fmt.Sprintf("\t%s = null matrix\n", v.Name)
	case m.IsScalar():
		x, _ := m.ScalarValue()
		return fmt.Sprintf("\t%s = %s\n", v.Name, f.number(x))
	}
	return fmt.Sprintf("\t%s =\n%s", v.Name, f.grid(m))
}

// grid renders a matrix as a bracketed literal with one row per line and
// right-aligned cells.
func (f Formatter) grid(m matrix.Matrix) string {
	cells := make([]string, 0, m.Len())
	width := f.Width
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			x, _ := m.At(i, j)
			s := f.number(x)
			if len(s) > width {
				width = len(s)
			}
			cells = append(cells, s)
		}
	}
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		b.WriteByte('\t')
		if i == 0 {
			b.WriteByte('[')
		} else {
			b.WriteByte(' ')
		}
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(prtxt.AlignRight.Apply(cells[i*m.Cols()+j], width))
		}
		if i == m.Rows()-1 {
			b.WriteString("]\n")
		} else {
			b.WriteString(";\n")
		}
	}
	return b.String()
}

// compact renders a matrix on a single line.
func (f Formatter) compact(m matrix.Matrix) string {
	switch {
	case m.IsNull():
		return "null matrix"
	case m.IsScalar():
		x, _ := m.ScalarValue()
		return f.number(x)
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			x, _ := m.At(i, j)
			b.WriteString(f.number(x))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (f Formatter) who(vars []*variables.Variable) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Name", "Shape", "Value"})
	for _, v := range vars {
		tw.AppendRow(table.Row{v.Name, shape(v.Value), f.compact(v.Value)})
	}
	return tw
}

func shape(m matrix.Matrix) string {
	return fmt.Sprintf("%d×%d", m.Rows(), m.Cols())
}

// number rounds x to the configured number of fractional digits. Trailing
// zeros are dropped.
func (f Formatter) number(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	prec := f.Precision
	if prec < 0 {
		prec = 0
	}
	return decimal.NewFromFloat(x).Round(int32(prec)).String()
}
