package matrix

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	m := Parse("[1,2,3;4,5,6]")
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("expected 2×3 matrix, got %d×%d", m.Rows(), m.Cols())
	}
	if v, ok := m.At(1, 2); !ok || v != 6 {
		t.Errorf("expected element (1,2) to be 6, is %g", v)
	}
	again := Parse(m.String())
	if !again.Equal(m) {
		t.Errorf("re-parsing %s yields %s", m, again)
	}
	if again.String() != m.String() {
		t.Errorf("serialization not idempotent: %s vs %s", m, again)
	}
}

func TestParseLiteralVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	for i, x := range []struct {
		lit        string
		rows, cols int
		first      float64
	}{
		{"[1 2 3]", 1, 3, 1},
		{"[1, 2;3 ,4]", 2, 2, 1},
		{"[-1.5;2.25]", 2, 1, -1.5},
		{"[1,,2]", 1, 2, 1},
		{"[ .5 ]", 1, 1, 0.5},
		{"[7\t8]", 1, 2, 7},
	} {
		m := Parse(x.lit)
		if m.Rows() != x.rows || m.Cols() != x.cols {
			t.Errorf("test %d: expected %d×%d for %q, got %d×%d", i, x.rows, x.cols,
				x.lit, m.Rows(), m.Cols())
			continue
		}
		if v, _ := m.At(0, 0); v != x.first {
			t.Errorf("test %d: expected first element %g, is %g", i, x.first, v)
		}
	}
}

func TestParseInvalidLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	for i, lit := range []string{
		"[]", "[1,2;3]", "[1;2,3]", "[1,2;]", "[1.2.3]", "[1,a]", "[[1]]",
		"1,2", "[1,2", "[-]", "[1-2]", "[.]",
	} {
		if m := Parse(lit); !m.IsNull() {
			t.Errorf("test %d: expected %q to yield null matrix, got %s", i, lit, m)
		}
	}
}

func TestElementAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	m := New(2, 2)
	if !m.Set(1, 0, 3) {
		t.Fatal("expected Set(1,0) to succeed")
	}
	if v, ok := m.At(1, 0); !ok || v != 3 {
		t.Errorf("expected (1,0) = 3, got %g", v)
	}
	if _, ok := m.At(2, 0); ok {
		t.Error("expected access out of bounds to fail")
	}
	if _, ok := Null().At(0, 0); ok {
		t.Error("expected access on null matrix to fail")
	}
	if m.Set(-1, 0, 1) {
		t.Error("expected Set out of bounds to fail")
	}
}

func TestScalarBroadcast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	m := Parse("[1,2;3,4]")
	r := m.Add(Scalar(5))
	if !r.Equal(Parse("[6,7;8,9]")) {
		t.Errorf("expected [6,7;8,9], got %s", r)
	}
	r = Scalar(10).Sub(m)
	if !r.Equal(Parse("[9,8;7,6]")) {
		t.Errorf("expected scalar on the left to broadcast, got %s", r)
	}
	if r = m.Add(Parse("[1,2,3]")); !r.IsNull() {
		t.Errorf("expected shape mismatch to yield null, got %s", r)
	}
	if r = Scalar(3).Add(Scalar(4)); !r.EqualScalar(7) {
		t.Errorf("expected 7, got %s", r)
	}
}

func TestMultiplicationRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	a := Parse("[1,2;3,4]")
	if r := a.Mul(Identity(2)); !r.Equal(a) {
		t.Errorf("expected A * I = A, got %s", r)
	}
	if r := a.Mul(Parse("[5;6]")); !r.Equal(Parse("[17;39]")) {
		t.Errorf("expected linear-algebra product [17;39], got %s", r)
	}
	b := Parse("[1,2,3;4,5,6]")
	if r := b.Mul(b); !r.Equal(Parse("[1,4,9;16,25,36]")) {
		t.Errorf("expected element-wise product, got %s", r)
	}
	if r := b.Mul(a); !r.IsNull() {
		t.Errorf("expected 2×3 * 2×2 to be null, got %s", r)
	}
	if r := Scalar(2).Mul(b); !r.Equal(Parse("[2,4,6;8,10,12]")) {
		t.Errorf("expected scaled matrix, got %s", r)
	}
}

func TestResize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	m := Parse("[1,2;3,4]")
	m.Resize(3, 1)
	if !m.Equal(Parse("[1;3;0]")) {
		t.Errorf("expected [1;3;0], got %s", m)
	}
	m.Resize(1, 3)
	if !m.Equal(Parse("[1,0,0]")) {
		t.Errorf("expected [1,0,0], got %s", m)
	}
	m.Resize(0, 2)
	if !m.IsNull() {
		t.Errorf("expected null matrix, got %s", m)
	}
}

func TestEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	if !Parse("[1,2]").Equal(FromSlice(1, 2, []float64{1, 2})) {
		t.Error("expected equal matrices")
	}
	if Parse("[1,2]").Equal(Parse("[1;2]")) {
		t.Error("expected matrices of different shape to differ")
	}
	if !Scalar(4).EqualScalar(4) || Parse("[4,4]").EqualScalar(4) {
		t.Error("scalar comparison failed")
	}
}

func TestRowOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	m := Parse("[1,2;3,4]")
	m.SwapRows(0, 1)
	m.ScaleRow(0, 2)
	m.AddRow(1, 0, -1)
	if !m.Equal(Parse("[5,6;1,2]")) {
		t.Errorf("expected [5,6;1,2], got %s", m)
	}
	if m.SwapRows(0, 2) {
		t.Error("expected row index out of range to fail")
	}
	if r := m.Row(1); !r.Equal(Parse("[1,2]")) {
		t.Errorf("expected row [1,2], got %s", r)
	}
	if tr := Parse("[1,2,3;4,5,6]").Transpose(); !tr.Equal(Parse("[1,4;2,5;3,6]")) {
		t.Errorf("unexpected transpose %s", tr)
	}
	f := New(2, 3)
	f.Fill(7)
	if r := f.Sub(Scalar(7)); !r.Equal(New(2, 3)) {
		t.Errorf("expected zero matrix after fill and subtract, got %s", r)
	}
}

func TestScalarVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	m := Parse("[1,2;3,4]")
	for i, c := range []struct {
		result, expected Matrix
	}{
		{m.AddScalar(1), Parse("[2,3;4,5]")},
		{m.SubScalar(1), Parse("[0,1;2,3]")},
		{m.MulScalar(2), Parse("[2,4;6,8]")},
		{m.DivScalar(2), Parse("[0.5,1;1.5,2]")},
		{m.Neg(), Parse("[-1,-2;-3,-4]")},
		{Scalar(3).AddScalar(4), Scalar(7)},
	} {
		if !c.result.Equal(c.expected) {
			t.Errorf("%d: expected %s, got %s", i, c.expected, c.result)
		}
	}
	if !m.Equal(Parse("[1,2;3,4]")) {
		t.Errorf("scalar variants modified their operand: %s", m)
	}
	for i, r := range []Matrix{
		Null().AddScalar(1), Null().SubScalar(1), Null().MulScalar(2),
		Null().DivScalar(2), Null().Neg(),
	} {
		if !r.IsNull() {
			t.Errorf("%d: expected null result for null operand, got %s", i, r)
		}
	}
}

func TestIsSquare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	for i, c := range []struct {
		m      Matrix
		square bool
	}{
		{Parse("[1,2;3,4]"), true},
		{Scalar(5), true},
		{Identity(3), true},
		{Parse("[1,2,3;4,5,6]"), false},
		{Null(), false},
	} {
		if c.m.IsSquare() != c.square {
			t.Errorf("%d: expected IsSquare()=%v for %s", i, c.square, c.m)
		}
	}
}

func TestStringOfNonFiniteElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.matrix")
	defer teardown()
	//
	m := Parse("[1,2]").Div(Parse("[0,1]"))
	if s := m.String(); s != "[+Inf,2]" {
		t.Errorf("expected [+Inf,2], got %s", s)
	}
	if !Parse(m.String()).IsNull() {
		t.Errorf("expected non-finite literal to be rejected by Parse")
	}
}
