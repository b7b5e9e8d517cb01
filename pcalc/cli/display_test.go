package cli

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/Asaurus1/personal-calc/matrix"
	"github.com/Asaurus1/personal-calc/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFormatNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.cli")
	defer teardown()
	//
	f := Formatter{Precision: 3}
	for i, c := range []struct {
		x      float64
		output string
	}{
		{2, "2"},
		{-0.5, "-0.5"},
		{1.0 / 3.0, "0.333"},
		{2.0 / 3.0, "0.667"},
		{0.1 + 0.2, "0.3"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	} {
		if s := f.number(c.x); s != c.output {
			t.Errorf("%d: expected %q, got %q", i, c.output, s)
		}
	}
}

func TestFormatVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.cli")
	defer teardown()
	//
	f := Formatter{Precision: 6, Width: 3}
	for i, c := range []struct {
		value  matrix.Matrix
		output string
	}{
		{matrix.Scalar(42), "\tv = 42\n"},
		{matrix.Null(), "\tv = null matrix\n"},
		{matrix.Parse("[1, 2.5]"), "\tv =\n\t[  1, 2.5]\n"},
		{matrix.Parse("[1; 20]"), "\tv =\n\t[  1;\n\t  20]\n"},
	} {
		var b bytes.Buffer
		ok, err := f.Format(&variables.Variable{Name: "v", Value: c.value}, &b)
		if !ok || err != nil {
			t.Fatalf("%d: format failed: %v", i, err)
		}
		if b.String() != c.output {
			t.Errorf("%d: expected %q, got %q", i, c.output, b.String())
		}
	}
}

func TestFormatWho(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.cli")
	defer teardown()
	//
	store := variables.NewStore(0)
	store.Create("m", matrix.Parse("[1, 2; 3, 4]"))
	var b bytes.Buffer
	f := Formatter{Precision: 6, Width: 6}
	if ok, _ := f.Format(store.Enumerate(), &b); !ok {
		t.Fatalf("expected variable list to be formatted")
	}
	out := b.String()
	for _, s := range []string{"NAME", "ans", "1×1", "m", "2×2", "[1, 2; 3, 4]"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected table to contain %q, got\n%s", s, out)
		}
	}
}
