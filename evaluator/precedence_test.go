package evaluator_test

import (
	"testing"

	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/evaluator"
	"github.com/Asaurus1/personal-calc/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func resolve(t *testing.T, line string) []grammar.Token {
	lexemes, err := grammar.Tokenize(line)
	if err != nil {
		t.Fatalf("cannot tokenize %q: %v", line, err)
	}
	return grammar.Resolve(line, lexemes)
}

func TestLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.evaluator")
	defer teardown()
	//
	for i, x := range []struct {
		input  string
		levels []int
	}{
		{"2+3*4", []int{0, 0, 1, 1, 1}},
		{"(2+3)*4", []int{3, 3, 3, 3, 1, 1, 1}},
		{"2^3*4", []int{2, 2, 2, 1, 1}},
		{"x = 2*(1-y)", []int{0, 0, 1, 1, 3, 3, 3, 3, 0}},
	} {
		levels, err := evaluator.Levels(resolve(t, x.input))
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if len(levels) != len(x.levels) {
			t.Errorf("test %d: expected %d levels, got %d", i, len(x.levels), len(levels))
			continue
		}
		for j := range levels {
			if levels[j] != x.levels[j] {
				t.Errorf("test %d: expected levels %v, got %v", i, x.levels, levels)
				break
			}
		}
	}
}

func TestUnmatchedParentheses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.evaluator")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		pos   int
	}{
		{"((1+2)", 1},
		{"(1+2))", 6},
		{")(", 1},
		{"(1)+(2", 5},
	} {
		_, err := evaluator.Levels(resolve(t, x.input))
		if pcalc.KindOf(err) != pcalc.Structural {
			t.Errorf("test %d: expected structural error for %q, got %v", i, x.input, err)
			continue
		}
		if pos := err.(pcalc.InputError).Pos(); pos != x.pos {
			t.Errorf("test %d: expected error at %d, got %d", i, x.pos, pos)
		}
	}
}
