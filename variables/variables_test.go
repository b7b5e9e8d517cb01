package variables_test

import (
	"errors"
	"testing"

	"github.com/Asaurus1/personal-calc/matrix"
	"github.com/Asaurus1/personal-calc/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResultVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.variables")
	defer teardown()
	//
	s := variables.NewStore(0)
	if s.Cap() != variables.DefaultCapacity {
		t.Errorf("expected default capacity, got %d", s.Cap())
	}
	ans, ok := s.Lookup("ans")
	if !ok || !ans.Value.EqualScalar(0) {
		t.Fatalf("expected result variable with value 0, got %v", ans)
	}
	if s.Result() != ans {
		t.Errorf("expected Result() to return 'ans'")
	}
}

func TestCreateAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.variables")
	defer teardown()
	//
	s := variables.NewStore(5)
	m := matrix.Parse("[1,2]")
	x, err := s.Create("x", m)
	if err != nil {
		t.Fatal(err)
	}
	m.Set(0, 0, 99)
	if v, _ := x.Value.At(0, 0); v != 1 {
		t.Errorf("expected store to keep its own copy of the value")
	}
	if _, ok := s.Lookup("X"); ok {
		t.Errorf("expected lookup to be case-sensitive")
	}
	if y, ok := s.Lookup("x"); !ok || y != x {
		t.Errorf("expected to find x")
	}
	x2, _ := s.Create("x", matrix.Scalar(3))
	if x2 != x || !x.Value.EqualScalar(3) || s.Len() != 2 {
		t.Errorf("expected re-creation to replace the value of x")
	}
}

func TestEnumerateInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.variables")
	defer teardown()
	//
	s := variables.NewStore(10)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := s.Create(name, matrix.Scalar(1)); err != nil {
			t.Fatal(err)
		}
	}
	vars := s.Enumerate()
	expected := []string{"ans", "zeta", "alpha", "mid"}
	if len(vars) != len(expected) {
		t.Fatalf("expected %d variables, got %d", len(expected), len(vars))
	}
	for i, v := range vars {
		if v.Name != expected[i] {
			t.Errorf("expected variable #%d to be %s, is %s", i, expected[i], v.Name)
		}
	}
}

func TestCapacityAndReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcalc.variables")
	defer teardown()
	//
	s := variables.NewStore(2)
	if _, err := s.Create("a", matrix.Scalar(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("b", matrix.Scalar(2)); !errors.Is(err, variables.ErrStoreFull) {
		t.Errorf("expected store to be full, got %v", err)
	}
	if _, err := s.Create("a", matrix.Scalar(5)); err != nil {
		t.Errorf("expected existing variable to be writable in a full store: %v", err)
	}
	if _, err := s.Create("1x", matrix.Scalar(5)); !errors.Is(err, variables.ErrInvalidName) {
		t.Errorf("expected invalid name to be rejected, got %v", err)
	}
	s.Result().Value = matrix.Scalar(42)
	s.Reset()
	if s.Len() != 1 || !s.Result().Value.EqualScalar(0) {
		t.Errorf("expected reset store to hold 'ans' = 0 only")
	}
}
