package variables

import (
	"errors"
	"fmt"

	"github.com/Asaurus1/personal-calc/matrix"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ResultName is the name of the implicit result variable.
const ResultName = "ans"

// DefaultCapacity is the capacity of a store if none is configured.
const DefaultCapacity = 20

// Errors returned by Store.Create.
var (
	ErrStoreFull   = errors.New("variable store full")
	ErrInvalidName = errors.New("invalid variable name")
)

// Variable is a named matrix value.
type Variable struct {
	Name  string
	Value matrix.Matrix
}

func (v *Variable) String() string {
	return fmt.Sprintf("<var %s=%s>", v.Name, v.Value)
}

// Store is a bounded table of variables.
type Store struct {
	vars     *linkedhashmap.Map // name → *Variable, in order of creation
	capacity int
}

// NewStore creates a store for at most capacity variables, including the
// result variable. A capacity < 1 selects DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	s := &Store{
		vars:     linkedhashmap.New(),
		capacity: capacity,
	}
	s.vars.Put(ResultName, &Variable{Name: ResultName, Value: matrix.Scalar(0)})
	return s
}

// Lookup finds a variable by name.
func (s *Store) Lookup(name string) (*Variable, bool) {
	v, found := s.vars.Get(name)
	if !found {
		return nil, false
	}
	return v.(*Variable), true
}

// Create creates a variable with an initial value. If a variable of this name
// already exists, its value is replaced. The store keeps its own copy of initial.
func (s *Store) Create(name string, initial matrix.Matrix) (*Variable, error) {
	if !IsValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if v, found := s.Lookup(name); found {
		v.Value = initial.Clone()
		return v, nil
	}
	if s.vars.Size() >= s.capacity {
		tracer().Infof("cannot create %q, store holds %d variables", name, s.vars.Size())
		return nil, ErrStoreFull
	}
	v := &Variable{Name: name, Value: initial.Clone()}
	s.vars.Put(name, v)
	tracer().Debugf("created variable %s", v)
	return v, nil
}

// Result returns the implicit result variable.
func (s *Store) Result() *Variable {
	v, _ := s.Lookup(ResultName)
	return v
}

// Enumerate returns all variables in order of creation.
func (s *Store) Enumerate() []*Variable {
	vars := make([]*Variable, 0, s.vars.Size())
	it := s.vars.Iterator()
	for it.Next() {
		vars = append(vars, it.Value().(*Variable))
	}
	return vars
}

// Len returns the number of variables, including the result variable.
func (s *Store) Len() int {
	return s.vars.Size()
}

// Cap returns the capacity of the store.
func (s *Store) Cap() int {
	return s.capacity
}

// Reset drops all variables and sets the result variable to 0.
func (s *Store) Reset() {
	s.vars.Clear()
	s.vars.Put(ResultName, &Variable{Name: ResultName, Value: matrix.Scalar(0)})
	tracer().Debugf("variable store cleared")
}

// IsValidName is a predicate: is name a valid identifier, i.e.
// [A-Za-z_][A-Za-z0-9_]* ?
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
