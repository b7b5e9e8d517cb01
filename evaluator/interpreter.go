package evaluator

import (
	"errors"

	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/grammar"
	"github.com/Asaurus1/personal-calc/matrix"
	"github.com/Asaurus1/personal-calc/variables"
	gorgo "github.com/npillmayer/gorgo/lr"
)

// Store is the variable store an interpreter reads from and writes to.
// *variables.Store implements it.
type Store interface {
	Lookup(name string) (*variables.Variable, bool)
	Create(name string, initial matrix.Matrix) (*variables.Variable, error)
}

var _ Store = (*variables.Store)(nil)

// Interpreter executes calculator statements, one line at a time.
type Interpreter struct {
	store Store
}

// NewInterpreter creates an interpreter operating on a variable store.
func NewInterpreter(store Store) *Interpreter {
	return &Interpreter{store: store}
}

// EvaluateLine tokenizes, resolves and executes a line of input.
// It returns the variable which has been read or written by the statement.
//
// All errors resulting from invalid input are of type *pcalc.Error.
// The variable store is not modified if an error occurs.
func (intp *Interpreter) EvaluateLine(line string) (*variables.Variable, error) {
	lexemes, err := grammar.Tokenize(line)
	if err != nil {
		return nil, err
	}
	return intp.Execute(grammar.Resolve(line, lexemes))
}

// Execute executes a statement given as a sequence of resolved tokens.
func (intp *Interpreter) Execute(tokens []grammar.Token) (*variables.Variable, error) {
	if len(tokens) == 0 {
		return nil, errEmpty()
	}
	if v, isIncDec, err := intp.incDec(tokens); isIncDec {
		return v, err
	}
	if first := tokens[0]; isOperator(first) {
		return nil, structuralError(first, "statement must not start with operator %s", first.Lexeme())
	}
	if last := tokens[len(tokens)-1]; isOperator(last) {
		return nil, structuralError(last, "statement must not end with operator %s", last.Lexeme())
	}
	levels, err := Levels(tokens)
	if err != nil {
		return nil, err
	}
	if w, ok := tokens[0].(*grammar.Word); ok && len(tokens) == 1 {
		return intp.read(w)
	}
	if len(tokens) > 2 {
		if op, ok := tokens[1].(*grammar.Operator); ok && op.Op.IsAssignment() {
			return intp.assign(tokens, levels, op)
		}
	}
	result, err := NewEvaluator(tokens, levels, intp.store).Evaluate(0)
	if err != nil {
		return nil, err
	}
	return intp.store.Create(variables.ResultName, result)
}

func (intp *Interpreter) read(w *grammar.Word) (*variables.Variable, error) {
	v, ok := intp.store.Lookup(w.Name)
	if !ok {
		return nil, semanticError(w, "unknown variable %s", w.Name)
	}
	return v, nil
}

// assign executes 'x = expr' and the compound assignments.
func (intp *Interpreter) assign(tokens []grammar.Token, levels []int, op *grammar.Operator) (
	*variables.Variable, error) {
	//
	target, ok := tokens[0].(*grammar.Word)
	if !ok {
		return nil, semanticError(tokens[0], "cannot assign to non-variable type %s",
			tokens[0].Type())
	}
	var current *variables.Variable
	if op.Op != grammar.Assign {
		if current, ok = intp.store.Lookup(target.Name); !ok {
			return nil, semanticError(target, "unknown variable %s", target.Name)
		}
	}
	value, err := NewEvaluator(tokens, levels, intp.store).Evaluate(2)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if value, err = apply(op.Op.Arithmetic(), op, current.Value, value); err != nil {
			return nil, err
		}
	}
	v, err := intp.store.Create(target.Name, value)
	if errors.Is(err, variables.ErrStoreFull) {
		return nil, semanticError(target, "variable store full, cannot create %s", target.Name)
	} else if err != nil {
		return nil, err
	}
	tracer().Debugf("assigned %s", v)
	return v, nil
}

// incDec executes 'x++', '++x', 'x--' and '--x'. It reports false if
// tokens contain no increment or decrement operator.
func (intp *Interpreter) incDec(tokens []grammar.Token) (*variables.Variable, bool, error) {
	pos := -1
	for i, t := range tokens {
		if op, ok := t.(*grammar.Operator); ok && op.Op.IsIncDec() {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, false, nil
	}
	op := tokens[pos].(*grammar.Operator)
	if len(tokens) != 2 {
		return nil, true, semanticError(op, "%s has to be applied to a single variable", op.Op)
	}
	w, ok := tokens[1-pos].(*grammar.Word)
	if !ok {
		return nil, true, semanticError(tokens[1-pos], "cannot increment/decrement a literal")
	}
	v, ok := intp.store.Lookup(w.Name)
	if !ok {
		return nil, true, semanticError(w, "unknown variable %s", w.Name)
	}
	var value matrix.Matrix
	if op.Op == grammar.Inc {
		value = v.Value.AddScalar(1)
	} else {
		value = v.Value.SubScalar(1)
	}
	if value.IsNull() {
		return nil, true, semanticError(op, "operation %s returned null value", op.Op)
	}
	v.Value = value
	return v, true, nil
}

func errEmpty() error {
	return pcalc.Errorf(pcalc.Structural, gorgo.Span{}, "", "empty expression")
}
