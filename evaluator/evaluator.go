package evaluator

import (
	"github.com/Asaurus1/personal-calc/grammar"
	"github.com/Asaurus1/personal-calc/matrix"
)

// Evaluator evaluates a sequence of resolved tokens by precedence climbing.
// It is created for a single statement and not re-used.
type Evaluator struct {
	tokens []grammar.Token
	levels []int // precedence level for each token
	cursor int   // next token to consume, shared by all levels of recursion
	store  Store // variables are looked up here
}

// NewEvaluator creates an evaluator for tokens. levels are the precedence
// levels computed by Levels.
func NewEvaluator(tokens []grammar.Token, levels []int, store Store) *Evaluator {
	return &Evaluator{
		tokens: tokens,
		levels: levels,
		store:  store,
	}
}

// Evaluate evaluates tokens[start:] and returns the resulting value.
func (ev *Evaluator) Evaluate(start int) (matrix.Matrix, error) {
	ev.cursor = start
	return ev.eval(len(ev.tokens), 0)
}

// eval consumes tokens from the cursor up to end. It returns as soon as an
// operator with a precedence level below level is ahead.
func (ev *Evaluator) eval(end, level int) (matrix.Matrix, error) {
	var acc matrix.Matrix
	first := true
	for {
		ev.skipBrackets(end)
		if ev.cursor >= end {
			if first {
				return acc, ev.emptyExpression()
			}
			break
		}
		var op *grammar.Operator
		if !first {
			var ok bool
			if op, ok = ev.tokens[ev.cursor].(*grammar.Operator); !ok {
				return acc, structuralError(ev.tokens[ev.cursor], "expected operator, found %q",
					ev.tokens[ev.cursor].Lexeme())
			}
			ev.cursor++
			ev.skipBrackets(end)
			if ev.cursor >= end {
				return acc, structuralError(op, "missing operand for %s", op.Op)
			}
		}
		next := ev.nextOperator(ev.cursor+1, end)
		if next >= 0 && ev.operator(next).Op.IsAssignment() {
			return acc, semanticError(ev.tokens[next], "assignment inside an expression")
		}
		var value matrix.Matrix
		var err error
		if next >= 0 && ev.levels[next] > level {
			value, err = ev.eval(end, level+1) // consume the tighter binding sub-chain
		} else {
			value, err = ev.value(ev.cursor)
			ev.cursor++
		}
		if err != nil {
			return acc, err
		}
		if first {
			acc, first = value, false
		} else {
			if op.Op.IsAssignment() || op.Op.IsIncDec() {
				return acc, semanticError(op, "operator %s not allowed inside an expression", op.Op)
			}
			if acc, err = apply(op.Op, op, acc, value); err != nil {
				return acc, err
			}
		}
		next = ev.nextOperator(ev.cursor, end)
		if ev.cursor >= end || (next >= 0 && ev.levels[next] < level) {
			break
		}
	}
	tracer().Debugf("level %d evaluated to %s", level, acc)
	return acc, nil
}

// value resolves the value of the token at position i.
func (ev *Evaluator) value(i int) (matrix.Matrix, error) {
	switch tok := ev.tokens[i].(type) {
	case *grammar.Number:
		if tok.Malformed {
			return matrix.Null(), structuralError(tok, "malformed number %s", tok.Lexeme())
		}
		return matrix.Scalar(tok.Value), nil
	case *grammar.Word:
		v, ok := ev.store.Lookup(tok.Name)
		if !ok {
			return matrix.Null(), semanticError(tok, "unknown variable %s", tok.Name)
		}
		return v.Value, nil
	case *grammar.MatrixLiteral:
		if tok.Value.IsNull() {
			return matrix.Null(), structuralError(tok, "malformed matrix literal %s", tok.Lexeme())
		}
		return tok.Value, nil
	}
	return matrix.Null(), structuralError(ev.tokens[i], "expected value, found %q",
		ev.tokens[i].Lexeme())
}

func (ev *Evaluator) skipBrackets(end int) {
	for ev.cursor < end {
		if _, ok := ev.tokens[ev.cursor].(*grammar.Bracket); !ok {
			return
		}
		ev.cursor++
	}
}

// nextOperator returns the position of the first operator in tokens[from:end],
// or -1.
func (ev *Evaluator) nextOperator(from, end int) int {
	for i := from; i < end; i++ {
		if isOperator(ev.tokens[i]) {
			return i
		}
	}
	return -1
}

func (ev *Evaluator) operator(i int) *grammar.Operator {
	return ev.tokens[i].(*grammar.Operator)
}

func (ev *Evaluator) emptyExpression() error {
	if len(ev.tokens) == 0 {
		return errEmpty()
	}
	last := ev.tokens[min(ev.cursor, len(ev.tokens))-1]
	return structuralError(last, "empty expression")
}
