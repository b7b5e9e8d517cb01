package evaluator

import (
	"math"

	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/grammar"
	"github.com/Asaurus1/personal-calc/matrix"
)

// apply combines a and b with the binary operator code. tok is the operator
// token responsible for the operation and is used for error reporting.
func apply(code grammar.OpCode, tok grammar.Token, a, b matrix.Matrix) (matrix.Matrix, error) {
	var r matrix.Matrix
	switch code {
	case grammar.Add:
		r = a.Add(b)
	case grammar.Sub:
		r = a.Sub(b)
	case grammar.Mul:
		r = a.Mul(b)
	case grammar.Div:
		if b.EqualScalar(0) {
			return r, semanticError(tok, "division by zero")
		}
		r = a.Div(b)
	case grammar.Pow:
		x, y, err := scalarOperands(code, tok, a, b)
		if err != nil {
			return r, err
		}
		r = matrix.Scalar(math.Pow(x, y))
	case grammar.Mod:
		x, y, err := scalarOperands(code, tok, a, b)
		if err != nil {
			return r, err
		}
		if int64(y) == 0 {
			return r, semanticError(tok, "division by zero")
		}
		r = matrix.Scalar(float64(int64(x) % int64(y)))
	default:
		return r, semanticError(tok, "operator %s not allowed here", code)
	}
	if r.IsNull() {
		tracer().Debugf("%s %s %s is undefined", a, code, b)
		return r, semanticError(tok, "operation %s returned null value (%d×%d %s %d×%d)",
			code, a.Rows(), a.Cols(), code, b.Rows(), b.Cols())
	}
	return r, nil
}

func scalarOperands(code grammar.OpCode, tok grammar.Token, a, b matrix.Matrix) (float64, float64, error) {
	x, ok1 := a.ScalarValue()
	y, ok2 := b.ScalarValue()
	if !ok1 || !ok2 {
		return 0, 0, semanticError(tok, "operator %s requires 1×1 operands", code)
	}
	return x, y, nil
}

func structuralError(tok grammar.Token, format string, args ...interface{}) error {
	return pcalc.Errorf(pcalc.Structural, tok.Span(), tok.Lexeme(), format, args...)
}

func semanticError(tok grammar.Token, format string, args ...interface{}) error {
	return pcalc.Errorf(pcalc.Semantic, tok.Span(), tok.Lexeme(), format, args...)
}
