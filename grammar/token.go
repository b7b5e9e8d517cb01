package grammar

import (
	"fmt"

	gorgo "github.com/npillmayer/gorgo/lr"
)

// TokType is the category of a lexeme.
type TokType int8

// Token categories
const (
	NumberTok TokType = iota + 1
	WordTok
	OperatorTok
	BracketTok
	MatrixTok
)

func (t TokType) String() string {
	switch t {
	case NumberTok:
		return "number"
	case WordTok:
		return "word"
	case OperatorTok:
		return "operator"
	case BracketTok:
		return "bracket"
	case MatrixTok:
		return "matrix"
	}
	return fmt.Sprintf("TokType(%d)", int(t))
}

// Lexeme is a typed span of an input line, as produced by the tokenizer.
type Lexeme struct {
	Type TokType
	Span gorgo.Span // byte positions [from…to) in the input line
}

// Text returns the text of lexeme l in line.
func (l Lexeme) Text(line string) string {
	return line[l.Span.From():l.Span.To()]
}

// OpCode identifies an operator.
type OpCode int8

// Operators
const (
	NoOp      OpCode = iota
	Assign           // =
	Add              // +
	Sub              // -
	Mul              // *
	Div              // / or \
	Mod              // %
	Pow              // ^
	Inc              // ++
	Dec              // --
	AddAssign        // +=
	SubAssign        // -=
	MulAssign        // *=
	DivAssign        // /=
)

var opcodes = map[string]OpCode{
	"=": Assign, "+": Add, "-": Sub, "*": Mul, "/": Div, `\`: Div,
	"%": Mod, "^": Pow, "++": Inc, "--": Dec,
	"+=": AddAssign, "-=": SubAssign, "*=": MulAssign, "/=": DivAssign,
}

var opnames = [...]string{"?", "=", "+", "-", "*", "/", "%", "^", "++", "--",
	"+=", "-=", "*=", "/="}

// OpCodeFor returns the operator code for an operator lexeme, or NoOp.
func OpCodeFor(lexeme string) OpCode {
	return opcodes[lexeme]
}

func (op OpCode) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return "?"
	}
	return opnames[op]
}

// IsAssignment is a predicate: is op '=' or one of the compound assignments?
func (op OpCode) IsAssignment() bool {
	return op == Assign || (op >= AddAssign && op <= DivAssign)
}

// IsIncDec is a predicate: is op '++' or '--'?
func (op OpCode) IsIncDec() bool {
	return op == Inc || op == Dec
}

// Arithmetic returns the binary operator a compound assignment or an
// increment/decrement is based upon. For every other operator it returns op.
func (op OpCode) Arithmetic() OpCode {
	switch op {
	case AddAssign, Inc:
		return Add
	case SubAssign, Dec:
		return Sub
	case MulAssign:
		return Mul
	case DivAssign:
		return Div
	}
	return op
}

// Tier returns the precedence tier of op: 0 for assignment and additive
// operators, 1 for multiplicative operators, 2 for exponentiation.
func (op OpCode) Tier() int {
	switch op {
	case Mul, Div, Mod:
		return 1
	case Pow:
		return 2
	}
	return 0
}

// BracketWeight is the amount a pair of parentheses raises the precedence
// level of its content. It exceeds the number of operator tiers.
const BracketWeight = 3
