package grammar

import (
	"github.com/Asaurus1/personal-calc/matrix"
	gorgo "github.com/npillmayer/gorgo/lr"
)

// Token is a resolved lexeme. Every token kind is represented by its own
// type: *Number, *Word, *Operator, *Bracket and *MatrixLiteral.
type Token interface {
	Type() TokType
	Span() gorgo.Span
	Lexeme() string
}

type lexeme struct {
	span gorgo.Span
	text string
}

func (l lexeme) Span() gorgo.Span { return l.span }
func (l lexeme) Lexeme() string   { return l.text }

// Number is a numeric literal. Malformed is set for numbers with more than
// one decimal point; Value is meaningless then.
type Number struct {
	lexeme
	Value     float64
	Malformed bool
}

// Type returns NumberTok.
func (*Number) Type() TokType { return NumberTok }

// Word is an identifier.
type Word struct {
	lexeme
	Name string
}

// Type returns WordTok.
func (*Word) Type() TokType { return WordTok }

// Operator is an arithmetic or assignment operator.
type Operator struct {
	lexeme
	Op OpCode
}

// Type returns OperatorTok.
func (*Operator) Type() TokType { return OperatorTok }

// Bracket is an opening or closing parenthesis. Weight is +BracketWeight for
// '(' and -BracketWeight for ')'.
type Bracket struct {
	lexeme
	Weight int
}

// Type returns BracketTok.
func (*Bracket) Type() TokType { return BracketTok }

// IsOpening is a predicate: is b an opening parenthesis?
func (b *Bracket) IsOpening() bool { return b.Weight > 0 }

// MatrixLiteral is a matrix in literal notation. Value is the null matrix
// if the literal is malformed.
type MatrixLiteral struct {
	lexeme
	Value matrix.Matrix
}

// Type returns MatrixTok.
func (*MatrixLiteral) Type() TokType { return MatrixTok }

// Resolve decodes the lexemes of line into tokens.
func Resolve(line string, lexemes []Lexeme) []Token {
	tokens := make([]Token, len(lexemes))
	for i, l := range lexemes {
		lx := lexeme{span: l.Span, text: l.Text(line)}
		switch l.Type {
		case NumberTok:
			v, ok := DecodeNumber(lx.text)
			tokens[i] = &Number{lexeme: lx, Value: v, Malformed: !ok}
		case WordTok:
			tokens[i] = &Word{lexeme: lx, Name: lx.text}
		case OperatorTok:
			tokens[i] = &Operator{lexeme: lx, Op: OpCodeFor(lx.text)}
		case BracketTok:
			w := BracketWeight
			if lx.text == ")" {
				w = -w
			}
			tokens[i] = &Bracket{lexeme: lx, Weight: w}
		case MatrixTok:
			tokens[i] = &MatrixLiteral{lexeme: lx, Value: matrix.Parse(lx.text)}
		default:
			panic("unknown lexeme type " + l.Type.String())
		}
	}
	return tokens
}

// DecodeNumber converts a string of digits with an optional decimal point
// to a float64. Digits are accumulated into an integer value which is
// divided by the power of ten of the fractional digits at the end.
// Returns false if s contains more than one decimal point.
func DecodeNumber(s string) (float64, bool) {
	var acc, pow float64 = 0, 1
	fraction := false
	for _, c := range s {
		switch {
		case c == '.':
			if fraction {
				return 0, false
			}
			fraction = true
		case c >= '0' && c <= '9':
			acc = acc*10 + float64(c-'0')
			if fraction {
				pow *= 10
			}
		default:
			return 0, false
		}
	}
	return acc / pow, true
}
