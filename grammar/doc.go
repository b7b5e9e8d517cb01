/*
Package grammar implements the lexical stages of the calculator: the tokenizer
and the literal resolver.

Tokenize splits an input line into lexemes, i.e. typed spans of text. Resolve
decodes every lexeme into a token carrying the value of its kind:

	NumberTok    ⟶ *Number        (float64)
	WordTok      ⟶ *Word          (identifier)
	OperatorTok  ⟶ *Operator      (OpCode)
	BracketTok   ⟶ *Bracket       (signed precedence weight)
	MatrixTok    ⟶ *MatrixLiteral (matrix.Matrix)

The resolver does not fail. Literals which cannot be decoded are flagged and
reported by the evaluator as soon as their value is needed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The personal-calc Authors

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("pcalc.grammar")
}
