/*
Package evaluator interprets calculator statements.

An input line is tokenized and resolved by package grammar. The interpreter
then decides about the form of the statement:

	x            ⟶ read variable x
	x = expr     ⟶ assign to x (also +=, -=, *=, /=)
	x++, --x     ⟶ increment/decrement x
	expr         ⟶ evaluate and assign to 'ans'

Expressions are evaluated without building a syntax tree. Every token is
assigned a precedence level, derived from the tiers of the operators
(additive < multiplicative < exponentiation) and the nesting depth of
parentheses. The evaluator consumes the tokens left to right, descending
into a deeper level of recursion whenever the next operator binds tighter
than the current level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The personal-calc Authors

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcalc.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("pcalc.evaluator")
}
