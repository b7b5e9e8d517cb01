package evaluator

import (
	"github.com/Asaurus1/personal-calc"
	"github.com/Asaurus1/personal-calc/grammar"
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Levels computes the precedence level for every token.
//
// An operator's level is the current bracket base level plus its tier. The
// operand preceding an operator is raised to the operator's level if it was
// lower. Brackets shift the base level by their weight and carry the
// shifted base level themselves. Every other token inherits the level of its
// predecessor.
//
// Unbalanced parentheses result in a structural error naming the bracket
// without a partner.
func Levels(tokens []grammar.Token) ([]int, error) {
	levels := make([]int, len(tokens))
	open := linkedliststack.New() // positions of unmatched '('
	base := 0
	for i, t := range tokens {
		switch tok := t.(type) {
		case *grammar.Operator:
			levels[i] = base + tok.Op.Tier()
			if i > 0 && !isOperator(tokens[i-1]) && levels[i-1] < levels[i] {
				levels[i-1] = levels[i]
			}
		case *grammar.Bracket:
			base += tok.Weight
			if tok.IsOpening() {
				open.Push(i)
			} else if _, ok := open.Pop(); !ok {
				return nil, pcalc.Errorf(pcalc.Structural, tok.Span(), tok.Lexeme(),
					"unmatched parentheses: no opening bracket for ')'")
			}
			levels[i] = base
		default:
			if i > 0 {
				levels[i] = levels[i-1]
			}
		}
	}
	if pos, unclosed := open.Peek(); unclosed {
		tok := tokens[pos.(int)]
		return nil, pcalc.Errorf(pcalc.Structural, tok.Span(), tok.Lexeme(),
			"unmatched parentheses: '(' is never closed")
	}
	tracer().Debugf("precedence levels = %v", levels)
	return levels, nil
}

func isOperator(t grammar.Token) bool {
	_, ok := t.(*grammar.Operator)
	return ok
}
