package grammar

/*
BSD License

Copyright (c) 2026, The personal-calc Authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/Asaurus1/personal-calc"
	gorgo "github.com/npillmayer/gorgo/lr"
	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The operator lexemes. Two-character operators win over their one-character
// prefixes by longest match.
var operators = []string{
	`\+`, `\-`, `\*`, `\/`, `\\`, `\^`, `%`, `=`,
	`\+\+`, `\-\-`, `\+=`, `\-=`, `\*=`, `\/=`,
}

var lexer *lex.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for calculator input. It is compiled once.
func Lexer() (*lex.Lexer, error) {
	initOnce.Do(func() {
		lexer = lex.NewLexer()
		lexer.Add([]byte(` +`), skip) // only blanks separate tokens
		lexer.Add([]byte(`[0-9]([0-9]|\.)*`), makeToken(NumberTok))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(WordTok))
		for _, op := range operators {
			lexer.Add([]byte(op), makeToken(OperatorTok))
		}
		lexer.Add([]byte(`\(|\)`), makeToken(BracketTok))
		lexer.Add([]byte(`\[([0-9]|\.|,|;| |\t|\-)*\]`), makeToken(MatrixTok))
		lexer.Add([]byte(`\[`), invalidMatrix) // literal not matched by the rule above
		lexerErr = lexer.Compile()
		if lexerErr != nil {
			tracer().Errorf("cannot compile lexer: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func skip(*lex.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(t TokType) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(t), string(m.Bytes), m), nil
	}
}

// invalidMatrix is called for a '[' which does not start a well-formed
// matrix lexeme. It locates the first offending character.
func invalidMatrix(s *lex.Scanner, m *machines.Match) (interface{}, error) {
	text := s.Text
	for i := m.TC + 1; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if !isMatrixRune(r) {
			span := gorgo.Span{uint64(m.TC), uint64(i + size)}
			elem := string(text[m.TC : i+size])
			return nil, pcalc.Errorf(pcalc.Lexical, span, elem,
				"invalid matrix element: %s", elem)
		}
		i += size
	}
	span := gorgo.Span{uint64(m.TC), uint64(len(text))}
	return nil, pcalc.Errorf(pcalc.Lexical, span, string(text[m.TC:]),
		"unexpected end of line in matrix literal")
}

func isMatrixRune(r rune) bool {
	switch r {
	case '.', ',', ';', ' ', '\t', '-':
		return true
	}
	return r >= '0' && r <= '9'
}

// Tokenize splits an input line into lexemes. The first invalid character
// stops tokenization with a lexical error.
func Tokenize(line string) ([]Lexeme, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var lexemes []Lexeme
	end := 0 // end of the last lexeme
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, lexicalError(line, end, err)
		}
		token := tok.(*lex.Token)
		l := Lexeme{
			Type: TokType(token.Type),
			Span: gorgo.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		}
		end = token.TC + len(token.Lexeme)
		lexemes = append(lexemes, l)
	}
	tracer().Debugf("tokenized %q into %d lexemes", line, len(lexemes))
	return lexemes, nil
}

// lexicalError converts a scanner error into an input error. Errors from
// our own actions are already input errors.
func lexicalError(line string, end int, err error) error {
	var ierr *pcalc.Error
	if errors.As(err, &ierr) {
		return ierr
	}
	pos := end
	var unconsumed *machines.UnconsumedInput
	if errors.As(err, &unconsumed) {
		pos = unconsumed.StartTC
	} else {
		for pos < len(line) && line[pos] == ' ' {
			pos++
		}
	}
	if pos >= len(line) {
		return pcalc.Errorf(pcalc.Lexical, gorgo.Span{uint64(len(line)), uint64(len(line))},
			"", "unexpected end of line")
	}
	r, size := utf8.DecodeRuneInString(line[pos:])
	return pcalc.Errorf(pcalc.Lexical, gorgo.Span{uint64(pos), uint64(pos + size)},
		string(r), "invalid syntax or character: %q", r)
}
