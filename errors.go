package pcalc

import (
	"errors"
	"fmt"
	"strconv"

	gorgo "github.com/npillmayer/gorgo/lr"
)

// ErrorKind names the pipeline stage an input error was detected in.
type ErrorKind int

// Kinds of input errors.
const (
	Lexical    ErrorKind = iota + 1 // invalid character, unterminated matrix literal
	Structural                      // operator placement, parentheses, literal shape
	Semantic                        // unknown names, assignments, undefined arithmetic
)

func (k ErrorKind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Structural:
		return "structural"
	case Semantic:
		return "semantic"
	}
	return "unknown"
}

// Error is an error resulting from invalid input. It implements InputError.
//
// Span holds byte positions into the input line; Text is the offending
// substring, if there is one.
type Error struct {
	Kind ErrorKind
	Msg  string
	Span gorgo.Span
	Text string
}

// Error names the stage, the column and, if known, the offending text:
//
//	semantic error at 2: division by zero ("/")
func (err *Error) Error() string {
	msg := err.Kind.String() + " error at " + strconv.Itoa(err.Pos()) + ": " + err.Msg
	if err.Text != "" {
		msg += " (" + strconv.Quote(err.Text) + ")"
	}
	return msg
}

// Pos returns the column of the error, counting from 1.
func (err *Error) Pos() int {
	return int(err.Span.From()) + 1
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	Pos() int
}

var _ InputError = (*Error)(nil)

// Errorf creates an input error of kind k. text is the offending substring
// and may be empty.
func Errorf(k ErrorKind, span gorgo.Span, text string, format string, args ...interface{}) *Error {
	return &Error{
		Kind: k,
		Msg:  fmt.Sprintf(format, args...),
		Span: span,
		Text: text,
	}
}

// KindOf returns the error kind of err, if err is (or wraps) an input error.
// Otherwise it returns 0.
func KindOf(err error) ErrorKind {
	var ierr *Error
	if errors.As(err, &ierr) {
		return ierr.Kind
	}
	return 0
}
