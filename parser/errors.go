package parser

import (
	"errors"

	"github.com/xiam/sexpr/lexer"
)

var (
	ErrUnexpectedEOF     = errors.New("unexpected EOF")
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrMissingCloseParen = errors.New("missing closing paren")
)

// IsIncomplete reports whether err was caused by input that ended too early,
// meaning that appending more source could make it valid.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnexpectedEOF) ||
		errors.Is(err, ErrMissingCloseParen) ||
		errors.Is(err, lexer.ErrUnterminatedString)
}
