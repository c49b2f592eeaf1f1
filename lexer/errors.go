package lexer

import (
	"errors"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrMalformedNumber     = errors.New("malformed number")
)
