package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt      TokenType
	lexeme  string
	literal interface{}

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, literal interface{}, line int, col int) *Token {
	return &Token{
		tt:      tt,
		lexeme:  lexeme,
		literal: literal,
		line:    line,
		col:     col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Literal returns the parsed value of the lexical unit: a float64 for
// numbers, a string for strings and nil for everything else.
func (t Token) Literal() interface{} {
	return t.literal
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	if t.literal != nil {
		return fmt.Sprintf("(:%v %q = %v [%d %d])", t.tt, t.lexeme, t.literal, t.line, t.col)
	}
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
