package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenNumber                    // Integer or decimal number, optionally signed: "-12", "3.5"
	TokenString                    // Double quoted text: "abc"
	TokenSymbol                    // Names and punctuation words: "define", "x", "<"
	TokenPlus                      // Plus sign: "+"
	TokenMinus                     // Minus sign: "-"
	TokenStar                      // Star: "*"
	TokenSlash                     // Slash: "/"
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
	TokenPlus:            []rune{'+'},
	TokenMinus:           []rune{'-'},
	TokenStar:            []rune{'*'},
	TokenSlash:           []rune{'/'},
	TokenString:          []rune{'"'},
	TokenNumber:          []rune("0123456789"),
}

var (
	whitespace  = []rune(" \t\r\n")
	symbolStart = []rune("+-*/=!<>?.")
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenNumber:          "number",
	TokenString:          "string",
	TokenSymbol:          "symbol",
	TokenPlus:            "plus",
	TokenMinus:           "minus",
	TokenStar:            "star",
	TokenSlash:           "slash",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsOperator returns true for the four arithmetic operator types.
func (tt TokenType) IsOperator() bool {
	switch tt {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash:
		return true
	}
	return false
}

func isTokenType(tt TokenType) func(r rune) bool {
	return isOneOf(tokenValues[tt])
}

func isOneOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)

	isPlus  = isTokenType(TokenPlus)
	isMinus = isTokenType(TokenMinus)
	isStar  = isTokenType(TokenStar)
	isSlash = isTokenType(TokenSlash)

	isQuote = isTokenType(TokenString)
	isDigit = isTokenType(TokenNumber)

	isWhitespace = isOneOf(whitespace)
)

func isDot(r rune) bool {
	return r == '.'
}

func isSymbolStart(r rune) bool {
	return unicode.IsLetter(r) || isOneOf(symbolStart)(r)
}

// isWordBreak reports whether r ends a symbol.
func isWordBreak(r rune) bool {
	return r < 0 || isWhitespace(r) || isOpenExpression(r) || isCloseExpression(r) || isQuote(r)
}
