package lexer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/scanner"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	// invalid UTF-8 surfaces as utf8.RuneError and is rejected by the lexer
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:    s,
		state: lexDefaultState,
		buf:   []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	state  lexState
	tokens []Token
	tok    Token

	lastErr error

	buf []rune

	// position of the next rune, zero based
	line int
	col  int

	// position of the first rune of the current token
	startLine int
	startCol  int
}

// Next advances the lexer to the next token, which will then be available
// through Token. It returns false when there are no more tokens, either
// because the EOF token was already returned or because of an error.
func (lx *Lexer) Next() bool {
	for len(lx.tokens) == 0 {
		if lx.state == nil {
			return false
		}
		lx.state = lx.state(lx)
	}
	lx.tok, lx.tokens = lx.tokens[0], lx.tokens[1:]
	return true
}

// Token returns the most recent token produced by Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// Err returns the error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType, literal interface{}) {
	lx.tokens = append(lx.tokens, Token{
		tt:      tt,
		lexeme:  string(lx.buf),
		literal: literal,

		line: lx.startLine + 1,
		col:  lx.startCol + 1,
	})
	lx.buf = lx.buf[0:0]
}

// mark sets the start of the next token at the current position.
func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
}

// ignore drops the runes collected so far.
func (lx *Lexer) ignore() {
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	if r == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func (lx *Lexer) errorf(err error, format string, args ...interface{}) lexState {
	if format == "" {
		return lexStateError(fmt.Errorf("%w at %d:%d", err, lx.startLine+1, lx.startCol+1))
	}
	msg := fmt.Sprintf(format, args...)
	return lexStateError(fmt.Errorf("%w %s at %d:%d", err, msg, lx.startLine+1, lx.startCol+1))
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	r, err := lx.next()
	if err != nil {
		return lexStateEOF
	}

	switch {

	case isWhitespace(r):
		lx.ignore()
		return lexDefaultState

	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)

	case isPlus(r):
		return lexEmit(TokenPlus)
	case isMinus(r):
		if isDigit(lx.peek()) {
			return lexNumber
		}
		return lexEmit(TokenMinus)
	case isStar(r):
		return lexEmit(TokenStar)
	case isSlash(r):
		return lexEmit(TokenSlash)

	case isQuote(r):
		return lexString
	case isDigit(r):
		return lexNumber
	case isSymbolStart(r):
		return lexSymbol

	default:
		return lx.errorf(ErrUnexpectedCharacter, "%q", r)

	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt, nil)
		return lexDefaultState
	}
}

func lexNumber(lx *Lexer) lexState {
	for p := lx.peek(); isDigit(p) || isDot(p); p = lx.peek() {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	f64, err := strconv.ParseFloat(string(lx.buf), 64)
	if err != nil {
		return lx.errorf(ErrMalformedNumber, "%q", string(lx.buf))
	}

	lx.emit(TokenNumber, f64)
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	// opening quote
	lx.ignore()

	for !isQuote(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lx.errorf(ErrUnterminatedString, "")
		}
	}

	text := string(lx.buf)
	lx.emit(TokenString, text)

	// closing quote
	if _, err := lx.next(); err != nil {
		return lexStateError(err)
	}
	lx.ignore()

	return lexDefaultState
}

func lexSymbol(lx *Lexer) lexState {
	for !isWordBreak(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(TokenSymbol, nil)
	return lexDefaultState
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return lexStateEOF
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.mark()
	lx.ignore()
	lx.emit(TokenEOF, nil)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}

	if err := lx.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}
