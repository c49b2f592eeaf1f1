package parser

import (
	"fmt"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
)

// TokenEOF is returned by the parser when reading past the end of the token
// stream.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", nil, 0, 0)

// Parser builds syntax trees out of a sequence of tokens
type Parser struct {
	tokens []lexer.Token
	offset int
}

// New creates a parser that reads the given tokens, usually the output of
// lexer.Tokenize.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) curr() *lexer.Token {
	if p.offset >= len(p.tokens) {
		return TokenEOF
	}
	return &p.tokens[p.offset]
}

func (p *Parser) next() *lexer.Token {
	tok := p.curr()
	if p.offset < len(p.tokens) {
		p.offset++
	}
	return tok
}

func (p *Parser) expect(tt lexer.TokenType) (*lexer.Token, error) {
	tok := p.curr()
	if tok.Type() != tt {
		return nil, parserError(ErrUnexpectedToken, tok)
	}
	return p.next(), nil
}

// ParseAll reads expressions until the EOF token and returns all of them.
// It stops at the first malformed expression.
func (p *Parser) ParseAll() ([]*ast.Node, error) {
	nodes := []*ast.Node{}
	for !p.curr().Is(lexer.TokenEOF) {
		node, err := p.Parse()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Parse reads exactly one expression starting at the current token.
func (p *Parser) Parse() (*ast.Node, error) {
	tok := p.curr()

	switch tok.Type() {
	case lexer.TokenOpenExpression:
		return p.parseList()

	case lexer.TokenNumber, lexer.TokenString, lexer.TokenSymbol,
		lexer.TokenPlus, lexer.TokenMinus, lexer.TokenStar, lexer.TokenSlash:
		p.next()
		return ast.NewAtom(tok, tok.Text()), nil

	case lexer.TokenEOF:
		return nil, parserError(ErrUnexpectedEOF, tok)

	default:
		return nil, parserError(ErrUnexpectedToken, tok)
	}
}

func (p *Parser) parseList() (*ast.Node, error) {
	open, err := p.expect(lexer.TokenOpenExpression)
	if err != nil {
		return nil, err
	}

	list := ast.NewList(open)
	for {
		tok := p.curr()
		if tok.Is(lexer.TokenCloseExpression) {
			break
		}
		if tok.Is(lexer.TokenEOF) {
			return nil, parserError(ErrMissingCloseParen, open)
		}

		node, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if err := list.Push(node); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.TokenCloseExpression); err != nil {
		return nil, err
	}

	return list, nil
}

// Parse tokenizes and parses the given source, returning all of its
// top-level expressions.
func Parse(in []byte) ([]*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseAll()
}

func parserError(err error, tok *lexer.Token) error {
	line, col := tok.Pos()
	if line == 0 {
		return err
	}
	switch tok.Type() {
	case lexer.TokenEOF:
		return fmt.Errorf("%w at %d:%d", err, line, col)
	case lexer.TokenOpenExpression:
		return fmt.Errorf("%w for %q opened at %d:%d", err, tok.Text(), line, col)
	}
	return fmt.Errorf("%w %q at %d:%d", err, tok.Text(), line, col)
}
