package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `1 3 3.4 5.6789`,
			Out: `1 3 3.4 5.6789`,
		},
		{
			In:  `(1 2 3)`,
			Out: `(1 2 3)`,
		},
		{
			In:  "(1\n\t 2\n\n3\n)",
			Out: "(1 2 3)",
		},
		{
			In:  `(1 ( 1 2 3 ) 3) 4 (5 6) 7 8`,
			Out: `(1 (1 2 3) 3) 4 (5 6) 7 8`,
		},
		{
			In:  `() (1) ()`,
			Out: `() (1) ()`,
		},
		{
			In:  `(1 2 () (3(4(5))) 6 (7))`,
			Out: `(1 2 () (3 (4 (5))) 6 (7))`,
		},
		{
			In: "(a		b c def GHIJ 1 1.23)",
			Out: "(a b c def GHIJ 1 1.23)",
		},
		{
			In:  `(define (add a b) (+ a b)) (add 3 4)`,
			Out: `(define (add a b) (+ a b)) (add 3 4)`,
		},
		{
			In:  `(print "hello world" "beautiful world!")`,
			Out: `(print hello world beautiful world!)`,
		},
		{
			In:  `(+ 1 2 3 4)`,
			Out: `(+ 1 2 3 4)`,
		},
		{
			In:  `(- -1 55 - 2 -3.23 4.01)`,
			Out: `(- -1 55 - 2 -3.23 4.01)`,
		},
		{
			In:  `(* (/ 10 2) (> x 1) (< x 2))`,
			Out: `(* (/ 10 2) (> x 1) (< x 2))`,
		},
	}

	for i := range testCases {
		nodes, err := Parse([]byte(testCases[i].In))
		assert.NoError(t, err)
		assert.NotNil(t, nodes)

		s := ast.Encode(nodes...)
		assert.Equal(t, testCases[i].Out, string(s))
	}
}

func TestParserNodeShapes(t *testing.T) {
	nodes, err := Parse([]byte(`(if (> x 1) "a b" -2)`))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	expected := ast.NewList(nil,
		ast.NewAtom(nil, "if"),
		ast.NewList(nil, ast.NewAtom(nil, ">"), ast.NewAtom(nil, "x"), ast.NewAtom(nil, "1")),
		ast.NewAtom(nil, "a b"),
		ast.NewAtom(nil, "-2"),
	)
	assert.True(t, expected.Equal(nodes[0]))

	str := nodes[0].List()[2]
	assert.True(t, str.Token().Is(lexer.TokenString))

	line, col := nodes[0].List()[1].Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 5, col)
}

func TestParseOne(t *testing.T) {
	tokens, err := lexer.Tokenize([]byte(`(a b) c`))
	require.NoError(t, err)

	p := New(tokens)

	first, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, "(a b)", first.String())

	second, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, "c", second.String())

	_, err = p.Parse()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestParseWithoutTokens(t *testing.T) {
	nodes, err := New(nil).ParseAll()
	assert.NoError(t, err)
	assert.Empty(t, nodes)

	_, err = New(nil).Parse()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestRoundTrip(t *testing.T) {
	testCases := []string{
		`(define (fact n) (if (< n 2) 1 (* n (fact (- n 1)))))`,
		`(fact 5) (define x -5) ((f) (g (h)))`,
		`(() (()) ((())))`,
		`(a/b ?c !d =e .f)`,
	}

	for _, in := range testCases {
		nodes, err := Parse([]byte(in))
		require.NoError(t, err)

		again, err := Parse(ast.Encode(nodes...))
		require.NoError(t, err)
		require.Equal(t, len(nodes), len(again))

		for i := range nodes {
			assert.True(t, nodes[i].Equal(again[i]), "input: %q", in)
		}
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`(`, ErrMissingCloseParen},
		{`(1`, ErrMissingCloseParen},
		{`(((1 1 1`, ErrMissingCloseParen},
		{`(1 2 3 4
			(5 6 7 8
			(4 6)
			)`, ErrMissingCloseParen},
		{`)`, ErrUnexpectedToken},
		{`1 )`, ErrUnexpectedToken},
		{`(1 2)) 3`, ErrUnexpectedToken},
		{`(print "abc`, lexer.ErrUnterminatedString},
		{`(a & b)`, lexer.ErrUnexpectedCharacter},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))
		assert.Nil(t, root)
		assert.ErrorIs(t, err, testCases[i].Err, "input: %q", testCases[i].In)
		t.Log(err)
	}
}

func TestParserErrorMessages(t *testing.T) {
	_, err := Parse([]byte("(a\n  (b c)"))
	require.Error(t, err)
	assert.Equal(t, `missing closing paren for "(" opened at 1:1`, err.Error())

	_, err = Parse([]byte("(a))"))
	require.Error(t, err)
	assert.Equal(t, `unexpected token ")" at 1:4`, err.Error())
}

func TestIsIncomplete(t *testing.T) {
	testCases := []struct {
		In         string
		Incomplete bool
	}{
		{`(define x`, true},
		{`(if (> 1 2)`, true},
		{`(print "abc`, true},
		{`(a b))`, false},
		{`(a # b)`, false},
	}

	for _, tc := range testCases {
		_, err := Parse([]byte(tc.In))
		require.Error(t, err)
		assert.Equal(t, tc.Incomplete, IsIncomplete(err), "input: %q", tc.In)
	}

	assert.False(t, IsIncomplete(nil))
}
