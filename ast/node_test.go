package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/sexpr/lexer"
)

func TestNode(t *testing.T) {
	token := lexer.NewToken(lexer.TokenSymbol, "AAAA", nil, 1, 1)

	node := NewAtom(token, token.Text())
	assert.True(t, node.IsAtom())
	assert.False(t, node.IsList())
	assert.Equal(t, "AAAA", node.Text())

	_, err := node.PushAtom(token)
	assert.Error(t, err)
}

func TestNodeList(t *testing.T) {
	open := lexer.NewToken(lexer.TokenOpenExpression, "(", nil, 1, 1)
	value := lexer.NewToken(lexer.TokenNumber, "12", float64(12), 1, 2)

	list := NewList(open)
	child, err := list.PushAtom(value)
	require.NoError(t, err)

	assert.Equal(t, 1, list.Len())
	assert.Same(t, list, child.Parent())

	line, col := child.Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, col)

	inner, err := list.PushList(open)
	require.NoError(t, err)
	assert.True(t, inner.IsList())
	assert.Equal(t, "(12 ())", list.String())
}

func TestNodeEqual(t *testing.T) {
	a := NewList(nil, NewAtom(nil, "+"), NewAtom(nil, "1"), NewList(nil, NewAtom(nil, "f")))
	b := NewList(
		lexer.NewToken(lexer.TokenOpenExpression, "(", nil, 3, 4),
		NewAtom(nil, "+"),
		NewAtom(nil, "1"),
		NewList(nil, NewAtom(nil, "f")),
	)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	testCases := []*Node{
		NewList(nil, NewAtom(nil, "+"), NewAtom(nil, "1")),
		NewList(nil, NewAtom(nil, "+"), NewAtom(nil, "1"), NewList(nil, NewAtom(nil, "g"))),
		NewList(nil, NewAtom(nil, "+"), NewAtom(nil, "1"), NewAtom(nil, "f")),
		NewAtom(nil, "+"),
		nil,
	}
	for _, other := range testCases {
		assert.False(t, a.Equal(other), "other: %v", other)
	}

	var empty *Node
	assert.True(t, empty.Equal(nil))
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  []*Node
		Out string
	}{
		{
			In:  []*Node{NewList(nil)},
			Out: `()`,
		},
		{
			In:  []*Node{NewAtom(nil, "x")},
			Out: `x`,
		},
		{
			In: []*Node{
				NewList(nil, NewAtom(nil, "define"), NewList(nil, NewAtom(nil, "add"), NewAtom(nil, "a")), NewAtom(nil, "a")),
				NewList(nil, NewAtom(nil, "add"), NewAtom(nil, "-5")),
			},
			Out: `(define (add a) a) (add -5)`,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, string(Encode(tc.In...)))
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, NewList(nil, NewAtom(nil, "a"), NewList(nil)))

	assert.Equal(t, "(list): (<nil>)\n    (atom): \"a\" (<nil>)\n    (list): (<nil>)\n", buf.String())
}
