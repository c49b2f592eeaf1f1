package ast

import (
	"errors"

	"github.com/xiam/sexpr/lexer"
)

var errNotAList = errors.New("nodes of type atom can't accept children")

// Node represents a leaf (atom) or a branch (list) of the syntax tree
type Node struct {
	p *Node

	nt   NodeType
	tok  *lexer.Token
	text string

	children []*Node
}

// NewAtom creates an atom holding the given raw text. tok is the token the
// atom was read from and may be nil.
func NewAtom(tok *lexer.Token, text string) *Node {
	return &Node{
		nt:   NodeTypeAtom,
		tok:  tok,
		text: text,
	}
}

// NewList creates a list node with the given children. tok is the opening
// parenthesis and may be nil.
func NewList(tok *lexer.Token, children ...*Node) *Node {
	n := &Node{
		nt:       NodeTypeList,
		tok:      tok,
		children: make([]*Node, 0, len(children)),
	}
	for i := range children {
		children[i].p = n
		n.children = append(n.children, children[i])
	}
	return n
}

// PushAtom appends a new atom to the node
func (n *Node) PushAtom(tok *lexer.Token) (*Node, error) {
	node := NewAtom(tok, tok.Text())
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new empty list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Push appends a child node to a parent node of type list.
func (n *Node) Push(node *Node) error {
	if n.IsList() {
		n.children = append(n.children, node)
		node.p = n
		return nil
	}
	return errNotAList
}

// Token returns the token associated to the node
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Pos returns the source position of the node, or zeros for nodes that were
// not read from source.
func (n *Node) Pos() (int, int) {
	if n.tok == nil {
		return 0, 0
	}
	return n.tok.Pos()
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Text returns the raw text of an atom. Lists have no text.
func (n *Node) Text() string {
	return n.text
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// IsAtom returns true if the node is an atom
func (n *Node) IsAtom() bool {
	return n.nt&nodeTypeValue > 0
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

// Parent returns the list that contains this node, if any.
func (n *Node) Parent() *Node {
	return n.p
}

// Equal compares two trees structurally. Source positions are ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.nt != other.nt {
		return false
	}
	if n.IsAtom() {
		return n.text == other.text
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	return string(Encode(n))
}
