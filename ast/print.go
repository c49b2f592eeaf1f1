package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Fprintf(w, "(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeAtom:
		fmt.Fprintf(w, "%q (%v)\n", n.Text(), n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms nodes into their text representation, separated by a
// single space.
func Encode(nodes ...*Node) []byte {
	chunks := make([]string, 0, len(nodes))
	for i := range nodes {
		chunks = append(chunks, encodeNode(nodes[i]))
	}
	return []byte(strings.Join(chunks, " "))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ":nil"
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := make([]string, 0, len(n.List()))
		for i := range n.List() {
			nodes = append(nodes, encodeNode(n.List()[i]))
		}
		return fmt.Sprintf("(%s)", strings.Join(nodes, " "))

	case NodeTypeAtom:
		return n.Text()

	default:
		panic("unknown node type")
	}
}
