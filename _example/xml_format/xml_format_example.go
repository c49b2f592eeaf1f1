package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/sexpr"
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsList() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), node.Text(), node.Type())
}

func main() {
	input := `(define (fib n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))) (fib 20)`

	nodes, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	in := sexpr.New()
	for _, node := range nodes {
		printTree(node)

		value, err := in.Eval(node)
		if err != nil {
			log.Fatal("Eval:", err)
		}
		fmt.Printf("<!-- %v -->\n", value)
	}
}
