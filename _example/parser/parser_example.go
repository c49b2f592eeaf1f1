package main

import (
	"log"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

func main() {
	input := `(define (area w h) (* w h)) (area 6 (- 10 3)) "Hello world!"`

	nodes, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, node := range nodes {
		ast.Print(node)
	}
}
