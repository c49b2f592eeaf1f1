package main

import (
	"fmt"
	"log"

	"github.com/xiam/sexpr/lexer"
)

func main() {
	input := `
		(define (area w h)
			(* w h))
		(area 6 -7)
		(if (> 3 2) "Hello world!")
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
