package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/xiam/sexpr"
	"github.com/xiam/sexpr/parser"
)

const (
	prompt     = "> "
	contPrompt = ". "
)

// lineReader is the part of *readline.Instance used by the REPL.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

// runREPL reads expressions line by line until EOF or "exit". Input that
// ends inside an expression is kept and completed by the following lines.
func runREPL(rl lineReader, in *sexpr.Interpreter, stdout, stderr io.Writer, printAST bool) error {
	var pending []string

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			pending = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if len(pending) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.EqualFold(trimmed, "exit") {
				break
			}
		}

		pending = append(pending, line)
		nodes, err := parser.Parse([]byte(strings.Join(pending, "\n")))
		if parser.IsIncomplete(err) {
			rl.SetPrompt(contPrompt)
			continue
		}
		pending = nil
		rl.SetPrompt(prompt)

		if err == nil {
			err = evalNodes(in, nodes, stdout, printAST)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}

	fmt.Fprintln(stdout, "Goodbye.")
	return nil
}
