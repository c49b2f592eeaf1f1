package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/xiam/sexpr"
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

var errEmptySource = errors.New("empty source")

type options struct {
	expression bool
	trace      bool
	printAST   bool
	maxDepth   int
}

func (o *options) interpreter(stderr io.Writer) *sexpr.Interpreter {
	opts := []sexpr.Option{sexpr.WithMaxDepth(o.maxDepth)}
	if o.trace {
		opts = append(opts, sexpr.WithLogger(log.New(stderr, "trace: ", 0)))
	}
	return sexpr.New(opts...)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sexpr [FILE...]",
		Short: "Evaluate S-expressions",
		Long: `Evaluate S-expressions read from files, from the command line or
interactively. Without arguments an interactive session is started.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := opts.interpreter(cmd.ErrOrStderr())

			if len(args) == 0 {
				if opts.expression {
					return errors.New("no expressions given")
				}
				rl, err := readline.NewEx(&readline.Config{
					Prompt:          prompt,
					InterruptPrompt: "^C",
					EOFPrompt:       "exit",
				})
				if err != nil {
					return err
				}
				defer rl.Close()

				return runREPL(rl, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.printAST)
			}

			sources, err := readSources(args, opts.expression)
			if err != nil {
				return err
			}
			return runSources(in, sources, cmd.OutOrStdout(), opts.printAST)
		},
	}

	cmd.Flags().BoolVarP(&opts.expression, "expression", "e", false,
		"Interpret arguments as expressions instead of file names")
	cmd.Flags().BoolVar(&opts.trace, "trace", false,
		"Log definitions and function calls to stderr")
	cmd.Flags().BoolVar(&opts.printAST, "ast", false,
		"Print the syntax tree of each expression before evaluating it")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", sexpr.DefaultMaxDepth,
		"Maximum evaluation depth")

	return cmd
}

type source struct {
	name string
	text []byte
}

func readSources(args []string, expression bool) ([]source, error) {
	sources := make([]source, len(args))
	for i, arg := range args {
		if expression {
			sources[i] = source{name: "expression", text: []byte(arg)}
		} else {
			b, err := os.ReadFile(arg)
			if err != nil {
				return nil, err
			}
			sources[i] = source{name: arg, text: b}
		}
		if len(strings.TrimSpace(string(sources[i].text))) == 0 {
			return nil, fmt.Errorf("%w: %s", errEmptySource, sources[i].name)
		}
	}
	return sources, nil
}

// runSources evaluates every source in order and stops at the first error.
func runSources(in *sexpr.Interpreter, sources []source, stdout io.Writer, printAST bool) error {
	for _, src := range sources {
		nodes, err := parser.Parse(src.text)
		if err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
		if err := evalNodes(in, nodes, stdout, printAST); err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
	}
	return nil
}

// evalNodes prints the value of each node on its own line.
func evalNodes(in *sexpr.Interpreter, nodes []*ast.Node, stdout io.Writer, printAST bool) error {
	for _, node := range nodes {
		if printAST {
			ast.Fprint(stdout, node)
		}
		value, err := in.Eval(node)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, value)
	}
	return nil
}
