// Package sexpr evaluates a small prefix language written as S-expressions.
//
// Source text is split into tokens by package lexer, assembled into syntax
// trees by package parser and evaluated here against a chain of lexically
// scoped environments. Values are 32-bit integers, strings, booleans, nil and
// user defined closures.
package sexpr

import (
	"log"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxDepth limits how deeply evaluation may nest before failing with
// ErrMaxDepth.
func WithMaxDepth(n int) Option {
	return func(in *Interpreter) {
		in.maxDepth = n
	}
}

// WithLogger makes the interpreter trace definitions and function calls to
// logger.
func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// WithEnvironment makes the interpreter use env as its global scope instead
// of a new empty one.
func WithEnvironment(env *Environment) Option {
	return func(in *Interpreter) {
		in.env = env
	}
}

// Interpreter evaluates source against a persistent global environment.
type Interpreter struct {
	env *Environment

	maxDepth int
	logger   *log.Logger
}

// New creates an interpreter.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		maxDepth: DefaultMaxDepth,
		logger:   discardLogger,
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.env == nil {
		in.env = NewEnvironment(nil).Name("root")
	}
	return in
}

// Env returns the global environment.
func (in *Interpreter) Env() *Environment {
	return in.env
}

// Eval evaluates a single tree in the global environment.
func (in *Interpreter) Eval(node *ast.Node) (*Value, error) {
	return newEvaluator(in.maxDepth, in.logger).eval(node, in.env)
}

// EvalString parses src and evaluates each of its top-level expressions in
// order. Evaluation stops at the first error; the values of the expressions
// evaluated before it are returned along with the error. A syntax error
// anywhere in src prevents any evaluation.
func (in *Interpreter) EvalString(src string) ([]*Value, error) {
	nodes, err := parser.Parse([]byte(src))
	if err != nil {
		return nil, err
	}

	values := make([]*Value, 0, len(nodes))
	for _, node := range nodes {
		value, err := in.Eval(node)
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}

	return values, nil
}
