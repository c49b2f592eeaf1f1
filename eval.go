package sexpr

import (
	"io"
	"log"
	"strconv"

	"github.com/xiam/sexpr/ast"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 10000

const (
	opDefine = "define"
	opIf     = "if"
	opAdd    = "+"
	opSub    = "-"
	opMul    = "*"
	opDiv    = "/"
	opGt     = ">"
	opLt     = "<"
)

var operatorNames = map[string]bool{
	opDefine: true,
	opIf:     true,
	opAdd:    true,
	opSub:    true,
	opMul:    true,
	opDiv:    true,
	opGt:     true,
	opLt:     true,
}

var discardLogger = log.New(io.Discard, "", 0)

type evaluator struct {
	depth    int
	maxDepth int

	log *log.Logger
}

func newEvaluator(maxDepth int, logger *log.Logger) *evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if logger == nil {
		logger = discardLogger
	}
	return &evaluator{maxDepth: maxDepth, log: logger}
}

// Eval evaluates node in env using the default recursion limit.
func Eval(node *ast.Node, env *Environment) (*Value, error) {
	return newEvaluator(DefaultMaxDepth, nil).eval(node, env)
}

func (ev *evaluator) eval(node *ast.Node, env *Environment) (*Value, error) {
	ev.depth++
	defer func() {
		ev.depth--
	}()
	if ev.depth > ev.maxDepth {
		return nil, evalErrorf(node, ErrMaxDepth, "limit is %d", ev.maxDepth)
	}

	switch node.Type() {
	case ast.NodeTypeAtom:
		return ev.evalAtom(node, env), nil
	case ast.NodeTypeList:
		return ev.evalList(node, env)
	}

	panic("unreachable")
}

func (ev *evaluator) evalAtom(node *ast.Node, env *Environment) *Value {
	text := node.Text()

	if value, ok := env.Lookup(text); ok {
		return value
	}

	if i64, err := strconv.ParseInt(text, 10, 32); err == nil {
		return NewIntValue(int32(i64))
	}

	if operatorNames[text] {
		return newOperatorValue(text)
	}

	// unbound names evaluate to their own text
	return NewStringValue(text)
}

func (ev *evaluator) evalList(node *ast.Node, env *Environment) (*Value, error) {
	items := node.List()
	if len(items) == 0 {
		return nil, evalErrorf(node, ErrEmptyList, "")
	}

	op, err := ev.eval(items[0], env)
	if err != nil {
		return nil, err
	}
	args := items[1:]

	switch op.Type {
	case ValueTypeOperator:
		name := op.Text()
		switch name {
		case opDefine:
			return ev.evalDefine(node, args, env)
		case opIf:
			return ev.evalIf(node, args, env)
		case opAdd, opSub, opMul, opDiv:
			return ev.evalArithmetic(node, name, args, env)
		case opGt, opLt:
			return ev.evalComparison(node, name, args, env)
		}
		return nil, evalErrorf(node, ErrUnknownOperator, "%q", name)
	case ValueTypeClosure:
		return ev.apply(node, op.Closure(), args, env)
	case ValueTypeString:
		return nil, evalErrorf(node, ErrUnknownOperator, "%q", op.Text())
	}

	return nil, evalErrorf(node, ErrNotCallable, "%s %v", op.Type, op)
}

func (ev *evaluator) evalDefine(node *ast.Node, args []*ast.Node, env *Environment) (*Value, error) {
	if len(args) != 2 {
		return nil, evalErrorf(node, ErrInvalidDefine, "expected 2 arguments, got %d", len(args))
	}

	head, body := args[0], args[1]
	if head.IsAtom() {
		value, err := ev.eval(body, env)
		if err != nil {
			return nil, err
		}
		ev.log.Printf("env: %v -- %v -> %v", env, head.Text(), value)
		env.Define(head.Text(), value)
		return value, nil
	}

	signature := head.List()
	if len(signature) == 0 {
		return nil, evalErrorf(head, ErrInvalidDefine, "empty function signature")
	}

	params := make([]string, 0, len(signature)-1)
	for i, item := range signature {
		if !item.IsAtom() {
			return nil, evalErrorf(item, ErrInvalidDefine, "function name and parameters must be atoms")
		}
		if i > 0 {
			params = append(params, item.Text())
		}
	}

	fn := &Closure{
		Name:   signature[0].Text(),
		Params: params,
		Body:   body,
		Env:    env,
	}
	value := NewClosureValue(fn)

	ev.log.Printf("env: %v -- %v -> %v", env, fn.Name, value)
	env.Define(fn.Name, value)
	return value, nil
}

func (ev *evaluator) evalIf(node *ast.Node, args []*ast.Node, env *Environment) (*Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, evalErrorf(node, ErrInvalidIf, "expected 2 or 3 arguments, got %d", len(args))
	}

	cond, err := ev.eval(args[0], env)
	if err != nil {
		return nil, err
	}

	if cond.IsTruthy() {
		return ev.eval(args[1], env)
	}
	if len(args) == 3 {
		return ev.eval(args[2], env)
	}
	return Nil, nil
}

func (ev *evaluator) evalInt(node *ast.Node, env *Environment) (int32, error) {
	value, err := ev.eval(node, env)
	if err != nil {
		return 0, err
	}
	if value.Type != ValueTypeInt {
		return 0, evalErrorf(node, ErrExpectedInteger, "got %s %q", value.Type, value.String())
	}
	return value.Int(), nil
}

func (ev *evaluator) evalArithmetic(node *ast.Node, name string, args []*ast.Node, env *Environment) (*Value, error) {
	if len(args) < 1 {
		return nil, evalErrorf(node, ErrOperandCount, "%q expects at least 1 operand", name)
	}

	acc, err := ev.evalInt(args[0], env)
	if err != nil {
		return nil, err
	}

	for _, arg := range args[1:] {
		n, err := ev.evalInt(arg, env)
		if err != nil {
			return nil, err
		}
		switch name {
		case opAdd:
			acc += n
		case opSub:
			acc -= n
		case opMul:
			acc *= n
		case opDiv:
			if n == 0 {
				return nil, evalErrorf(arg, ErrDivisionByZero, "")
			}
			acc /= n
		}
	}

	return NewIntValue(acc), nil
}

func (ev *evaluator) evalComparison(node *ast.Node, name string, args []*ast.Node, env *Environment) (*Value, error) {
	if len(args) != 2 {
		return nil, evalErrorf(node, ErrOperandCount, "%q expects 2 operands, got %d", name, len(args))
	}

	left, err := ev.evalInt(args[0], env)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalInt(args[1], env)
	if err != nil {
		return nil, err
	}

	if name == opGt {
		return NewBoolValue(left > right), nil
	}
	return NewBoolValue(left < right), nil
}

// apply evaluates the arguments in the caller's environment and the body in
// a new scope nested in the closure's environment.
func (ev *evaluator) apply(node *ast.Node, fn *Closure, args []*ast.Node, env *Environment) (*Value, error) {
	if len(args) != len(fn.Params) {
		return nil, evalErrorf(node, ErrArityMismatch, "%s expects %d arguments, got %d", fn.Name, len(fn.Params), len(args))
	}

	values := make([]*Value, 0, len(args))
	for _, arg := range args {
		value, err := ev.eval(arg, env)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	local := NewEnvironment(fn.Env).Name(fn.Name)
	for i := range fn.Params {
		local.Define(fn.Params[i], values[i])
	}

	ev.log.Printf("apply: %v %v", fn, values)
	return ev.eval(fn.Body, local)
}
