package sexpr

import (
	"errors"
	"fmt"

	"github.com/xiam/sexpr/ast"
)

var (
	ErrEmptyList       = errors.New("cannot evaluate empty list")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrNotCallable     = errors.New("cannot apply operator of this type")
	ErrExpectedInteger = errors.New("expected integer operand")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrArityMismatch   = errors.New("arity mismatch")
	ErrOperandCount    = errors.New("wrong number of operands")
	ErrInvalidDefine   = errors.New("invalid define")
	ErrInvalidIf       = errors.New("invalid if")
	ErrMaxDepth        = errors.New("maximum recursion depth exceeded")
)

var (
	ErrUndefinedValue = errors.New("undefined value")
)

// evalErrorf wraps err with a detail message and the position of node.
func evalErrorf(node *ast.Node, err error, format string, args ...interface{}) error {
	var detail string
	if format != "" {
		detail = ": " + fmt.Sprintf(format, args...)
	}
	if line, col := node.Pos(); line > 0 {
		return fmt.Errorf("%w%s at %d:%d", err, detail, line, col)
	}
	return fmt.Errorf("%w%s", err, detail)
}
