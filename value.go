package sexpr

import (
	"fmt"
	"math"
	"strings"

	"github.com/xiam/sexpr/ast"
)

type ValueType uint8

const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeString
	ValueTypeBool
	ValueTypeClosure
	ValueTypeOperator
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:      "nil",
	ValueTypeInt:      "int",
	ValueTypeString:   "string",
	ValueTypeBool:     "bool",
	ValueTypeClosure:  "closure",
	ValueTypeOperator: "operator",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression
type Value struct {
	v interface{}

	Type ValueType
}

var (
	Nil   = &Value{Type: ValueTypeNil}
	True  = &Value{Type: ValueTypeBool, v: true}
	False = &Value{Type: ValueTypeBool, v: false}
)

// Closure is a user defined function along with the environment it was
// defined in.
type Closure struct {
	Name   string
	Params []string
	Body   *ast.Node
	Env    *Environment
}

func (c *Closure) String() string {
	return fmt.Sprintf("<function %s (%s)>", c.Name, strings.Join(c.Params, " "))
}

func NewIntValue(v int32) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

func NewStringValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeString}
}

func NewBoolValue(v bool) *Value {
	if v {
		return True
	}
	return False
}

func NewClosureValue(v *Closure) *Value {
	return &Value{v: v, Type: ValueTypeClosure}
}

func newOperatorValue(name string) *Value {
	return &Value{v: name, Type: ValueTypeOperator}
}

// NewValue wraps a Go value. Integers must fit in 32 bits.
func NewValue(value interface{}) (*Value, error) {
	switch v := value.(type) {
	case nil:
		return Nil, nil
	case *Value:
		return v, nil
	case int32:
		return NewIntValue(v), nil
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("integer %d out of range", v)
		}
		return NewIntValue(int32(v)), nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("integer %d out of range", v)
		}
		return NewIntValue(int32(v)), nil
	case string:
		return NewStringValue(v), nil
	case bool:
		return NewBoolValue(v), nil
	case *Closure:
		return NewClosureValue(v), nil
	}
	return nil, fmt.Errorf("invalid value %v (%T)", value, value)
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return "nil"
	case ValueTypeInt:
		return fmt.Sprintf("%d", v.v.(int32))
	case ValueTypeBool:
		if v.v.(bool) {
			return "true"
		}
		return "false"
	case ValueTypeClosure:
		return v.v.(*Closure).String()
	}
	if s, ok := v.v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v.v)
}

// IsTruthy reports whether the value counts as true in a conditional:
// integers are true when nonzero, booleans are used as they are, nil is false
// and everything else is true.
func (v Value) IsTruthy() bool {
	switch v.Type {
	case ValueTypeNil:
		return false
	case ValueTypeInt:
		return v.v.(int32) != 0
	case ValueTypeBool:
		return v.v.(bool)
	}
	return true
}

func (v Value) Int() int32 {
	return v.v.(int32)
}

// Text returns the payload of strings and operators.
func (v Value) Text() string {
	return v.v.(string)
}

func (v Value) Bool() bool {
	return v.v.(bool)
}

func (v Value) Closure() *Closure {
	return v.v.(*Closure)
}
