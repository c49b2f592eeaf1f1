package sexpr

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var envID = uint64(0)

// Environment is a lexical scope: a table of local bindings plus an optional
// parent scope that is searched when a name is not bound locally.
type Environment struct {
	id   uint64
	name string

	parent *Environment

	mu sync.RWMutex
	st *symbolTable
}

// NewEnvironment creates a scope nested in parent. A nil parent creates a
// root scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		id:     atomic.AddUint64(&envID, 1),
		parent: parent,
		st:     newSymbolTable(),
	}
}

// Name sets a descriptive name, used in traces.
func (env *Environment) Name(name string) *Environment {
	env.name = name
	return env
}

// Parent returns the enclosing scope, or nil for a root scope.
func (env *Environment) Parent() *Environment {
	return env.parent
}

// Define binds name to value in this scope. Bindings in parent scopes are
// never modified.
func (env *Environment) Define(name string, value *Value) {
	env.mu.Lock()
	defer env.mu.Unlock()
	env.st.Set(name, value)
}

// Lookup searches name in this scope and then in its ancestors.
func (env *Environment) Lookup(name string) (*Value, bool) {
	for e := env; e != nil; e = e.parent {
		e.mu.RLock()
		value, ok := e.st.Get(name)
		e.mu.RUnlock()
		if ok {
			return value, true
		}
	}
	return nil, false
}

// Get is like Lookup but returns an error for unbound names.
func (env *Environment) Get(name string) (*Value, error) {
	value, ok := env.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUndefinedValue, name)
	}
	return value, nil
}

// Len returns the number of local bindings.
func (env *Environment) Len() int {
	env.mu.RLock()
	defer env.mu.RUnlock()
	return env.st.Len()
}

func (env *Environment) String() string {
	return fmt.Sprintf("[%v]: %q", env.id, env.name)
}
