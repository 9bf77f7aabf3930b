// Package eval holds the runtime substrate the transformation stage
// allocates into: environments, closures and update-once thunks. The
// machinery that forces thunks lives with the evaluator, not here.
package eval

import "github.com/nacre-lang/nacre/internal/term"

// IdentKind records how a binding entered its environment. The
// evaluator uses it to distinguish record fields from let and lambda
// bindings when reporting missing-field errors.
type IdentKind int

const (
	IdentRecord IdentKind = iota
	IdentLet
	IdentLam
)

// Closure is a body term paired with the environment that was active
// when the closure was formed.
type Closure struct {
	Body term.RichTerm
	Env  *Environment
}

// Binding is one environment slot: a shared thunk plus the kind tag of
// the identifier it is bound to.
type Binding struct {
	Thunk *Thunk
	Kind  IdentKind
}

// Environment maps identifiers to bindings, with lexical nesting via
// an outer pointer. The transformation stage only ever inserts.
type Environment struct {
	store map[term.Ident]*Binding
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[term.Ident]*Binding)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in this environment, then in the enclosing ones.
func (e *Environment) Get(name term.Ident) (*Binding, bool) {
	b, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return b, ok
}

// Insert binds name to th in this environment, shadowing any outer
// binding of the same name.
func (e *Environment) Insert(name term.Ident, th *Thunk, kind IdentKind) {
	e.store[name] = &Binding{Thunk: th, Kind: kind}
}

// Len returns the number of bindings local to this environment, not
// counting enclosing ones.
func (e *Environment) Len() int {
	return len(e.store)
}
