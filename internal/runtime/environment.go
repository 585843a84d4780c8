// Package runtime holds the interpreter's runtime value model: the
// Environment frame chain, the Object/Value representation, Callables,
// and the Class/Instance pair.
package runtime

// Value is a Lox runtime value. Concrete representations: nil (Nil),
// bool, float64 (Number), string, Callable, *Class, *Instance — modeled
// as `any` rather than a hand-rolled tagged union, since Go's type
// switches already give pattern-match dispatch over it.
type Value = any

// Environment is a frame of name-to-value bindings with an optional
// parent link. Frames are shared by reference: a closure retains the
// exact frame captured at declaration time, so later `define`s in that
// frame become visible to the closure.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a root frame with no enclosing scope. Every
// environment chain in the interpreter terminates here: the globals
// frame.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a frame nested inside outer, used for
// blocks, function calls, and class method/`super`/`this` scopes.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: outer}
}

// Define writes name unconditionally into this frame, shadowing any
// binding of the same name in an enclosing frame.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name in this frame, then recursively in enclosing frames.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, errUndefinedQuoted(name)
}

// Assign overwrites an existing binding of name, searching outward. It
// never creates a new binding — that is Define's job.
func (e *Environment) Assign(name string, value Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return errUndefinedUnquoted(name)
}

// Ancestor walks n enclosing links outward. The resolver guarantees the
// distance is always in range, so callers may rely on this succeeding.
func (e *Environment) Ancestor(n int) *Environment {
	env := e
	for i := 0; i < n; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly in the n-th ancestor frame, without walking
// up the chain: the resolver's distance already tells us which frame.
func (e *Environment) GetAt(n int, name string) Value {
	v, _ := e.Ancestor(n).values[name]
	return v
}

// AssignAt writes name directly in the n-th ancestor frame.
func (e *Environment) AssignAt(n int, name string, value Value) {
	e.Ancestor(n).values[name] = value
}

// errUndefinedQuoted formats the message Environment.Get raises, used for
// both local and global lookups.
func errUndefinedQuoted(name string) error {
	return &undefinedVariableError{quoted: true, name: name}
}

// errUndefinedUnquoted formats the message a failed top-level Assign
// raises. The lack of quotes around the name here (vs. Get's quoted
// form) is intentional, not a typo, and both forms are tested.
func errUndefinedUnquoted(name string) error {
	return &undefinedVariableError{quoted: false, name: name}
}

// undefinedVariableError lets the interpreter attach the offending token
// and wrap this as a *loxerr.RuntimeError at the point it has that token
// in hand.
type undefinedVariableError struct {
	quoted bool
	name   string
}

func (e *undefinedVariableError) Error() string {
	if e.quoted {
		return "Undefined variable '" + e.name + "'."
	}
	return "Undefined variable " + e.name + "."
}

// UndefinedVariableMessage extracts the exact message an Environment
// lookup/assign failure should surface, for interp to wrap with the
// token that caused it.
func UndefinedVariableMessage(err error) (string, bool) {
	if uv, ok := err.(*undefinedVariableError); ok {
		return uv.Error(), true
	}
	return "", false
}
