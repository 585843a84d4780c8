package runtime

import "github.com/loxlang/lox/internal/ast"

// Class is an immutable class descriptor: a name, an optional superclass,
// and a method table. It is itself Callable: calling a class constructs
// an instance.
type Class struct {
	id         ast.NodeID
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a class descriptor. methods maps method name to its
// Function value, already closed over the environment the `class`
// statement built for `super`/declaration order.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{id: ast.NewNodeID(), Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, then recursively up the
// superclass chain. `init` lookup uses this same walk.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init` when one exists, else 0.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh Instance, binds and invokes `init` if the class
// (or a superclass) defines one, and returns the instance.
func (c *Class) Call(interp Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string { return c.Name }

// Instance is a mutable runtime instance of a Class.
type Instance struct {
	id     ast.NodeID
	Class  *Class
	Fields map[string]Value
}

// NewInstance creates an instance with an empty field map.
func NewInstance(class *Class) *Instance {
	return &Instance{id: ast.NewNodeID(), Class: class, Fields: make(map[string]Value)}
}

// Get resolves a property read: the field map first, then a method
// lookup that — if found — returns a bound method.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), true
	}
	return nil, false
}

// Set unconditionally writes into the instance's field map.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
