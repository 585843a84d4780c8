package runtime

import (
	"fmt"
	"time"

	"github.com/loxlang/lox/internal/ast"
)

// Callable is the one place in this interpreter an open interface is
// warranted: the four variants below — native function, user function,
// bound method, and class-as-constructor — all expose the same
// arity/call surface.
type Callable interface {
	Arity() int
	Call(interp Interpreter, args []Value) (Value, error)
	String() string
}

// Interpreter is the narrow seam runtime.Callable implementations call
// back into. It is satisfied by *interp.Interpreter; defining it here
// (rather than importing the interp package) avoids a runtime<->interp
// import cycle.
type Interpreter interface {
	// ExecuteBlock runs statements against environment and returns the
	// error that terminated it, if any. It never treats *Return
	// specially: Return must unwind all the way to the nearest Call
	// boundary, not just the nearest Block.
	ExecuteBlock(statements []ast.Stmt, environment *Environment) error
}

// Return is the non-local control-flow signal produced by a return
// statement. It is not an error: it is raised by executing a Return
// statement and caught exactly once, by the Call that is currently
// running. It must never reach the top-level driver.
type Return struct {
	Value Value
}

// Error satisfies the error interface so Return can travel the same
// return-error channel as genuine runtime errors; ExecuteBlock callers
// that are at a Call boundary type-assert for *Return explicitly instead
// of treating it as failure.
func (*Return) Error() string { return "return" }

// NativeFunction wraps a Go function as a Lox callable. The only
// built-in shipped by default is clock().
type NativeFunction struct {
	id    ast.NodeID
	name  string
	arity int
	fn    func(args []Value) (Value, error)
}

// NewClock returns the built-in clock() -> Number (seconds since epoch).
func NewClock() *NativeFunction {
	return &NativeFunction{
		id:    ast.NewNodeID(),
		name:  "clock",
		arity: 0,
		fn: func([]Value) (Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(_ Interpreter, args []Value) (Value, error) {
	return n.fn(args)
}

func (n *NativeFunction) String() string { return "<global fn>" }

// Function is a closed-over user function or method. The same type
// represents both a plain `fun` declaration and a class method;
// IsInitializer is set exactly when it is a class's `init`.
type Function struct {
	id            ast.NodeID
	Declaration   *ast.Function
	Closure       *Environment
	IsInitializer bool
}

// NewFunction wraps declaration, capturing closure as its defining
// environment.
func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{id: ast.NewNodeID(), Declaration: declaration, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Call binds each parameter to its argument in a fresh frame enclosed by
// the captured closure, then executes the body. A `return <value>;`
// inside becomes the result; falling off the end yields nil, or `this`
// when this is an initializer.
func (f *Function) Call(interp Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if ret, ok := err.(*Return); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Bind produces a bound method: a copy of f whose closure has an extra
// enclosing frame binding "this" to instance.
func (f *Function) Bind(instance *Instance) *BoundMethod {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &BoundMethod{id: ast.NewNodeID(), method: NewFunction(f.Declaration, env, f.IsInitializer)}
}

// BoundMethod is a Function whose closure already has "this" bound; it
// exists as a distinct type only so identity and display are independent
// of the unbound method it was produced from.
type BoundMethod struct {
	id     ast.NodeID
	method *Function
}

func (b *BoundMethod) Arity() int { return b.method.Arity() }

func (b *BoundMethod) Call(interp Interpreter, args []Value) (Value, error) {
	return b.method.Call(interp, args)
}

func (b *BoundMethod) String() string { return b.method.String() }
