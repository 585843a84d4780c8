// Package interp implements the tree-walking evaluator: statement
// execution, expression evaluation, and call/class/instance semantics.
// It is the only package that both imports internal/runtime and
// satisfies runtime.Interpreter, closing the seam that package was built
// around.
package interp

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/config"
	"github.com/loxlang/lox/internal/loxerr"
	"github.com/loxlang/lox/internal/resolver"
	"github.com/loxlang/lox/internal/runtime"
)

// Interpreter walks and executes a resolved statement tree. One
// Interpreter is built per session (a whole REPL session, a script, or a
// test) and carries
// the globals frame, the currently active frame, the resolver's locals
// map, and a bounded call stack.
type Interpreter struct {
	globals *runtime.Environment
	env     *runtime.Environment
	locals  resolver.Locals
	calls   *CallStack
	out     io.Writer
	log     *logrus.Logger
}

// New builds an Interpreter that writes Print output to out and defines
// the single built-in global, clock. log may be nil, in which case a
// disabled logger is used: trace logging is an ambient concern, never a
// requirement of the evaluation itself.
func New(out io.Writer, log *logrus.Logger) *Interpreter {
	globals := runtime.NewEnvironment()
	globals.Define(config.ClockFuncName, runtime.NewClock())
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(resolver.Locals),
		calls:   NewCallStack(config.DefaultMaxCallDepth),
		out:     out,
		log:     log,
	}
}

// Interpret runs stmts top to bottom using locals for every resolved
// variable reference. It returns the first runtime error encountered,
// already wrapped as a *loxerr.RuntimeError; a bare *runtime.Return
// reaching here would be a resolver bug, never user-triggered, so it is
// not specially handled.
func (in *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) error {
	in.locals = locals
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock satisfies runtime.Interpreter: it runs statements against
// environment, restoring the interpreter's previous current frame
// afterward regardless of outcome. Function.Call relies on the same
// restore for its parameter frame.
func (in *Interpreter) ExecuteBlock(statements []ast.Stmt, environment *runtime.Environment) error {
	previous := in.env
	in.env = environment
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.ExecuteBlock(s.Statements, runtime.NewEnclosedEnvironment(in.env))
	case *ast.Class:
		return in.executeClass(s)
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err
	case *ast.Function:
		fn := runtime.NewFunction(s, in.env, false)
		in.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if runtime.Truthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil
	case *ast.Print:
		value, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, runtime.Stringify(value))
		return nil
	case *ast.Return:
		var value runtime.Value
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &runtime.Return{Value: value}
	case *ast.Var:
		var value runtime.Value
		if s.Init != nil {
			v, err := in.evaluate(s.Init)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !runtime.Truthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// executeClass resolves an optional superclass, builds the method
// table, pushes/pops a "super" frame around method construction, and
// binds the finished descriptor to the name declared before evaluation
// (so a class can reference itself).
func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *runtime.Class
	if s.Superclass != nil {
		value, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		class, ok := value.(*runtime.Class)
		if !ok {
			return loxerr.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = class
	}

	in.env.Define(s.Name.Lexeme, nil)

	methodEnv := in.env
	if superclass != nil {
		methodEnv = runtime.NewEnclosedEnvironment(in.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*runtime.Function, len(s.Methods))
	for _, method := range s.Methods {
		isInit := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = runtime.NewFunction(method, methodEnv, isInit)
	}

	class := runtime.NewClass(s.Name.Lexeme, superclass, methods)
	return in.env.Assign(s.Name.Lexeme, class)
}
