package interp

import (
	"strconv"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/loxerr"
	"github.com/loxlang/lox/internal/runtime"
	"github.com/loxlang/lox/pkg/token"
)

// evaluate dispatches expression evaluation. Pattern-matching a type
// switch over ast.Expr rather than a generated Visitor.
func (in *Interpreter) evaluate(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.evaluate(e.Expression)
	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)
	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)
	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e.ID()]; ok {
			in.env.AssignAt(distance, e.Name.Lexeme, value)
			return value, nil
		}
		if err := in.globals.Assign(e.Name.Lexeme, value); err != nil {
			return nil, in.wrapUndefined(e.Name, err)
		}
		return value, nil
	case *ast.Logical:
		return in.evaluateLogical(e)
	case *ast.Unary:
		return in.evaluateUnary(e)
	case *ast.Binary:
		return in.evaluateBinary(e)
	case *ast.Call:
		return in.evaluateCall(e)
	case *ast.Get:
		return in.evaluateGet(e)
	case *ast.Set:
		return in.evaluateSet(e)
	case *ast.Super:
		return in.evaluateSuper(e)
	}
	return nil, nil
}

// lookUpVariable resolves a Variable or This reference: a recorded
// distance reads directly from that ancestor frame, else the name is
// looked up in globals.
func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (runtime.Value, error) {
	if distance, ok := in.locals[expr.ID()]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	value, err := in.globals.Get(name.Lexeme)
	if err != nil {
		return nil, in.wrapUndefined(name, err)
	}
	return value, nil
}

func (in *Interpreter) wrapUndefined(name token.Token, err error) error {
	if msg, ok := runtime.UndefinedVariableMessage(err); ok {
		return loxerr.NewRuntimeError(name, msg)
	}
	return err
}

func (in *Interpreter) evaluateLogical(e *ast.Logical) (runtime.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.Or {
		if runtime.Truthy(left) {
			return left, nil
		}
	} else {
		if !runtime.Truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evaluateUnary(e *ast.Unary) (runtime.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Bang:
		return !runtime.Truthy(right), nil
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	}
	return nil, nil
}

func (in *Interpreter) evaluateBinary(e *ast.Binary) (runtime.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Plus:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case token.Minus, token.Star, token.Slash:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Star:
			return ln * rn, nil
		default:
			return ln / rn, nil
		}
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.Greater:
			return ln > rn, nil
		case token.GreaterEqual:
			return ln >= rn, nil
		case token.Less:
			return ln < rn, nil
		default:
			return ln <= rn, nil
		}
	case token.EqualEqual:
		return runtime.Equal(left, right), nil
	case token.BangEqual:
		return !runtime.Equal(left, right), nil
	}
	return nil, nil
}

func bothNumbers(left, right runtime.Value) (float64, float64, bool) {
	ln, ok := left.(float64)
	if !ok {
		return 0, 0, false
	}
	rn, ok := right.(float64)
	if !ok {
		return 0, 0, false
	}
	return ln, rn, true
}

// evaluateCall evaluates the callee and arguments left to right, checks
// callability and arity, then dispatches through runtime.Callable.
// Every call (user function, bound method, class, or native) is tracked
// on the call stack so unbounded
// recursion is caught as "Stack overflow." rather than crashing the
// process.
func (in *Interpreter) evaluateCall(e *ast.Call) (runtime.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, 0, len(e.Args))
	for _, arg := range e.Args {
		v, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(e.Paren,
			arityMessage(callable.Arity(), len(args)))
	}

	if in.calls.WillOverflow() {
		return nil, loxerr.NewRuntimeError(e.Paren, "Stack overflow.")
	}
	in.calls.Push(callable.String())
	in.log.WithField("depth", in.calls.Depth()).Tracef("enter %s", callable.String())
	defer func() {
		in.log.WithField("depth", in.calls.Depth()).Tracef("leave %s", callable.String())
		in.calls.Pop()
	}()

	return callable.Call(in, args)
}

func (in *Interpreter) evaluateGet(e *ast.Get) (runtime.Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	value, found := instance.Get(e.Name.Lexeme)
	if !found {
		return nil, loxerr.NewRuntimeError(e.Name, "Undefined property '"+e.Name.Lexeme+"'.")
	}
	return value, nil
}

func (in *Interpreter) evaluateSet(e *ast.Set) (runtime.Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

// evaluateSuper resolves a super.m dispatch: the superclass sits at the
// recorded distance, the receiving instance one frame closer in ("this"
// is always declared by Function.Bind in a frame directly inside the
// "super" frame that executeClass builds).
func (in *Interpreter) evaluateSuper(e *ast.Super) (runtime.Value, error) {
	distance := in.locals[e.ID()]
	superclass := in.env.GetAt(distance, "super").(*runtime.Class)
	instance := in.env.GetAt(distance-1, "this").(*runtime.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}

func arityMessage(expected, got int) string {
	return "Expected " + strconv.Itoa(expected) + " arguments but got " + strconv.Itoa(got) + "."
}
