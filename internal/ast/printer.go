package ast

import (
	"fmt"
	"strings"
)

// Print renders an expression back to a parenthesized source-like form.
// It exists only for tests; the interpreter never calls it. Dispatch is
// a type switch rather than a visitor interface, matching how the rest
// of this AST is walked.
func Print(e Expr) string {
	switch n := e.(type) {
	case *Assign:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case *Binary:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Call:
		return parenthesize("call", append([]Expr{n.Callee}, n.Args...)...)
	case *Get:
		return parenthesize("."+n.Name.Lexeme, n.Object)
	case *Grouping:
		return parenthesize("group", n.Expression)
	case *Literal:
		return printLiteral(n.Value)
	case *Logical:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Set:
		return parenthesize("="+"."+n.Name.Lexeme, n.Object, n.Value)
	case *Super:
		return "(super." + n.Method.Lexeme + ")"
	case *This:
		return "this"
	case *Unary:
		return parenthesize(n.Operator.Lexeme, n.Right)
	case *Variable:
		return n.Name.Lexeme
	default:
		return fmt.Sprintf("<?%T>", n)
	}
}

func printLiteral(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", value)
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(Print(e))
	}
	sb.WriteByte(')')
	return sb.String()
}
