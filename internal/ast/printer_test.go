package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/pkg/token"
)

func TestPrintBinary(t *testing.T) {
	expr := ast.NewBinary(
		ast.NewUnary(token.New(token.Minus, "-", nil, 1), ast.NewLiteral(123.0)),
		token.New(token.Star, "*", nil, 1),
		ast.NewGrouping(ast.NewLiteral(45.67)),
	)
	assert.Equal(t, "(* (- 123) (group 45.67))", ast.Print(expr))
}

func TestPrintVariableAndNil(t *testing.T) {
	v := ast.NewVariable(token.New(token.Identifier, "a", nil, 1))
	assert.Equal(t, "a", ast.Print(v))
	assert.Equal(t, "nil", ast.Print(ast.NewLiteral(nil)))
}
