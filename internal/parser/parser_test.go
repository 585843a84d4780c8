package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/lexer"
	"github.com/loxlang/lox/internal/loxerr"
	"github.com/loxlang/lox/internal/parser"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *loxerr.CollectingReporter) {
	t.Helper()
	reporter := loxerr.NewCollectingReporter()
	tokens := lexer.New(source, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	return stmts, reporter
}

func TestParseVarAndPrint(t *testing.T) {
	stmts, reporter := parse(t, `var a = 1; print a;`)
	require.False(t, reporter.HadError())
	require.Len(t, stmts, 2)
	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)
	_, ok = stmts[1].(*ast.Print)
	assert.True(t, ok)
}

func TestForDesugarsToBlockWhile(t *testing.T) {
	stmts, reporter := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, reporter.HadError())
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)
	_, ok = outer.Statements[0].(*ast.Var)
	assert.True(t, ok)
	while, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)
	body, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestForMissingConditionBecomesTrueLiteral(t *testing.T) {
	stmts, reporter := parse(t, `for (;;) print 1;`)
	require.False(t, reporter.HadError())
	while := stmts[0].(*ast.While)
	lit, ok := while.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestAssignmentTargetVariableAndGet(t *testing.T) {
	stmts, reporter := parse(t, `a = 1; a.b = 2;`)
	require.False(t, reporter.HadError())
	_, ok := stmts[0].(*ast.Expression).Expr.(*ast.Assign)
	assert.True(t, ok)
	_, ok = stmts[1].(*ast.Expression).Expr.(*ast.Set)
	assert.True(t, ok)
}

func TestInvalidAssignmentTargetReportsButContinues(t *testing.T) {
	stmts, reporter := parse(t, `1 = 2; print 3;`)
	require.True(t, reporter.HadError())
	diags := reporter.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Invalid assignment target.")
	// Parsing continued: the print statement after the error is still present.
	require.Len(t, stmts, 2)
	_, ok := stmts[1].(*ast.Print)
	assert.True(t, ok)
}

func TestMultipleIndependentErrorsAllReported(t *testing.T) {
	_, reporter := parse(t, "var ;\nprint ;\nvar x = ;")
	diags := reporter.Diagnostics()
	require.GreaterOrEqual(t, len(diags), 2)
}

func TestClassWithSuperclassAndMethods(t *testing.T) {
	stmts, reporter := parse(t, `
		class A { say() { print "a"; } }
		class B < A { say() { super.say(); print "b"; } }
	`)
	require.False(t, reporter.HadError())
	require.Len(t, stmts, 2)
	b := stmts[1].(*ast.Class)
	require.NotNil(t, b.Superclass)
	assert.Equal(t, "A", b.Superclass.Name.Lexeme)
	require.Len(t, b.Methods, 1)
	assert.Equal(t, "say", b.Methods[0].Name.Lexeme)
}

func TestCallArgumentCountCapReportsButParses(t *testing.T) {
	var sb []byte
	sb = append(sb, "f("...)
	for i := 0; i < 256; i++ {
		if i > 0 {
			sb = append(sb, ',')
		}
		sb = append(sb, '1')
	}
	sb = append(sb, ");"...)
	_, reporter := parse(t, string(sb))
	require.True(t, reporter.HadError())
	found := false
	for _, d := range reporter.Diagnostics() {
		if d.Message == "Can't have more than 255 arguments." {
			found = true
		}
	}
	assert.True(t, found)
}
