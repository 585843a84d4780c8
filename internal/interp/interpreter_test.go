package interp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/lox/internal/interp"
	"github.com/loxlang/lox/internal/lexer"
	"github.com/loxlang/lox/internal/loxerr"
	"github.com/loxlang/lox/internal/parser"
	"github.com/loxlang/lox/internal/resolver"
)

// run lexes, parses, resolves, and interprets source, returning whatever
// reached the output sink and the first error of any stage.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	reporter := loxerr.NewCollectingReporter()
	tokens := lexer.New(source, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	require.False(t, reporter.HadError(), "unexpected parse errors: %v", reporter.Diagnostics())

	locals := resolver.New(reporter).Resolve(stmts)
	require.False(t, reporter.HadError(), "unexpected resolver errors: %v", reporter.Diagnostics())

	var out strings.Builder
	in := interp.New(&out, nil)
	err := in.Interpret(stmts, locals)
	return out.String(), err
}

func TestPrintLiteralsAndArithmetic(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3; print "a" + "b";`)
	require.NoError(t, err)
	assert.Equal(t, "7\nab\n", out)
}

func TestBlockScopingRestoresOuterBinding(t *testing.T) {
	out, err := run(t, `var a = 3; print a; { var a = 5; print a; } print a;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n5\n3\n", out)
}

func TestIfElseAndWhile(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) { print i; i = i + 1; }
		if (i == 3) { print "done"; } else { print "nope"; }
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\ndone\n", out)
}

func TestForDesugaring(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestClosureCounter(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() { count = count + 1; print count; }
			return increment;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestLogicalShortCircuitReturnsOperand(t *testing.T) {
	out, err := run(t, `
		print "a" or "x";
		print nil or "b";
		print false and 3;
		print true and "d";
	`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nfalse\nd\n", out)
}

func TestClassInitAndMethodDispatch(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			init(name) { this.name = name; }
			greet() { print "hi " + this.name; }
		}
		var g = Greeter("world");
		g.greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, "hi world\n", out)
}

func TestSuperDispatch(t *testing.T) {
	out, err := run(t, `
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			speak() { super.speak(); print "woof"; }
		}
		Dog().speak();
	`)
	require.NoError(t, err)
	assert.Equal(t, "...\nwoof\n", out)
}

func TestRuntimeErrorOperandMustBeNumber(t *testing.T) {
	_, err := run(t, `print -"x";`)
	require.Error(t, err)
	assert.Equal(t, "Operand must be a number.", err.Error())
}

func TestRuntimeErrorOperandsMustBeNumbers(t *testing.T) {
	_, err := run(t, `print "x" - 1;`)
	require.Error(t, err)
	assert.Equal(t, "Operands must be numbers.", err.Error())
}

func TestRuntimeErrorPlusMixedTypes(t *testing.T) {
	_, err := run(t, `print 1 + "x";`)
	require.Error(t, err)
	assert.Equal(t, "Operands must be two numbers or two strings.", err.Error())
}

func TestRuntimeErrorCallNonCallable(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Equal(t, "Can only call functions and classes.", err.Error())
}

func TestRuntimeErrorWrongArity(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Equal(t, "Expected 2 arguments but got 1.", err.Error())
}

func TestRuntimeErrorUndefinedPropertyGet(t *testing.T) {
	_, err := run(t, `class A {} A().missing;`)
	require.Error(t, err)
	assert.Equal(t, "Undefined property 'missing'.", err.Error())
}

func TestRuntimeErrorGetOnNonInstance(t *testing.T) {
	_, err := run(t, `var x = 1; print x.y;`)
	require.Error(t, err)
	assert.Equal(t, "Only instances have properties.", err.Error())
}

func TestRuntimeErrorSetOnNonInstance(t *testing.T) {
	_, err := run(t, `var x = 1; x.y = 2;`)
	require.Error(t, err)
	assert.Equal(t, "Only instances have fields.", err.Error())
}

func TestRuntimeErrorSuperclassMustBeAClass(t *testing.T) {
	_, err := run(t, `var NotAClass = 1; class Sub < NotAClass {}`)
	require.Error(t, err)
	assert.Equal(t, "Superclass must be a class.", err.Error())
}

func TestRuntimeErrorAssignUndefinedGlobalIsUnquoted(t *testing.T) {
	_, err := run(t, `fun foo() { a = 1; } foo();`)
	require.Error(t, err)
	assert.Equal(t, "Undefined variable a.", err.Error())
}

func TestNumberDisplayDropsTrailingZero(t *testing.T) {
	out, err := run(t, `print 3.0; print 3.5;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n3.5\n", out)
}

func TestNaNEqualsItself(t *testing.T) {
	out, err := run(t, `
		fun nan() { return 0.0/0.0; }
		var n = nan();
		print n == n;
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestStackOverflowOnUnboundedRecursion(t *testing.T) {
	_, err := run(t, `fun loop() { return loop(); } loop();`)
	require.Error(t, err)
	assert.Equal(t, "Stack overflow.", err.Error())
}
