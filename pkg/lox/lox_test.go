package lox_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/lox/pkg/lox"
)

func TestRunFilePrintsOutput(t *testing.T) {
	var out strings.Builder
	result := lox.RunFile(`print 1 + 2;`, &out)
	require.False(t, result.HadStaticError())
	require.NoError(t, result.RuntimeError)
	assert.Equal(t, "3\n", out.String())
}

func TestRunFileReportsStaticDiagnostics(t *testing.T) {
	var out strings.Builder
	result := lox.RunFile(`print ;`, &out)
	assert.True(t, result.HadStaticError())
	assert.NotEmpty(t, result.Diagnostics)
}

func TestRunFileReportsRuntimeError(t *testing.T) {
	var out strings.Builder
	result := lox.RunFile(`fun foo(){ a = 1; } foo();`, &out)
	require.False(t, result.HadStaticError())
	require.Error(t, result.RuntimeError)
	assert.Equal(t, "Undefined variable a.", result.RuntimeError.Error())
}

func TestRunnerPersistsStateAcrossCalls(t *testing.T) {
	var out strings.Builder
	runner := lox.New(&out)

	r1 := runner.Run(`var count = 0;`)
	require.NoError(t, r1.RuntimeError)

	r2 := runner.Run(`count = count + 1; print count;`)
	require.NoError(t, r2.RuntimeError)

	r3 := runner.Run(`count = count + 1; print count;`)
	require.NoError(t, r3.RuntimeError)

	assert.Equal(t, "1\n2\n", out.String())
}
