package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, capturing stdout/stderr and
// resetting the flags/positional state a prior test call may have left
// behind on the package-level command.
func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	rootCmd.SetArgs(args)
	traceFlag, verboseFlag = false, false

	old := os.Stdout
	oldErr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	rErr, wErr, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = wErr

	code = Execute()

	w.Close()
	wErr.Close()
	os.Stdout = old
	os.Stderr = oldErr

	var gotOut, gotErr bytes.Buffer
	_, _ = gotOut.ReadFrom(r)
	_, _ = gotErr.ReadFrom(rErr)
	return gotOut.String(), gotErr.String(), code
}

func TestRunFileScriptExitsZeroOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print 1 + 2;`), 0o644))

	out, _, code := execute(t, path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", out)
}

func TestRunFileScriptExitsSixtyFiveOnStaticError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print ;`), 0o644))

	_, errOut, code := execute(t, path)
	assert.Equal(t, 65, code)
	assert.NotEmpty(t, errOut)
}

func TestRunFileScriptExitsSeventyOnRuntimeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runtime.lox")
	require.NoError(t, os.WriteFile(path, []byte(`fun foo(){ a = 1; } foo();`), 0o644))

	_, errOut, code := execute(t, path)
	assert.Equal(t, 70, code)
	assert.Contains(t, errOut, "Undefined variable a.")
}

func TestTooManyArgumentsExitsSixtyFourWithUsage(t *testing.T) {
	_, errOut, code := execute(t, "one.lox", "two.lox")
	assert.Equal(t, 64, code)
	assert.Contains(t, errOut, "Usage: lox [script]")
}

func TestUnrecognizedExtensionExitsSixtyFour(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	require.NoError(t, os.WriteFile(path, []byte(`print 1;`), 0o644))

	_, errOut, code := execute(t, path)
	assert.Equal(t, 64, code)
	assert.Contains(t, errOut, "not a .lox file")
}
