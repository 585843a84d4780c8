// Package lox is the embeddable entry point into the interpreter: lex,
// parse, resolve, and run a source string against a configured output
// sink, without any dependency on the CLI or its exit-code conventions.
// cmd/lox is a thin wrapper around this package.
package lox

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/loxlang/lox/internal/interp"
	"github.com/loxlang/lox/internal/lexer"
	"github.com/loxlang/lox/internal/loxerr"
	"github.com/loxlang/lox/internal/parser"
	"github.com/loxlang/lox/internal/resolver"
)

// Result is the outcome of running one source string: its static
// diagnostics (if any occurred, execution never starts) and, if static
// analysis passed, the runtime error that stopped execution, if any.
type Result struct {
	Diagnostics  []loxerr.Diagnostic
	RuntimeError error
}

// HadStaticError reports whether lexing, parsing, or resolving failed.
func (r Result) HadStaticError() bool { return len(r.Diagnostics) > 0 }

// Option configures a Runner.
type Option func(*Runner)

// WithLogger attaches a logger for execution tracing (the `--trace`
// flag). A nil or unset logger disables tracing.
func WithLogger(log *logrus.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// Runner holds the configuration shared across repeated Run calls: the
// output sink Print statements write to, and an optional trace logger.
// A REPL reuses a single Runner so earlier lines' globals and function
// definitions remain visible to later ones.
type Runner struct {
	out io.Writer
	log *logrus.Logger

	interp *interp.Interpreter
}

// New builds a Runner writing Print output to out.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{out: out}
	for _, opt := range opts {
		opt(r)
	}
	r.interp = interp.New(out, r.log)
	return r
}

// Run lexes, parses, resolves, and interprets source. Static diagnostics
// from any of the first three stages abort before execution begins and
// are all returned together; only once none remain does the interpreter
// run, against the Runner's persistent environment.
func (r *Runner) Run(source string) Result {
	reporter := loxerr.NewCollectingReporter()

	tokens := lexer.New(source, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	if reporter.HadError() {
		return Result{Diagnostics: reporter.Diagnostics()}
	}

	locals := resolver.New(reporter).Resolve(stmts)
	if reporter.HadError() {
		return Result{Diagnostics: reporter.Diagnostics()}
	}

	err := r.interp.Interpret(stmts, locals)
	return Result{RuntimeError: err}
}

// RunFile is a convenience wrapper running the contents of a single
// source string as a one-shot script, rather than accumulating state
// across a REPL session.
func RunFile(source string, out io.Writer, opts ...Option) Result {
	return New(out, opts...).Run(source)
}

// RunPrompt drives the REPL: prompt "> ", read a line, execute it
// against a persistent Runner so earlier definitions stay visible,
// report any diagnostic to errOut without stopping the loop, and on EOF
// print a trailing newline so the prompt isn't left dangling.
func RunPrompt(out, errOut io.Writer, opts ...Option) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		Stdout:          out,
		Stderr:          errOut,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("lox: starting prompt: %w", err)
	}
	defer rl.Close()

	runner := New(out, opts...)
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(errOut)
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return fmt.Errorf("lox: reading prompt: %w", err)
		}

		result := runner.Run(line)
		for _, d := range result.Diagnostics {
			fmt.Fprintln(errOut, d.Error())
		}
		if result.RuntimeError != nil {
			fmt.Fprintln(errOut, formatRuntimeError(result.RuntimeError))
		}
	}
}

// formatRuntimeError renders a runtime error in its "<message>\n[line
// N]" form, falling back to its plain message for errors that aren't a
// *loxerr.RuntimeError (which should not occur in practice, since
// interp.Interpret only ever returns that type or nil).
func formatRuntimeError(err error) string {
	if re, ok := err.(*loxerr.RuntimeError); ok {
		return re.Format()
	}
	return err.Error()
}
