package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/loxlang/lox/internal/config"
	"github.com/loxlang/lox/internal/loxerr"
	"github.com/loxlang/lox/pkg/lox"
)

// runFile reads path as UTF-8, runs it once, and translates the outcome
// into the matching process exit code.
func runFile(path string, log *logrus.Logger) error {
	if !config.HasSourceExt(path) {
		fmt.Fprintf(os.Stderr, "lox: %s: not a %s file\n", path, config.SourceFileExt)
		return &ExitError{Code: 64}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: %v\n", err)
		return &ExitError{Code: 74}
	}

	result := lox.RunFile(string(source), os.Stdout, lox.WithLogger(log))
	if result.HadStaticError() {
		for _, d := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		return &ExitError{Code: 65}
	}
	if result.RuntimeError != nil {
		if re, ok := result.RuntimeError.(*loxerr.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, re.Format())
		} else {
			fmt.Fprintln(os.Stderr, result.RuntimeError)
		}
		return &ExitError{Code: 70}
	}
	return nil
}

// runPrompt drives the REPL: errors print but never terminate the loop,
// and the process always exits 0 on EOF.
func runPrompt(log *logrus.Logger) error {
	return lox.RunPrompt(os.Stdout, os.Stderr, lox.WithLogger(log))
}
