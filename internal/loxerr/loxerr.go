// Package loxerr implements the three error kinds this interpreter
// raises: static diagnostics (lexical/parse/resolver), runtime errors,
// and the package's Reporter collector that the lexer, parser, and
// resolver all report through. Non-local return is not an error and
// lives in internal/runtime (runtime.Return) instead.
package loxerr

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/loxlang/lox/pkg/token"
)

// Reporter receives static diagnostics as they are discovered. Lexer,
// Parser, and Resolver never stop on the first error; they keep reporting
// and let the caller (CollectingReporter, normally) decide whether to
// suppress later stages.
type Reporter interface {
	// ReportLine reports a line-only diagnostic (no offending token), used
	// by the lexer.
	ReportLine(line int, message string)
	// ReportToken reports a diagnostic anchored to a specific token, used
	// by the parser and resolver.
	ReportToken(tok token.Token, message string)
}

// Diagnostic is one static error: a line, an optional offending token, and
// a message. Where is empty for line-only diagnostics.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

// Error implements error, formatting as
// "[line N] Error<where>: <message>".
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// CollectingReporter accumulates every diagnostic reported during a single
// lex/parse/resolve pass, so that independent errors across a file are
// all surfaced rather than stopping at the first one.
type CollectingReporter struct {
	errs *multierror.Error
}

// NewCollectingReporter returns an empty reporter.
func NewCollectingReporter() *CollectingReporter {
	return &CollectingReporter{}
}

// ReportLine records a line-only diagnostic.
func (r *CollectingReporter) ReportLine(line int, message string) {
	r.errs = multierror.Append(r.errs, Diagnostic{Line: line, Message: message})
}

// ReportToken records a diagnostic anchored to tok, formatting Where as
// " at end" for EOF or " at '<lexeme>'" otherwise.
func (r *CollectingReporter) ReportToken(tok token.Token, message string) {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Kind == token.EOF {
		where = " at end"
	}
	r.errs = multierror.Append(r.errs, Diagnostic{Line: tok.Line, Where: where, Message: message})
}

// HadError reports whether any diagnostic has been recorded.
func (r *CollectingReporter) HadError() bool {
	return r.errs != nil && r.errs.Len() > 0
}

// Diagnostics returns every recorded diagnostic in report order.
func (r *CollectingReporter) Diagnostics() []Diagnostic {
	if r.errs == nil {
		return nil
	}
	out := make([]Diagnostic, 0, r.errs.Len())
	for _, e := range r.errs.Errors {
		if d, ok := e.(Diagnostic); ok {
			out = append(out, d)
		}
	}
	return out
}

// RuntimeError is a structured runtime error: the offending token plus
// a message. It unwinds every enclosing Block and Call until caught by
// the top-level driver.
type RuntimeError struct {
	Token   token.Token
	Message string
}

// Error implements error.
func (e *RuntimeError) Error() string {
	return e.Message
}

// Format renders the driver-facing form: "<message>\n[line N]".
func (e *RuntimeError) Format() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError builds a RuntimeError anchored to tok.
func NewRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}
