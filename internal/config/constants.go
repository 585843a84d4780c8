// Package config holds the small set of constants shared across the
// interpreter and CLI: recognized source-file extensions, the
// one built-in global name, and version metadata for the `lox` binary.
package config

// Version is the current lox version. Set at build time via -ldflags,
// or left at this default for local builds.
var Version = "0.1.0"

// SourceFileExt is the canonical source extension for `lox <script>`.
const SourceFileExt = ".lox"

// SourceFileExtensions are all extensions `lox <script>` accepts.
var SourceFileExtensions = []string{".lox"}

// HasSourceExt reports whether path ends with a recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Built-in global names the interpreter defines before running any user
// code.
const (
	ClockFuncName = "clock"
)

// DefaultMaxCallDepth bounds recursion; exceeding it is the
// "Stack overflow." runtime error raised by the call-stack tracking in
// internal/interp.
const DefaultMaxCallDepth = 1024
