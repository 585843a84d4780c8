// Command lox is the CLI driver for the interpreter: `lox` starts a
// REPL, `lox script.lox` runs a file, and any other invocation is a
// usage error.
package main

import (
	"os"

	"github.com/loxlang/lox/cmd/lox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
