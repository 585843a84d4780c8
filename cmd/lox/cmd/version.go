package cmd

import "github.com/loxlang/lox/internal/config"

// Version is the lox binary's version, taken from internal/config so
// the CLI and any embedders report the same value.
var Version = config.Version
