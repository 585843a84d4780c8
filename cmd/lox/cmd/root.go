// Package cmd implements the lox command-line driver: a REPL when
// invoked with no script argument, a one-shot file run when given
// exactly one, and a usage error for anything else.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"

	"github.com/spf13/cobra"
)

// ExitError carries the process exit code for each outcome: 64 (usage),
// 65 (static error), 70 (runtime error), 74 (script could not be read).
// A nil *ExitError from Execute means exit 0.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit %d", e.Code) }

var (
	traceFlag   bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "lox [script]",
	Short:         "A tree-walking interpreter for Lox",
	Version:       versionString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return &ExitError{Code: 64}
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		log := newLogger()
		if len(args) == 1 {
			return runFile(args[0], log)
		}
		return runPrompt(log)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "trace call-stack depth during execution")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose logging")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == 64 {
			fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		}
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}

// newLogger builds the trace/verbose logger shared by file and prompt
// modes. Its output goes to stderr so it never interleaves with Print
// statements' stdout.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&easy.Formatter{
		TimestampFormat: "15:04:05",
		LogFormat:       "[%lvl%] %msg%\n",
	})
	switch {
	case traceFlag:
		log.SetLevel(logrus.TraceLevel)
	case verboseFlag:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func versionString() string {
	return "lox " + Version
}
