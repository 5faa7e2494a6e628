package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// exitError carries a specific process exit code (65 or 70) out of a
// RunE without cobra re-printing its message — the command has already
// written its own diagnostics via diagnostics.Printer (ref. spec.md §6
// "Exit codes").
type exitError struct{ code int }

func (e *exitError) Error() string { return "" }

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// ExitCode extracts the process exit code intended for err: 0 for a nil
// or unrecognized error's absence, the code carried by an *exitError, or
// 1 for any other error (a CLI usage mistake, not a language diagnostic).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

// readSource reads the single positional file argument, or stdin if none
// was given.
func readSource(cmd *cobra.Command, args []string) (source, filename string, err error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

// stderrColorize reports whether diagnostics written to stderr should be
// colorized: only when stderr is an actual terminal (ref. SPEC_FULL.md's
// colorized-diagnostics component, grounded on mattn/go-isatty).
func stderrColorize() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
