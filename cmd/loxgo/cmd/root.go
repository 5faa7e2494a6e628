// Package cmd wires loxgo's cobra commands: tokenize, parse, evaluate,
// and version (ref. spec.md §6 "CLI").
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "loxgo",
	Short: "A tree-walking interpreter for a small dynamically-typed scripting language",
	Long: `loxgo tokenizes, parses, and evaluates programs in a small
dynamically-typed, C-like scripting language: variables, control flow,
first-class functions with closures, and classes with methods bound to
an implicit "this".`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show source context around diagnostics")
}
