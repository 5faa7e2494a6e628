package cmd

import (
	"os"

	"github.com/deep-adeshraa/loxgo/internal/diagnostics"
	"github.com/deep-adeshraa/loxgo/internal/interp"
	"github.com/deep-adeshraa/loxgo/internal/lexer"
	"github.com/deep-adeshraa/loxgo/internal/parser"
	"github.com/deep-adeshraa/loxgo/internal/resolver"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [file]",
	Short: "Run a program",
	Long: `Evaluate lexes, parses, resolves, and runs a program, writing any
"print" output to stdout (ref. spec.md §6).

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	tokens := l.Scan()
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		printLexErrors(cmd, source, lexErrs)
		return &exitError{code: diagnostics.Lexical.ExitCode()}
	}

	prog, bag := parser.New(tokens).Parse()
	if bag.HasErrors() {
		diagnostics.NewPrinter(os.Stderr, stderrColorize(), verboseFlag(cmd), source).PrintAll(bag)
		return &exitError{code: bag.ExitCode()}
	}

	locals, bag := resolver.New().Resolve(prog.Statements)
	if bag.HasErrors() {
		diagnostics.NewPrinter(os.Stderr, stderrColorize(), verboseFlag(cmd), source).PrintAll(bag)
		return &exitError{code: bag.ExitCode()}
	}

	it := interp.New(cmd.OutOrStdout())
	if err := it.Run(prog, locals); err != nil {
		srcErr, ok := err.(*diagnostics.SourceError)
		if !ok {
			srcErr = diagnostics.New(diagnostics.Runtime, 0, err.Error())
		}
		diagnostics.NewPrinter(os.Stderr, stderrColorize(), verboseFlag(cmd), source).Print(srcErr)
		return &exitError{code: diagnostics.Runtime.ExitCode()}
	}
	return nil
}
