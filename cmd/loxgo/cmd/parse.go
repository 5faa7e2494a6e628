package cmd

import (
	"fmt"
	"os"

	"github.com/deep-adeshraa/loxgo/internal/diagnostics"
	"github.com/deep-adeshraa/loxgo/internal/lexer"
	"github.com/deep-adeshraa/loxgo/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the AST in fully-parenthesized prefix form",
	Long: `Parse reads a program and prints its AST: atoms render as their
literal, Grouping as "(group X)", Unary as "(OP X)", Binary as "(OP L R)"
(ref. spec.md §6).

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParseCmd(cmd *cobra.Command, args []string) error {
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
		printer := diagnostics.NewPrinter(os.Stderr, stderrColorize(), verboseFlag(cmd), source)
		printer.PrintAll(bag)
		return &exitError{code: bag.ExitCode()}
	}

	fmt.Fprintln(cmd.OutOrStdout(), prog.String())
	return nil
}

func printLexErrors(cmd *cobra.Command, source string, lexErrs []lexer.Error) {
	printer := diagnostics.NewPrinter(os.Stderr, stderrColorize(), verboseFlag(cmd), source)
	for _, le := range lexErrs {
		printer.Print(diagnostics.New(diagnostics.Lexical, le.Line, le.Message))
	}
}
