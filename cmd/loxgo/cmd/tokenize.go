package cmd

import (
	"fmt"
	"os"

	"github.com/deep-adeshraa/loxgo/internal/diagnostics"
	"github.com/deep-adeshraa/loxgo/internal/lexer"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Print one line per token",
	Long: `Tokenize reads a program and prints one line per token in the form
"KIND LEXEME LITERAL", ending with "EOF  null" (ref. spec.md §6).

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	tokens := l.Scan()

	for _, tok := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), tok.TokenizeText())
	}

	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		printer := diagnostics.NewPrinter(os.Stderr, stderrColorize(), verboseFlag(cmd), source)
		for _, le := range lexErrs {
			printer.Print(diagnostics.New(diagnostics.Lexical, le.Line, le.Message))
		}
		return &exitError{code: diagnostics.Lexical.ExitCode()}
	}
	return nil
}

func verboseFlag(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}
