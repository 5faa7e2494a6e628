// Command loxgo is the CLI front end: tokenize, parse, and evaluate
// programs (ref. spec.md §6).
package main

import (
	"os"

	"github.com/deep-adeshraa/loxgo/cmd/loxgo/cmd"
)

func main() {
	err := cmd.Execute()
	os.Exit(cmd.ExitCode(err))
}
