package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes SourceErrors to a diagnostic sink. When colorize is set
// at construction, each whole diagnostic line is written in bold red;
// otherwise it is written as plain text (ref. SPEC_FULL.md's
// ambient-stack colorized-diagnostics component).
type Printer struct {
	out      io.Writer
	colorize bool
	verbose  bool
	source   string
}

// NewPrinter creates a Printer writing to out. colorize enables
// fatih/color styling (the caller decides this via mattn/go-isatty
// against the real stderr fd, ref. SPEC_FULL.md §2.1). verbose switches
// from the plain `[line N] Error: kind: message` form to
// SourceError.FormatWithContext, which also shows the offending line.
func NewPrinter(out io.Writer, colorize, verbose bool, source string) *Printer {
	return &Printer{out: out, colorize: colorize, verbose: verbose, source: source}
}

// Print writes one diagnostic line for err.
func (p *Printer) Print(err *SourceError) {
	text := err.Error()
	if p.verbose {
		text = err.FormatWithContext(p.source)
	}
	if !p.colorize {
		fmt.Fprintln(p.out, text)
		return
	}
	red := color.New(color.FgRed, color.Bold)
	red.Fprintln(p.out, text)
}

// PrintAll writes one line per diagnostic in bag.
func (p *Printer) PrintAll(bag *Bag) {
	for _, err := range bag.Errors() {
		p.Print(err)
	}
}
