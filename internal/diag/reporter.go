package diag

import (
	"fmt"
	"io"

	"rosa/internal/source"
)

// Reporter renders diagnostics to an output stream. The default
// implementation here is deliberately plain; internal/diagfmt builds a
// richer, colorized renderer with source snippets on top of the same
// Diagnostic values.
type Reporter interface {
	Report(fset *source.FileSet, diags []*Diagnostic) error
}

// PlainReporter writes one line per diagnostic: "sev[code]: message
// (file:line:col)". It has no external dependencies. The rosa command does
// not use it; it renders through internal/diagfmt with or without color.
type PlainReporter struct {
	W io.Writer
}

func (p PlainReporter) Report(fset *source.FileSet, diags []*Diagnostic) error {
	for _, d := range diags {
		loc := fset.String(d.PrimarySpan())
		if d.Code != "" {
			if _, err := fmt.Fprintf(p.W, "%s[%s]: %s (%s)\n", d.Severity, d.Code, d.Message, loc); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(p.W, "%s: %s (%s)\n", d.Severity, d.Message, loc); err != nil {
			return err
		}
	}
	return nil
}
