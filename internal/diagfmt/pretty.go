// Package diagfmt renders internal/diag diagnostics as human-readable
// terminal output: a colored header line followed by a source snippet
// with a caret/tilde underline under the offending span.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rosa/internal/diag"
	"rosa/internal/source"
)

// Options controls Pretty's output.
type Options struct {
	// Color enables ANSI coloring; callers typically set this from
	// golang.org/x/term.IsTerminal on the destination file descriptor.
	Color bool
	// Context is how many lines of surrounding source to show above and
	// below the primary line; values below 1 are treated as 1.
	Context int
	// ShowNotes prints each diagnostic's free-form Notes after its
	// snippet.
	ShowNotes bool
}

const tabWidth = 8

// Pretty writes every diagnostic in diags to w, in the order given; sort
// with Bag.All beforehand for a stable file-order report.
func Pretty(w io.Writer, fset *source.FileSet, diags []*diag.Diagnostic, opts Options) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	noteColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()
	color.NoColor = !opts.Color

	ctx := opts.Context
	if ctx <= 0 {
		ctx = 1
	}

	for idx, d := range diags {
		if idx > 0 {
			fmt.Fprintln(w)
		}
		printDiagnostic(w, fset, d, ctx, opts, severityColor(d.Severity, errorColor, warningColor, noteColor),
			pathColor, codeColor, lineNumColor, underlineColor, noteColor)
	}
}

func severityColor(sev diag.Severity, errC, warnC, noteC *color.Color) *color.Color {
	switch sev {
	case diag.SeverityError:
		return errC
	case diag.SeverityWarning:
		return warnC
	default:
		return noteC
	}
}

func printDiagnostic(w io.Writer, fset *source.FileSet, d *diag.Diagnostic, ctx int, opts Options,
	sevColor, pathColor, codeColor, lineNumColor, underlineColor, noteColor *color.Color) {
	span := d.PrimarySpan()
	f := fset.File(span.File)
	if f == nil {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d.Message)
		return
	}
	start := f.LineCol(span.Lo)
	end := f.LineCol(span.Hi)

	fmt.Fprintf(w, "%s:%d:%d: %s", pathColor.Sprint(f.Path()), start.Line, start.Col, sevColor.Sprint(d.Severity.String()))
	if d.Code != "" {
		fmt.Fprintf(w, " %s", codeColor.Sprint(string(d.Code)))
	}
	fmt.Fprintf(w, ": %s\n", d.Message)

	total := uint32(f.LineCount())
	startLine := start.Line
	if startLine > uint32(ctx) {
		startLine -= uint32(ctx)
	} else {
		startLine = 1
	}
	endLine := start.Line + uint32(ctx)
	if endLine > total {
		endLine = total
	}
	if startLine > 1 {
		fmt.Fprintln(w, "...")
	}

	lineNumWidth := len(fmt.Sprintf("%d", endLine))
	if lineNumWidth < 3 {
		lineNumWidth = 3
	}

	for line := startLine; line <= endLine; line++ {
		text := string(f.LineText(line))
		lineNumStr := fmt.Sprintf("%*d", lineNumWidth, line)
		gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(lineNumStr))
		gutterLen := lineNumWidth + 3
		io.WriteString(w, gutter)
		io.WriteString(w, text)
		io.WriteString(w, "\n")

		if line == start.Line {
			startCol := start.Col
			endCol := end.Col
			if end.Line > start.Line {
				endCol = uint32(len(text)) + 1
			}
			visualStart := visualWidthUpTo(text, startCol)
			visualEnd := visualWidthUpTo(text, endCol)

			var underline strings.Builder
			for i := 0; i < gutterLen; i++ {
				underline.WriteByte(' ')
			}
			for i := 0; i < visualStart; i++ {
				underline.WriteByte(' ')
			}
			spanLen := visualEnd - visualStart
			if spanLen <= 0 {
				underline.WriteByte('^')
			} else {
				for i := 0; i < spanLen; i++ {
					if i == spanLen-1 {
						underline.WriteByte('^')
					} else {
						underline.WriteByte('~')
					}
				}
			}
			fmt.Fprintln(w, underlineColor.Sprint(underline.String()))
		}
	}
	if endLine < total {
		fmt.Fprintln(w, "...")
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  %s: %s\n", noteColor.Sprint("note"), note)
		}
	}
}

// visualWidthUpTo computes the rendered column width of s up to the given
// 1-based column as reported by source.File.LineCol (one column per rune),
// expanding tabs to the next tabWidth stop and counting wide Unicode
// characters (e.g. CJK) as two columns via go-runewidth, so the underline
// lines up under multi-byte text.
func visualWidthUpTo(s string, col uint32) int {
	if col <= 1 {
		return 0
	}
	runeIdx := 0
	visual := 0
	for _, r := range s {
		if runeIdx >= int(col-1) {
			break
		}
		if r == '\t' {
			visual = (visual + tabWidth) / tabWidth * tabWidth
		} else {
			visual += runewidth.RuneWidth(r)
		}
		runeIdx++
	}
	return visual
}
