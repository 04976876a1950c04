package diag

import (
	"fmt"

	"rosa/internal/source"
)

// Code identifies a diagnostic's rule, e.g. "E0010". Codes are stable
// across releases so tooling and golden tests can key off them.
type Code string

// Label attaches a message to a span within a Diagnostic's report.
type Label struct {
	Span    source.Span
	Message string
}

// Diagnostic is one compiler message: a severity, a headline, a non-empty
// set of primary spans pointing at the offending source, and optional
// secondary labels and notes giving context.
type Diagnostic struct {
	Severity  Severity
	Code      Code
	Message   string
	Primary   []Label
	Secondary []Label
	Notes     []string
}

// New builds a Diagnostic with a single primary label. Every Diagnostic
// must carry at least one primary span; constructors that cannot supply
// one should not exist.
func New(sev Severity, code Code, message string, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Primary:  []Label{{Span: primary, Message: ""}},
	}
}

// WithLabel sets the message of the diagnostic's primary label, replacing
// any earlier one.
func (d *Diagnostic) WithLabel(msg string) *Diagnostic {
	if len(d.Primary) > 0 {
		d.Primary[0].Message = msg
	}
	return d
}

// WithSecondary attaches an additional labeled span, e.g. pointing at a
// prior declaration in a shadowing error.
func (d *Diagnostic) WithSecondary(span source.Span, msg string) *Diagnostic {
	d.Secondary = append(d.Secondary, Label{Span: span, Message: msg})
	return d
}

// WithNote appends a free-form note line printed after the source snippet.
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// PrimarySpan returns the diagnostic's first primary span, used for sorting
// and for the "file:line:col" prefix.
func (d *Diagnostic) PrimarySpan() source.Span {
	if len(d.Primary) == 0 {
		return source.ZERO
	}
	return d.Primary[0].Span
}

// Errorf builds an error-severity diagnostic with a formatted message.
func Errorf(code Code, span source.Span, format string, args ...any) *Diagnostic {
	return New(SeverityError, code, fmt.Sprintf(format, args...), span)
}

// Warnf builds a warning-severity diagnostic with a formatted message.
func Warnf(code Code, span source.Span, format string, args ...any) *Diagnostic {
	return New(SeverityWarning, code, fmt.Sprintf(format, args...), span)
}
