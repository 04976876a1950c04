package diagfmt

import (
	"strings"
	"testing"

	"rosa/internal/diag"
	"rosa/internal/source"
)

func TestPrettyRendersHeaderAndSnippet(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddFile("main.rosa", []byte("fun main() =\n\treturn bad\n"))
	span := f.Span(21, 24) // "bad"
	d := diag.Errorf("E0210", span, "unresolved name %q", "bad")

	var buf strings.Builder
	Pretty(&buf, fs, []*diag.Diagnostic{d}, Options{Color: false, Context: 1})
	out := buf.String()

	if !strings.Contains(out, "main.rosa:2:") {
		t.Fatalf("output missing file:line prefix: %q", out)
	}
	if !strings.Contains(out, "E0210") {
		t.Fatalf("output missing diagnostic code: %q", out)
	}
	if !strings.Contains(out, `unresolved name "bad"`) {
		t.Fatalf("output missing message: %q", out)
	}
	if !strings.Contains(out, "return bad") {
		t.Fatalf("output missing source line: %q", out)
	}
}

func TestPrettyShowsNotesWhenEnabled(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddFile("main.rosa", []byte("x\n"))
	d := diag.Errorf("E0001", f.Span(0, 1), "oops").WithNote("try this instead")

	var buf strings.Builder
	Pretty(&buf, fs, []*diag.Diagnostic{d}, Options{ShowNotes: true, Context: 1})
	if !strings.Contains(buf.String(), "try this instead") {
		t.Fatalf("expected note in output: %q", buf.String())
	}
}

func TestPrettyHandlesUnknownFile(t *testing.T) {
	fs := source.NewFileSet()
	d := diag.Errorf("E0001", source.Span{File: 99, Lo: 0, Hi: 1}, "mystery")
	var buf strings.Builder
	Pretty(&buf, fs, []*diag.Diagnostic{d}, Options{Context: 1})
	if !strings.Contains(buf.String(), "mystery") {
		t.Fatalf("expected fallback rendering to include the message: %q", buf.String())
	}
}
