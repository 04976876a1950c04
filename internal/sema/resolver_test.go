package sema

import (
	"testing"

	"rosa/internal/ast"
	"rosa/internal/parser"
	"rosa/internal/source"
)

func parseOK(t *testing.T, src string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.AddFile("test.rosa", []byte(src))
	result := parser.ParseFile(f)
	file, ok := result.Value()
	if !ok {
		t.Fatalf("parse failed: %v", result.Diagnostics())
	}
	return file
}

func TestResolveCleanProgram(t *testing.T) {
	file := parseOK(t, "fun main() -> i32 =\n\tval x = 1\n\treturn x\n")
	r := NewResolver()
	diags := r.Resolve(file)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
}

func TestResolveUnresolvedName(t *testing.T) {
	file := parseOK(t, "fun main() -> i32 =\n\treturn y\n")
	r := NewResolver()
	diags := r.Resolve(file)
	if len(diags) != 1 || diags[0].Code != "E0210" {
		t.Fatalf("diags = %v, want a single E0210", diags)
	}
}

func TestResolveDuplicateFunction(t *testing.T) {
	file := parseOK(t, "fun f() -> i32 =\n\treturn 0\nfun f() -> i32 =\n\treturn 1\n")
	r := NewResolver()
	diags := r.Resolve(file)
	if len(diags) != 1 || diags[0].Code != "E0200" {
		t.Fatalf("diags = %v, want a single E0200", diags)
	}
}

func TestResolveShadowedLocal(t *testing.T) {
	file := parseOK(t, "fun f() -> i32 =\n\tval x = 1\n\tval x = 2\n\treturn x\n")
	r := NewResolver()
	diags := r.Resolve(file)
	if len(diags) != 1 || diags[0].Code != "E0202" {
		t.Fatalf("diags = %v, want a single E0202", diags)
	}
}

func TestResolveParamsVisibleInBody(t *testing.T) {
	file := parseOK(t, "fun f(x: i32) -> i32 =\n\treturn x\n")
	r := NewResolver()
	diags := r.Resolve(file)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
}

func TestResolvePublicFunctionWarnsButResolvesClean(t *testing.T) {
	file := parseOK(t, "pub fun f() -> i32 =\n\treturn 0\n")
	r := NewResolver()
	diags := r.Resolve(file)
	if len(diags) != 1 || diags[0].Code != "W0100" {
		t.Fatalf("diags = %v, want a single W0100", diags)
	}
	if res := Check(file); !res.IsFuzzy() {
		t.Fatalf("expected IsFuzzy for a warning-only diagnostic set")
	}
}

func TestCheckDriverStates(t *testing.T) {
	clean := parseOK(t, "fun main() -> i32 =\n\treturn 0\n")
	if res := Check(clean); !res.IsOk() {
		t.Fatalf("expected IsOk for a clean program, diags: %v", res.Diagnostics())
	}

	unresolved := parseOK(t, "fun main() -> i32 =\n\treturn z\n")
	if res := Check(unresolved); !res.IsFuzzy() {
		t.Fatalf("expected IsFuzzy for an unresolved name")
	}

	dup := parseOK(t, "fun f() -> i32 =\n\treturn 0\nfun f() -> i32 =\n\treturn 1\n")
	if res := Check(dup); !res.IsErr() {
		t.Fatalf("expected IsErr for a duplicate top-level declaration")
	}
}
