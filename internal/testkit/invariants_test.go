package testkit

import (
	"testing"

	"rosa/internal/parser"
	"rosa/internal/source"
)

func TestCheckSpanInvariantsOnParsedFile(t *testing.T) {
	fs := source.NewFileSet()
	src := "fun main() -> i32 =\n\treturn 0\n\nfun g(x: i32) -> i32 =\n\treturn x\n"
	sf := fs.AddFile("test.rosa", []byte(src))
	result := parser.ParseFile(sf)
	file, ok := result.Value()
	if !ok {
		t.Fatalf("parse failed: %v", result.Diagnostics())
	}
	if err := CheckSpanInvariants(file, sf); err != nil {
		t.Fatalf("CheckSpanInvariants: %v", err)
	}
}

func TestCheckSpanInvariantsRejectsNil(t *testing.T) {
	if err := CheckSpanInvariants(nil, nil); err == nil {
		t.Fatal("expected an error for nil inputs")
	}
}
