package diag

import (
	"testing"

	"rosa/internal/source"
)

func span(lo, hi source.BytePos) source.Span {
	return source.Span{File: 0, Lo: lo, Hi: hi}
}

func TestBagOrdersByPrimarySpan(t *testing.T) {
	b := NewBag()
	b.Add(Errorf("E0001", span(10, 11), "second"))
	b.Add(Errorf("E0002", span(0, 1), "first"))
	all := b.All()
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Message != "first" || all[1].Message != "second" {
		t.Fatalf("order = [%q %q], want [first second]", all[0].Message, all[1].Message)
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag()
	if b.HasErrors() {
		t.Fatal("empty bag should not report errors")
	}
	b.Add(Warnf("W0001", span(0, 1), "just a warning"))
	if b.HasErrors() {
		t.Fatal("a bag with only warnings should not report errors")
	}
	b.Add(Errorf("E0001", span(0, 1), "boom"))
	if !b.HasErrors() {
		t.Fatal("a bag with an error diagnostic should report errors")
	}
}

func TestBagAddNilIsNoop(t *testing.T) {
	b := NewBag()
	b.Add(nil)
	if b.Len() != 0 {
		t.Fatalf("Len = %d, want 0", b.Len())
	}
}

func TestResultStates(t *testing.T) {
	ok := Ok(5)
	if !ok.IsOk() || ok.IsFuzzy() || ok.IsErr() {
		t.Fatal("Ok result reported the wrong state")
	}
	v, present := ok.Value()
	if !present || v != 5 {
		t.Fatalf("Ok.Value() = (%d, %v), want (5, true)", v, present)
	}

	fuzzy := Fuzzy(7, []*Diagnostic{Warnf("W0001", span(0, 1), "hm")})
	if !fuzzy.IsFuzzy() {
		t.Fatal("expected IsFuzzy")
	}
	v, present = fuzzy.Value()
	if !present || v != 7 {
		t.Fatalf("Fuzzy.Value() = (%d, %v), want (7, true)", v, present)
	}

	failed := Err[int]([]*Diagnostic{Errorf("E0001", span(0, 1), "nope")})
	if !failed.IsErr() {
		t.Fatal("expected IsErr")
	}
	if _, present := failed.Value(); present {
		t.Fatal("Err.Value() should report absent")
	}
}

func TestDiagnosticLabelsAndNotes(t *testing.T) {
	d := Errorf("E0099", span(3, 5), "mismatched type").
		WithLabel("expected i32").
		WithSecondary(span(0, 1), "declared here").
		WithNote("try adding a cast")
	if d.Primary[0].Message != "expected i32" {
		t.Errorf("primary label = %q", d.Primary[0].Message)
	}
	if len(d.Secondary) != 1 || d.Secondary[0].Message != "declared here" {
		t.Errorf("secondary = %+v", d.Secondary)
	}
	if len(d.Notes) != 1 || d.Notes[0] != "try adding a cast" {
		t.Errorf("notes = %v", d.Notes)
	}
	if d.PrimarySpan() != span(3, 5) {
		t.Errorf("PrimarySpan = %+v", d.PrimarySpan())
	}
}

func TestSeverityFatal(t *testing.T) {
	if !SeverityError.Fatal() {
		t.Error("SeverityError should be fatal")
	}
	if SeverityWarning.Fatal() || SeverityNote.Fatal() || SeverityHelp.Fatal() {
		t.Error("only SeverityError should be fatal")
	}
}
