package ast

import (
	"testing"

	"rosa/internal/source"
)

func TestNewBlockPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewBlock with no items should panic")
		}
	}()
	NewBlock[Statement](nil, source.ZERO)
}

func TestNewBlockSpan(t *testing.T) {
	items := []Statement{&ReturnStmt{Pos: source.Span{Lo: 3, Hi: 5}}}
	span := source.Span{Lo: 0, Hi: 5}
	b := NewBlock(items, span)
	if b.Span() != span {
		t.Fatalf("Span() = %+v, want %+v", b.Span(), span)
	}
	if len(b.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(b.Items))
	}
}

func TestLookupPrimitive(t *testing.T) {
	p, ok := LookupPrimitive("i32")
	if !ok || p != PrimI32 {
		t.Fatalf("LookupPrimitive(i32) = (%v, %v), want (PrimI32, true)", p, ok)
	}
	if _, ok := LookupPrimitive("not-a-type"); ok {
		t.Fatal("LookupPrimitive should reject unknown names")
	}
}
