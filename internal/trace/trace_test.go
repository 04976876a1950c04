package trace

import (
	"context"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"": LevelOff, "off": LevelOff, "phase": LevelPhase, "debug": LevelDebug}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("bogus"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNopTracerDiscardsEverything(t *testing.T) {
	span := Begin(Nop, ScopeVM, "run", 0)
	if span != nil {
		t.Fatal("Begin on the Nop tracer should return nil")
	}
	span.End("detail") // must not panic
}

func TestTextTracerEmitsBeginAndEnd(t *testing.T) {
	var buf strings.Builder
	tr := NewTextTracer(&buf, LevelPhase)
	span := Begin(tr, ScopeVM, "run", 0)
	if span == nil {
		t.Fatal("Begin should return a live span when tracing is enabled")
	}
	span.End("ok")
	out := buf.String()
	if !strings.Contains(out, "begin run") {
		t.Errorf("missing begin event: %q", out)
	}
	if !strings.Contains(out, "end run") || !strings.Contains(out, "ok") {
		t.Errorf("missing end event with detail: %q", out)
	}
}

func TestNewTextTracerOffLevelReturnsNop(t *testing.T) {
	var buf strings.Builder
	tr := NewTextTracer(&buf, LevelOff)
	if tr != Nop {
		t.Fatal("NewTextTracer with LevelOff should return the Nop tracer")
	}
}

func TestContextRoundTrip(t *testing.T) {
	if got := FromContext(context.Background()); got != Nop {
		t.Fatal("FromContext on a bare context should yield Nop")
	}
	var buf strings.Builder
	tr := NewTextTracer(&buf, LevelDebug)
	ctx := WithTracer(context.Background(), tr)
	if got := FromContext(ctx); got != tr {
		t.Fatal("FromContext should return the attached tracer")
	}
}

func TestSpanIDIsMonotonic(t *testing.T) {
	a := NextSpanID()
	b := NextSpanID()
	if b <= a {
		t.Fatalf("NextSpanID not monotonic: %d then %d", a, b)
	}
}
