package lexer

import (
	"testing"

	"rosa/internal/source"
	"rosa/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *Lexer) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.AddFile("test.rosa", []byte(src))
	l := New(f)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EndOfFile {
			break
		}
	}
	return toks, l
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexIdentifiersAndKeywords(t *testing.T) {
	toks, l := lexAll(t, "fun main val x")
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", l.Diagnostics())
	}
	want := []token.Kind{token.Keyword, token.Ident, token.Keyword, token.Ident, token.EndOfFile}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if toks[0].Keyword != token.KwFun {
		t.Errorf("toks[0].Keyword = %v, want KwFun", toks[0].Keyword)
	}
	if toks[2].Keyword != token.KwVal {
		t.Errorf("toks[2].Keyword = %v, want KwVal", toks[2].Keyword)
	}
}

func TestLexCommentsAreSkipped(t *testing.T) {
	toks, l := lexAll(t, "x # this is a comment\ny")
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", l.Diagnostics())
	}
	want := []token.Kind{token.Ident, token.NewLine, token.Ident, token.EndOfFile}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestLexNumbers(t *testing.T) {
	toks, l := lexAll(t, "0 42 1_000")
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", l.Diagnostics())
	}
	want := []uint64{0, 42, 1000}
	var got []uint64
	for _, tk := range toks {
		if tk.Kind == token.Int {
			got = append(got, tk.IntVal)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d ints, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("int[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLexIntegerOverflowIsDiagnosed(t *testing.T) {
	_, l := lexAll(t, "99999999999999999999")
	if len(l.Diagnostics()) == 0 {
		t.Fatal("expected a diagnostic for the overflowing literal")
	}
}

// A digit-led run that contains a letter is a single identifier token, not
// an integer followed by an identifier and not an error: word scanning
// classifies the whole maximal run only after it has been collected.
func TestLexDigitLedWordIsOneIdentifier(t *testing.T) {
	toks, l := lexAll(t, "123abc")
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", l.Diagnostics())
	}
	if len(toks) != 2 || toks[0].Kind != token.Ident || toks[1].Kind != token.EndOfFile {
		t.Fatalf("kinds = %v, want [Ident EndOfFile]", kinds(toks))
	}
	if toks[0].Ident != "123abc" {
		t.Errorf("Ident = %q, want \"123abc\"", toks[0].Ident)
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, l := lexAll(t, `"a\tb\n\"c\""`)
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", l.Diagnostics())
	}
	if toks[0].Kind != token.Str {
		t.Fatalf("kind = %v, want Str", toks[0].Kind)
	}
	want := "a\tb\n\"c\""
	if toks[0].StrVal != want {
		t.Errorf("StrVal = %q, want %q", toks[0].StrVal, want)
	}
}

func TestLexUnknownEscapeIsFuzzy(t *testing.T) {
	_, l := lexAll(t, `"a\qb"`)
	if len(l.Diagnostics()) == 0 {
		t.Fatalf("expected a diagnostic for the unknown escape")
	}
}

func TestLexUnexpectedCharacterRecovers(t *testing.T) {
	toks, l := lexAll(t, "x @ y")
	if len(l.Diagnostics()) == 0 {
		t.Fatalf("expected a diagnostic for '@'")
	}
	want := []token.Kind{token.Ident, token.Ident, token.EndOfFile}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestLexPunctuation(t *testing.T) {
	toks, l := lexAll(t, "-> <= >= == != << >>")
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", l.Diagnostics())
	}
	want := []token.PunctID{token.Arrow, token.Le, token.Ge, token.EqEq, token.NotEq, token.Shl, token.Shr}
	var got []token.PunctID
	for _, tk := range toks {
		if tk.Kind == token.Punct {
			got = append(got, tk.Punct)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d puncts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("punct[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func kindsEqual(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
