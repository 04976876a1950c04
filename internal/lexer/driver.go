package lexer

import (
	"rosa/internal/diag"
	"rosa/internal/source"
	"rosa/internal/token"
)

// Lex tokenizes the whole of f, running to EndOfFile regardless of errors
// encountered along the way. Ok is returned when no diagnostics were
// recorded; Fuzzy when the token stream is usable but imperfect (e.g. an
// unknown escape sequence substituted its literal character). Lex never
// returns Err: by construction the lexer always makes forward progress and
// terminates with EndOfFile.
func Lex(f *source.File) diag.Result[[]token.Token] {
	l := New(f)
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == token.EndOfFile {
			break
		}
	}
	if len(l.diags) == 0 {
		return diag.Ok(toks)
	}
	return diag.Fuzzy(toks, l.diags)
}
