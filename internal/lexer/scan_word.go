package lexer

import (
	"math"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"rosa/internal/source"
	"rosa/internal/token"
)

// scanWord performs the single maximal-munch scan that covers identifiers,
// keywords, and integer words: a run of letters, digits, and underscores is
// collected first, then classified by whether it contains a letter at all.
// A run with no letters (e.g. "42", "1_000") is an integer literal; one with
// at least one letter (e.g. "x", "fun", "123abc") is a keyword or identifier.
func (l *Lexer) scanWord() token.Token {
	r, _ := l.cur.Peek()
	sawLetter := unicode.IsLetter(r)
	l.cur.Bump()
	for {
		r, w := l.cur.Peek()
		if w == 0 || !isWordCont(r) {
			break
		}
		if unicode.IsLetter(r) {
			sawLetter = true
		}
		l.cur.Bump()
	}
	span := l.cur.SpanFrom()
	raw := l.cur.Slice(span.Lo)
	if !sawLetter {
		return l.scanIntWord(span, raw)
	}

	// Identifiers are compared by their NFC normal form so visually
	// identical names typed with different combining sequences refer to
	// the same binding.
	text := norm.NFC.String(string(raw))
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: token.Keyword, Span: span, Keyword: kw}
	}
	return token.Token{Kind: token.Ident, Span: span, Ident: text}
}

// scanIntWord parses a word already known to contain only digits and
// underscores as a base-10 u64, reporting overflow past the 64-bit range.
func (l *Lexer) scanIntWord(span source.Span, raw []byte) token.Token {
	var value uint64
	overflow := false
	for _, b := range raw {
		if b == '_' {
			continue
		}
		d := uint64(b - '0')
		if value > (math.MaxUint64-d)/10 {
			overflow = true
			continue
		}
		value = value*10 + d
	}
	if overflow {
		l.errorf(span, "E0003", "integer literal overflows 64-bit range")
	}
	return token.Token{Kind: token.Int, Span: span, IntVal: value}
}
