package token

import "rosa/internal/source"

// Token is one lexeme together with its decoded value and source span.
// Only the fields relevant to Kind are populated; the rest are zero.
type Token struct {
	Kind    Kind
	Span    source.Span
	Keyword KeywordID
	Punct   PunctID
	Ident   string
	IntVal  uint64
	StrVal  string
	ChrVal  rune
}

// IsKeyword reports whether t is the given keyword.
func (t Token) IsKeyword(kw KeywordID) bool {
	return t.Kind == Keyword && t.Keyword == kw
}

// IsPunct reports whether t is the given punctuation.
func (t Token) IsPunct(p PunctID) bool {
	return t.Kind == Punct && t.Punct == p
}

// Text renders a human-readable description of the token for error
// messages, e.g. "keyword 'fun'" or "identifier 'x'".
func (t Token) Text() string {
	switch t.Kind {
	case Keyword:
		return "keyword '" + t.Keyword.String() + "'"
	case Ident:
		return "identifier '" + t.Ident + "'"
	case Punct:
		return "'" + t.Punct.String() + "'"
	case Int:
		return "integer literal"
	case Str:
		return "string literal"
	case Char:
		return "character literal"
	case NewLine:
		return "newline"
	case EndOfFile:
		return "end of file"
	default:
		return "invalid token"
	}
}
