package lexer

import (
	"unicode"

	"rosa/internal/diag"
	"rosa/internal/source"
	"rosa/internal/token"
)

// Lexer turns one file's bytes into a stream of tokens, one rune of
// lookahead at a time. It never stops at an error: unrecognized input is
// recorded as a diagnostic and skipped so the caller always gets a full,
// EndOfFile-terminated token stream.
type Lexer struct {
	cur      *Cursor
	diags    []*diag.Diagnostic
	atLineStart bool
	done     bool
}

// New creates a Lexer over f.
func New(f *source.File) *Lexer {
	return &Lexer{cur: NewCursor(f), atLineStart: true}
}

// Diagnostics returns every diagnostic recorded so far.
func (l *Lexer) Diagnostics() []*diag.Diagnostic { return l.diags }

func (l *Lexer) errorf(span source.Span, code diag.Code, format string, args ...any) {
	l.diags = append(l.diags, diag.Errorf(code, span, format, args...))
}

func (l *Lexer) fuzzyf(span source.Span, code diag.Code, format string, args ...any) {
	l.diags = append(l.diags, diag.Warnf(code, span, format, args...))
}

// Next returns the next token. Once EndOfFile has been produced, every
// subsequent call returns EndOfFile again at the same position.
func (l *Lexer) Next() token.Token {
	if l.done {
		return l.eof()
	}
	for {
		l.skipSpacesAndComments()
		r, w := l.cur.Peek()
		if w == 0 {
			l.done = true
			return l.eof()
		}
		l.cur.Mark()
		switch {
		case r == '\n':
			l.cur.Bump()
			if l.atLineStart {
				continue
			}
			l.atLineStart = true
			return token.Token{Kind: token.NewLine, Span: l.cur.SpanFrom()}
		case isWordStart(r):
			l.atLineStart = false
			return l.scanWord()
		case r == '"':
			l.atLineStart = false
			return l.scanString()
		case r == '\'':
			l.atLineStart = false
			return l.scanChar()
		default:
			if tok, ok := l.scanPunct(); ok {
				l.atLineStart = false
				return tok
			}
			l.cur.Bump()
			l.errorf(l.cur.SpanFrom(), "E0001", "unexpected character %q", r)
		}
	}
}

func (l *Lexer) eof() token.Token {
	return token.Token{Kind: token.EndOfFile, Span: l.cur.SpanAt()}
}

// skipSpacesAndComments consumes horizontal whitespace and "#" comments.
// It stops at a newline, which Next treats specially.
func (l *Lexer) skipSpacesAndComments() {
	for {
		r, w := l.cur.Peek()
		if w == 0 {
			return
		}
		if r == '#' {
			for {
				r, w := l.cur.Peek()
				if w == 0 || r == '\n' {
					break
				}
				l.cur.Bump()
			}
			continue
		}
		if r == '\n' {
			return
		}
		if isHorizontalSpace(r) {
			l.cur.Bump()
			continue
		}
		return
	}
}

func isHorizontalSpace(r rune) bool {
	return r == ' ' || r == '\t' || (r != '\n' && unicode.IsSpace(r))
}

// isWordStart and isWordCont delimit the single maximal-munch scan that
// covers identifiers, keywords, and integer words alike: a run starting
// with a letter, underscore, or digit and continuing with the same is
// classified only once the whole run has been collected (scanWord).
func isWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r)
}

func isWordCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
