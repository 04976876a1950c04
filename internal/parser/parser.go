// Package parser builds an internal/ast tree from a token stream using
// recursive descent for declarations and statements, precedence climbing
// for expressions, and an explicit indent stack for Rosa's
// indentation-delimited blocks.
package parser

import (
	"rosa/internal/ast"
	"rosa/internal/buflex"
	"rosa/internal/diag"
	"rosa/internal/lexer"
	"rosa/internal/source"
	"rosa/internal/token"
)

// Parser holds the mutable state of one parse. It is not safe for
// concurrent or repeated use; construct a fresh one per file.
type Parser struct {
	file *source.File
	toks *buflex.Buffered
	diags []*diag.Diagnostic

	// indent is the stack of column positions (1-based) of the blocks
	// currently open, seeded with 1 for the implicit top-level block: column
	// 1 is the leftmost possible column, so nothing can indent further than
	// it without occupying at least one column of whitespace.
	indent []int
}

// New creates a Parser over f's token stream.
func New(f *source.File) *Parser {
	lx := lexer.New(f)
	return &Parser{
		file:  f,
		toks:  buflex.New(lx, buflex.DefaultCapacity),
		indent: []int{1},
	}
}

// ParseFile parses a complete file as a sequence of declarations,
// returning Ok if clean, Fuzzy if the tree is usable despite diagnostics,
// and Err if no declaration could be recovered at all.
func ParseFile(f *source.File) diag.Result[*ast.File] {
	p := New(f)
	start := p.peek().Span
	var decls []ast.Declaration
	p.skipBlankLines()
	for !p.at(token.EndOfFile) {
		d := p.parseDecl()
		if d != nil {
			decls = append(decls, d)
		}
		p.skipBlankLines()
	}
	p.diags = append(p.diags, p.toks.Diagnostics()...)
	span := f.Span(start.Lo, p.peek().Span.Hi)
	file := &ast.File{Decls: decls, Pos: span}
	switch {
	case len(decls) == 0 && len(p.diags) > 0:
		return diag.Err[*ast.File](p.diags)
	case len(p.diags) > 0:
		return diag.Fuzzy(file, p.diags)
	default:
		return diag.Ok(file)
	}
}

func (p *Parser) peek() token.Token      { return p.toks.Peek() }
func (p *Parser) peekN(n int) token.Token { return p.toks.PeekN(n) }
func (p *Parser) advance() token.Token   { return p.toks.Consume() }

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) atKeyword(kw token.KeywordID) bool {
	t := p.peek()
	return t.Kind == token.Keyword && t.Keyword == kw
}

func (p *Parser) atPunct(pc token.PunctID) bool {
	t := p.peek()
	return t.Kind == token.Punct && t.Punct == pc
}

// skipBlankLines consumes any run of NewLine tokens at top level, where
// blank lines between declarations carry no meaning.
func (p *Parser) skipBlankLines() {
	for p.at(token.NewLine) {
		p.advance()
	}
}

func (p *Parser) errorf(span source.Span, code diag.Code, format string, args ...any) {
	p.diags = append(p.diags, diag.Errorf(code, span, format, args...))
}

// expectPunct consumes pc or records a diagnostic and returns the current
// token unconsumed.
func (p *Parser) expectPunct(pc token.PunctID) (token.Token, bool) {
	if p.atPunct(pc) {
		return p.advance(), true
	}
	p.errorf(p.peek().Span, "E0100", "expected %q, found %s", pc.String(), p.peek().Text())
	return p.peek(), false
}

func (p *Parser) expectKeyword(kw token.KeywordID) (token.Token, bool) {
	if p.atKeyword(kw) {
		return p.advance(), true
	}
	p.errorf(p.peek().Span, "E0101", "expected keyword %q, found %s", kw.String(), p.peek().Text())
	return p.peek(), false
}

func (p *Parser) expectIdent() (string, source.Span, bool) {
	if p.at(token.Ident) {
		t := p.advance()
		return t.Ident, t.Span, true
	}
	p.errorf(p.peek().Span, "E0102", "expected identifier, found %s", p.peek().Text())
	return "", p.peek().Span, false
}

// resyncToLineEnd skips tokens until a NewLine or EndOfFile is reached,
// used to recover after a malformed declaration or statement.
func (p *Parser) resyncToLineEnd() {
	for !p.at(token.NewLine) && !p.at(token.EndOfFile) {
		p.advance()
	}
}
