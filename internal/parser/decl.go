package parser

import (
	"rosa/internal/ast"
	"rosa/internal/source"
	"rosa/internal/token"
)

// parseDecl parses one top-level declaration. When the line does not start
// with "fun" (optionally after "pub") it reports a diagnostic, resyncs to
// the next line, and returns nil so ParseFile skips it without aborting the
// whole file. Errors later in a declaration are reported and a FuncDecl is
// still returned.
func (p *Parser) parseDecl() ast.Declaration {
	start := p.peek().Span
	public := false
	if p.atKeyword(token.KwPub) {
		p.advance()
		public = true
	}
	if !p.atKeyword(token.KwFun) {
		p.errorf(p.peek().Span, "E0140", "expected a declaration, found %s", p.peek().Text())
		p.resyncToLineEnd()
		if p.at(token.NewLine) {
			p.advance()
		}
		return nil
	}
	p.advance() // "fun"
	name, _, _ := p.expectIdent()
	p.expectPunct(token.LParen)
	var params []ast.Param
	if !p.atPunct(token.RParen) {
		params = append(params, p.parseParam())
		for p.atPunct(token.Comma) {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expectPunct(token.RParen)
	var result ast.Type
	if p.atPunct(token.Arrow) {
		p.advance()
		result = p.parseType()
	}
	p.expectPunct(token.Assign)
	body, ok := parseBlock[ast.Statement](p, p.parseStmt)
	end := p.peek().Span
	if ok {
		end = body.Span()
	}
	return &ast.FuncDecl{
		Public: public,
		Name:   name,
		Params: params,
		Result: result,
		Body:   body,
		Pos:    source.Span{File: start.File, Lo: start.Lo, Hi: end.Hi},
	}
}

func (p *Parser) parseParam() ast.Param {
	name, span, _ := p.expectIdent()
	p.expectPunct(token.Colon)
	typ := p.parseType()
	return ast.Param{Name: name, Type: typ, Pos: source.Span{File: span.File, Lo: span.Lo, Hi: typ.Span().Hi}}
}
