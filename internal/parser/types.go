package parser

import (
	"rosa/internal/ast"
	"rosa/internal/source"
	"rosa/internal/token"
)

func (p *Parser) parseType() ast.Type {
	if p.atKeyword(token.KwFun) {
		return p.parseFnPtrType()
	}
	name, span, ok := p.expectIdent()
	if !ok {
		return &ast.PrimitiveType{Kind: ast.PrimInvalid, Pos: span}
	}
	prim, ok := ast.LookupPrimitive(name)
	if !ok {
		p.errorf(span, "E0130", "unknown type %q", name)
		prim = ast.PrimInvalid
	}
	return &ast.PrimitiveType{Kind: prim, Pos: span}
}

func (p *Parser) parseFnPtrType() ast.Type {
	start := p.advance() // "fun"
	p.expectPunct(token.LParen)
	var params []ast.Type
	if !p.atPunct(token.RParen) {
		params = append(params, p.parseType())
		for p.atPunct(token.Comma) {
			p.advance()
			params = append(params, p.parseType())
		}
	}
	close, _ := p.expectPunct(token.RParen)
	end := close.Span
	var result ast.Type
	if p.atPunct(token.Arrow) {
		p.advance()
		result = p.parseType()
		end = result.Span()
	}
	return &ast.FnPtrType{
		Params: params,
		Result: result,
		Pos:    source.Span{File: start.Span.File, Lo: start.Span.Lo, Hi: end.Hi},
	}
}
