package parser

import (
	"rosa/internal/ast"
	"rosa/internal/source"
	"rosa/internal/token"
)

func (p *Parser) parseStmt() ast.Statement {
	switch {
	case p.atKeyword(token.KwReturn):
		return p.parseReturnStmt()
	case p.atKeyword(token.KwIf):
		return p.parseIfStmt()
	case p.atKeyword(token.KwVal) || p.atKeyword(token.KwVar):
		return p.parseLetStmt()
	default:
		start := p.peek().Span
		e := p.parseExpr(0)
		return &ast.ExprStmt{Expr: e, Pos: source.Span{File: start.File, Lo: start.Lo, Hi: e.Span().Hi}}
	}
}

func (p *Parser) parseReturnStmt() ast.Statement {
	kw := p.advance()
	if p.at(token.NewLine) || p.at(token.EndOfFile) {
		return &ast.ReturnStmt{Pos: kw.Span}
	}
	val := p.parseExpr(0)
	return &ast.ReturnStmt{Value: val, Pos: source.Span{File: kw.Span.File, Lo: kw.Span.Lo, Hi: val.Span().Hi}}
}

func (p *Parser) parseIfStmt() ast.Statement {
	kw := p.advance()
	cond := p.parseExpr(0)
	then, ok := parseBlock[ast.Statement](p, p.parseStmt)
	end := cond.Span()
	if ok {
		end = then.Span()
	}
	stmt := &ast.IfStmt{Cond: cond, Then: then, Pos: source.Span{File: kw.Span.File, Lo: kw.Span.Lo, Hi: end.Hi}}
	if p.atKeyword(token.KwElse) {
		p.advance()
		elseBlock, ok := parseBlock[ast.Statement](p, p.parseStmt)
		if ok {
			stmt.Else = &elseBlock
			stmt.Pos.Hi = elseBlock.Span().Hi
		}
	}
	return stmt
}

func (p *Parser) parseLetStmt() ast.Statement {
	kw := p.advance()
	mutable := kw.Keyword == token.KwVar
	name, _, _ := p.expectIdent()
	var typ ast.Type
	if p.atPunct(token.Colon) {
		p.advance()
		typ = p.parseType()
	}
	p.expectPunct(token.Assign)
	val := p.parseExpr(0)
	return &ast.LetStmt{
		Name:    name,
		Mutable: mutable,
		Type:    typ,
		Value:   val,
		Pos:     source.Span{File: kw.Span.File, Lo: kw.Span.Lo, Hi: val.Span().Hi},
	}
}
