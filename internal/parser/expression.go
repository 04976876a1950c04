package parser

import (
	"rosa/internal/ast"
	"rosa/internal/source"
	"rosa/internal/token"
)

// parseExpr parses an expression binding at least as tightly as minPrec,
// the classic precedence-climbing loop: parse one unary operand, then
// repeatedly fold in binary operators whose precedence meets the
// threshold, recursing with a raised threshold for the right operand so
// equal-precedence operators associate to the left.
func (p *Parser) parseExpr(minPrec int) ast.Expression {
	left := p.parseUnary()
	for {
		t := p.peek()
		if t.Kind != token.Punct {
			break
		}
		info, ok := binOps[t.Punct]
		if !ok || info.prec < minPrec {
			break
		}
		p.advance()
		right := p.parseExpr(info.prec + 1)
		left = &ast.BinaryExpr{
			Op:    info.op,
			Left:  left,
			Right: right,
			Pos:   source.Span{File: left.Span().File, Lo: left.Span().Lo, Hi: right.Span().Hi},
		}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	t := p.peek()
	if t.Kind == token.Punct && (t.Punct == token.Minus || t.Punct == token.Bang) {
		p.advance()
		operand := p.parseExprAtPrec(unaryPrec)
		op := ast.UnNeg
		if t.Punct == token.Bang {
			op = ast.UnNot
		}
		return &ast.UnaryExpr{
			Op:      op,
			Operand: operand,
			Pos:     source.Span{File: t.Span.File, Lo: t.Span.Lo, Hi: operand.Span().Hi},
		}
	}
	return p.parseCallOrPrimary()
}

// parseExprAtPrec is parseUnary's recursive hook for the operand of a
// prefix operator. Called with the unary precedence, which outranks every
// binary operator, it absorbs no binary, so "-a * b" parses as "(-a) * b".
func (p *Parser) parseExprAtPrec(minPrec int) ast.Expression {
	return p.parseExpr(minPrec)
}

func (p *Parser) parseCallOrPrimary() ast.Expression {
	e := p.parsePrimary()
	for p.atPunct(token.LParen) {
		p.advance()
		var args []ast.Expression
		if !p.atPunct(token.RParen) {
			args = append(args, p.parseExpr(0))
			for p.atPunct(token.Comma) {
				p.advance()
				args = append(args, p.parseExpr(0))
			}
		}
		close, _ := p.expectPunct(token.RParen)
		e = &ast.CallExpr{
			Callee: e,
			Args:   args,
			Pos:    source.Span{File: e.Span().File, Lo: e.Span().Lo, Hi: close.Span.Hi},
		}
	}
	return e
}

func (p *Parser) parsePrimary() ast.Expression {
	t := p.peek()
	switch {
	case t.Kind == token.Int:
		p.advance()
		return &ast.IntLiteral{Value: t.IntVal, Pos: t.Span}
	case t.Kind == token.Str:
		p.advance()
		return &ast.StrLiteral{Value: t.StrVal, Pos: t.Span}
	case t.Kind == token.Char:
		p.advance()
		return &ast.CharLiteral{Value: t.ChrVal, Pos: t.Span}
	case t.IsKeyword(token.KwTrue):
		p.advance()
		return &ast.BoolLiteral{Value: true, Pos: t.Span}
	case t.IsKeyword(token.KwFalse):
		p.advance()
		return &ast.BoolLiteral{Value: false, Pos: t.Span}
	case t.Kind == token.Ident:
		p.advance()
		return &ast.Symbol{Name: t.Ident, Pos: t.Span}
	case t.IsPunct(token.LParen):
		p.advance()
		inner := p.parseExpr(0)
		p.expectPunct(token.RParen)
		return inner
	default:
		p.errorf(t.Span, "E0120", "expected an expression, found %s", t.Text())
		p.advance()
		return &ast.IntLiteral{Value: 0, Pos: t.Span}
	}
}
