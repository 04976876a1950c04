package parser

import (
	"rosa/internal/ast"
	"rosa/internal/source"
	"rosa/internal/token"
)

func (p *Parser) columnOf(t token.Token) int {
	return int(p.file.LineCol(t.Span.Lo).Col)
}

// parseBlock reads a block of items after the token that introduces it
// (e.g. the "=" of a function body, or "if cond"). If the next token is not
// a NewLine, the block is a single-line block whose content is exactly one
// item. Otherwise it is an indentation-delimited block: it must start with
// a NewLine followed by a line indented further than the enclosing block;
// every subsequent item must sit at exactly that column, and the block ends
// at the first line indented less than that column, without consuming that
// line's tokens. A line indented further is reported and skipped.
func parseBlock[N ast.Node](p *Parser, parseItem func() N) (ast.Block[N], bool) {
	if !p.at(token.NewLine) {
		item := parseItem()
		return ast.NewBlock([]N{item}, item.Span()), true
	}
	startSpan := p.peek().Span
	p.advance()

	if p.at(token.EndOfFile) {
		p.errorf(p.peek().Span, "E0111", "expected an indented block, found end of file")
		var zero ast.Block[N]
		return zero, false
	}

	col := p.columnOf(p.peek())
	top := p.indent[len(p.indent)-1]
	if col <= top {
		p.errorf(p.peek().Span, "E0112", "expected an indented block")
		var zero ast.Block[N]
		return zero, false
	}
	p.indent = append(p.indent, col)
	defer func() { p.indent = p.indent[:len(p.indent)-1] }()

	var items []N
	lastSpan := startSpan
	for {
		if p.at(token.EndOfFile) {
			break
		}
		curCol := p.columnOf(p.peek())
		if curCol < col {
			break
		}
		if curCol > col {
			p.errorf(p.peek().Span, "E0113", "unexpected indentation")
			p.resyncToLineEnd()
			if p.at(token.NewLine) {
				p.advance()
			}
			continue
		}
		item := parseItem()
		items = append(items, item)
		lastSpan = item.Span()
		if p.at(token.NewLine) {
			p.advance()
			continue
		}
		if p.at(token.EndOfFile) {
			break
		}
	}

	if len(items) == 0 {
		p.errorf(startSpan, "E0114", "an indented block must contain at least one item")
		var zero ast.Block[N]
		return zero, false
	}
	span := source.Span{File: startSpan.File, Lo: startSpan.Lo, Hi: lastSpan.Hi}
	return ast.NewBlock(items, span), true
}
