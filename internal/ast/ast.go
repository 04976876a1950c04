// Package ast defines Rosa's syntax tree: declarations, statements,
// expressions, and types produced by internal/parser and consumed by
// internal/sema.
package ast

import "rosa/internal/source"

// Node is implemented by every tree element so generic tooling (pretty
// printers, visitors) can ask for a span without a type switch.
type Node interface {
	Span() source.Span
}

// Block is a non-empty ordered sequence of N; the parser builds every
// Block through NewBlock and never builds an empty one. The indentation
// grammar gives every Block a single trailing statement or declaration at
// minimum.
type Block[N Node] struct {
	Items []N
	Pos   source.Span
}

func (b Block[N]) Span() source.Span { return b.Pos }

// NewBlock builds a Block, panicking if items is empty. The parser must
// never call this with no items; an indentation region with nothing in it
// is a parse error caught before construction.
func NewBlock[N Node](items []N, span source.Span) Block[N] {
	if len(items) == 0 {
		panic("ast: empty block")
	}
	return Block[N]{Items: items, Pos: span}
}
