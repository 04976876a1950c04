// Package buflex wraps internal/lexer with fixed lookahead so the parser
// can peek several tokens ahead (e.g. to distinguish "fun" declarations
// from expressions that happen to start with an identifier) without
// re-lexing.
package buflex

import (
	"rosa/internal/diag"
	"rosa/internal/lexer"
	"rosa/internal/token"
)

// DefaultCapacity is the lookahead window used when callers don't need a
// different size.
const DefaultCapacity = 8

// Buffered pulls tokens from an underlying Lexer into a small ring buffer,
// exposing Peek/PeekN/Consume to callers that need multi-token lookahead.
type Buffered struct {
	lx   *lexer.Lexer
	ring []token.Token
}

// New wraps lx with a lookahead ring of the given capacity. A capacity
// below 1 is treated as 1.
func New(lx *lexer.Lexer, capacity int) *Buffered {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffered{lx: lx, ring: make([]token.Token, 0, capacity)}
}

func (b *Buffered) fill(n int) {
	for len(b.ring) <= n {
		b.ring = append(b.ring, b.lx.Next())
	}
}

// Peek returns the next token without consuming it.
func (b *Buffered) Peek() token.Token {
	return b.PeekN(0)
}

// PeekN returns the token n positions ahead of the cursor (0 = next).
func (b *Buffered) PeekN(n int) token.Token {
	b.fill(n)
	return b.ring[n]
}

// Consume returns the next token and advances past it.
func (b *Buffered) Consume() token.Token {
	t := b.Peek()
	b.ring = b.ring[1:]
	return t
}

// Diagnostics returns diagnostics the underlying lexer has recorded so far,
// including ones produced while filling the lookahead buffer.
func (b *Buffered) Diagnostics() []*diag.Diagnostic { return b.lx.Diagnostics() }
