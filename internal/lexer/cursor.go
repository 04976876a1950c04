package lexer

import (
	"unicode/utf8"

	"rosa/internal/source"
)

// Cursor walks a file's bytes one Unicode scalar value at a time. BytePos
// always lands on a rune boundary; invalid UTF-8 is surfaced as
// utf8.RuneError of width 1 so the cursor still advances.
type Cursor struct {
	file *source.File
	data []byte
	pos  source.BytePos
	mark source.BytePos
}

// NewCursor creates a Cursor positioned at the start of f.
func NewCursor(f *source.File) *Cursor {
	return &Cursor{file: f, data: f.Bytes()}
}

// Pos returns the cursor's current byte offset.
func (c *Cursor) Pos() source.BytePos { return c.pos }

// AtEOF reports whether the cursor has consumed the whole file.
func (c *Cursor) AtEOF() bool { return int(c.pos) >= len(c.data) }

// Peek returns the rune at the cursor without consuming it, or utf8.RuneError
// with size 0 at end of file.
func (c *Cursor) Peek() (rune, int) {
	return c.peekAt(c.pos)
}

// Peek2 returns the rune one position after the current one, used to
// disambiguate two-character punctuation like "->" and "<=".
func (c *Cursor) Peek2() (rune, int) {
	_, w := c.peekAt(c.pos)
	return c.peekAt(c.pos + source.BytePos(w))
}

func (c *Cursor) peekAt(at source.BytePos) (rune, int) {
	if int(at) >= len(c.data) {
		return utf8.RuneError, 0
	}
	r, w := utf8.DecodeRune(c.data[at:])
	return r, w
}

// Bump consumes and returns the rune at the cursor, advancing past it.
func (c *Cursor) Bump() (rune, int) {
	r, w := c.Peek()
	c.pos += source.BytePos(w)
	return r, w
}

// Mark records the current position as the start of a span.
func (c *Cursor) Mark() {
	c.mark = c.pos
}

// SpanFrom builds a Span from the last Mark to the current position.
func (c *Cursor) SpanFrom() source.Span {
	return c.file.Span(c.mark, c.pos)
}

// SpanAt builds a zero-width Span at the cursor's current position.
func (c *Cursor) SpanAt() source.Span {
	return c.file.Span(c.pos, c.pos)
}

// Slice returns the raw bytes between from and the current position.
func (c *Cursor) Slice(from source.BytePos) []byte {
	return c.data[from:c.pos]
}

// File returns the file the cursor walks.
func (c *Cursor) File() *source.File { return c.file }
