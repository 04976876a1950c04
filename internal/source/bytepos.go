package source

// BytePos is a non-negative byte offset into a source buffer.
type BytePos uint32

// LineCol is a 1-based human-readable position within a source file.
type LineCol struct {
	Line uint32
	Col  uint32
}
