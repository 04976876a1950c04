package source

// FileID identifies a file registered with a FileSet.
type FileID uint32

// Span is a half-open [Lo, Hi) byte range within a single file. A Span with
// Lo == Hi is empty; ZERO is the canonical empty span used for synthesized
// nodes that have no real source location.
type Span struct {
	File FileID
	Lo   BytePos
	Hi   BytePos
}

// ZERO is the empty span at the start of file 0.
var ZERO = Span{}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.Lo == s.Hi }

// Len returns the number of bytes the span covers.
func (s Span) Len() BytePos {
	if s.Hi < s.Lo {
		return 0
	}
	return s.Hi - s.Lo
}

// Cover returns the smallest span that contains both s and other. The
// result's File is taken from s; callers must not mix spans from different
// files.
func (s Span) Cover(other Span) Span {
	lo, hi := s.Lo, s.Hi
	if other.Lo < lo {
		lo = other.Lo
	}
	if other.Hi > hi {
		hi = other.Hi
	}
	return Span{File: s.File, Lo: lo, Hi: hi}
}

// Contains reports whether pos falls within the half-open span.
func (s Span) Contains(pos BytePos) bool {
	return pos >= s.Lo && pos < s.Hi
}
