package source

import "bytes"

// File holds the normalized contents of one source file plus a line-start
// index used to translate BytePos values into LineCol positions.
type File struct {
	id         FileID
	path       string
	data       []byte
	lineStarts []BytePos
}

func newFile(id FileID, path string, data []byte) *File {
	f := &File{id: id, path: path, data: data}
	f.lineStarts = buildLineIndex(data)
	return f
}

// ID returns the file's identifier within its FileSet.
func (f *File) ID() FileID { return f.id }

// Path returns the path the file was registered under.
func (f *File) Path() string { return f.path }

// Bytes returns the file's normalized contents. Callers must not mutate it.
func (f *File) Bytes() []byte { return f.data }

// Len returns the number of bytes in the file.
func (f *File) Len() BytePos { return BytePos(len(f.data)) }

// Slice returns the bytes covered by span. The span must belong to this
// file and lie within bounds.
func (f *File) Slice(span Span) []byte {
	lo, hi := span.Lo, span.Hi
	if hi > f.Len() {
		hi = f.Len()
	}
	if lo > hi {
		lo = hi
	}
	return f.data[lo:hi]
}

// LineCol translates a byte offset into a 1-based line/column pair. Columns
// count UTF-8 bytes converted to runes preceding pos on its line, so
// multi-byte characters count as one column each.
func (f *File) LineCol(pos BytePos) LineCol {
	line := lineIndexFor(f.lineStarts, pos)
	lineStart := f.lineStarts[line]
	col := 1 + countRunes(f.data[lineStart:min(pos, f.Len())])
	return LineCol{Line: uint32(line) + 1, Col: uint32(col)}
}

// LineText returns the full text of the given 1-based line, excluding its
// terminating newline.
func (f *File) LineText(line uint32) []byte {
	idx := int(line) - 1
	if idx < 0 || idx >= len(f.lineStarts) {
		return nil
	}
	start := f.lineStarts[idx]
	var end BytePos
	if idx+1 < len(f.lineStarts) {
		end = f.lineStarts[idx+1]
	} else {
		end = f.Len()
	}
	text := f.data[start:end]
	text = bytes.TrimRight(text, "\r\n")
	return text
}

// LineCount returns the number of lines in the file, counting a trailing
// partial line.
func (f *File) LineCount() int { return len(f.lineStarts) }

func buildLineIndex(data []byte) []BytePos {
	starts := []BytePos{0}
	for i, b := range data {
		if b == '\n' {
			starts = append(starts, BytePos(i+1))
		}
	}
	return starts
}

func lineIndexFor(starts []BytePos, pos BytePos) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func countRunes(b []byte) int {
	n := 0
	for range string(b) {
		n++
	}
	return n
}

func min(a, b BytePos) BytePos {
	if a < b {
		return a
	}
	return b
}
