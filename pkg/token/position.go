package token

import "unicode/utf8"

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in characters
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Locate converts a byte offset in src into a line and column position.
// Offsets past the end of src are clamped to len(src).
func Locate(src string, offset int) Position {
	if offset < 0 {
		return Position{}
	}
	if offset > len(src) {
		offset = len(src)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(src[lineStart:offset]) + 1,
		Offset: offset,
	}
}

// Span represents a byte range in source code.
type Span struct {
	Start int
	End   int
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}
