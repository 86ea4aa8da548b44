package lexer

import "github.com/syntaxkit/cst/text"

// Input is a text window over the full source with a movable start
// offset: a cursor. Lex production functions consult Remaining (the
// prefix of source not yet consumed) to decide what to match, then call
// Chomp to commit a match and advance the cursor. Grounded on the
// original's Input.chomp/cursor/set_cursor, simplified to operate in
// bytes rather than code points — every range in this toolkit is a byte
// range (spec.md §3).
type Input struct {
	src    string
	cursor text.Size
}

// NewInput returns an Input positioned at the start of src.
func NewInput(src string) *Input {
	return &Input{src: src}
}

// Cursor returns the current start offset of the window.
func (in *Input) Cursor() text.Size {
	return in.cursor
}

// SetCursor moves the window's start offset. Used to restore a saved
// position after a non-consuming peek.
func (in *Input) SetCursor(c text.Size) {
	in.cursor = c
}

// AtEOF reports whether the cursor has reached the end of the source.
func (in *Input) AtEOF() bool {
	return in.cursor.Int() >= len(in.src)
}

// Remaining returns the unconsumed prefix of source, i.e. the window a
// Lex production function matches against.
func (in *Input) Remaining() string {
	return in.src[in.cursor.Int():]
}

// Source returns the entire source text, independent of the cursor.
func (in *Input) Source() string {
	return in.src
}

// Chomp consumes n bytes from the front of Remaining, advances the
// cursor past them, and returns the consumed text along with its
// absolute range. n is clamped to the bytes actually remaining.
func (in *Input) Chomp(n int) (string, text.Range) {
	start := in.cursor
	end := start + text.Size(n)
	if max := text.SizeOf(in.src); end > max {
		end = max
	}
	value := in.src[start.Int():end.Int()]
	in.cursor = end
	return value, text.NewRange(start, end)
}

// StrForRange returns the source substring for an absolute range.
func (in *Input) StrForRange(r text.Range) string {
	return in.src[r.Start.Int():r.End.Int()]
}
