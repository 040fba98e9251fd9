package buffer

import (
	"fmt"
	"strings"
)

type row = *GapBuffer[rune]

// TextBuffer holds multi-line text and a cursor. Rows are kept in a gap
// buffer whose items are per-row rune gap buffers, so typing at one spot and
// splitting lines near the cursor both stay cheap.
//
// The buffer always has at least one row and the cursor always satisfies
// 0 <= Row < LineCount() and 0 <= Col <= CurrentLineLength().
type TextBuffer struct {
	rows   *GapBuffer[row]
	cursor Position
}

var _ Document = (*TextBuffer)(nil)

// New creates a buffer with a single empty row.
func New() *TextBuffer {
	rows := NewGapBuffer[row](0)
	_ = rows.Insert(0, NewGapBuffer[rune](0))
	return &TextBuffer{rows: rows}
}

// FromString builds a buffer from text. CRLF is normalized to LF and every
// piece between line breaks becomes a row, empty ones included.
func FromString(s string) *TextBuffer {
	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	pieces := strings.Split(normalized, "\n")
	rows := make([]row, 0, len(pieces))
	for _, p := range pieces {
		rows = append(rows, NewGapBufferFrom([]rune(p)))
	}
	return &TextBuffer{rows: NewGapBufferFrom(rows)}
}

func (b *TextBuffer) sealed() {}

func (b *TextBuffer) current() row {
	return b.rows.At(b.cursor.Row)
}

// InsertChar inserts c at the cursor and advances the column. A line break
// splits the row instead.
func (b *TextBuffer) InsertChar(c rune) {
	if c == '\n' || c == '\r' {
		b.SplitLine()
		return
	}
	// Col is within [0, len(row)] so the insert cannot be out of range.
	_ = b.current().Insert(b.cursor.Col, c)
	b.cursor.Col++
}

// SplitLine moves the text from the cursor onward into a new row directly
// below and places the cursor at its start.
func (b *TextBuffer) SplitLine() {
	cur := b.current()
	tail := cur.Slice(b.cursor.Col, cur.Len())
	_ = cur.Delete(b.cursor.Col, cur.Len())
	_ = b.rows.Insert(b.cursor.Row+1, NewGapBufferFrom(tail))
	b.cursor = Position{Row: b.cursor.Row + 1, Col: 0}
}

// MoveLeft moves the cursor one rune left. It does not wrap to the previous row.
func (b *TextBuffer) MoveLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
	}
}

// MoveRight moves the cursor one rune right, stopping at the end of the row.
func (b *TextBuffer) MoveRight() {
	if b.cursor.Col < b.CurrentLineLength() {
		b.cursor.Col++
	}
}

// CurrentLineLength returns the rune length of the cursor's row.
func (b *TextBuffer) CurrentLineLength() int {
	return b.current().Len()
}

// Render returns a lazy view of the rows together with the cursor.
func (b *TextBuffer) Render() Frame {
	return Frame{
		Rows: func(yield func(int, string) bool) {
			i := 0
			for r := range b.rows.Values() {
				if !yield(i, rowString(r)) {
					return
				}
				i++
			}
		},
		Cursor: b.cursor,
	}
}

// Cursor returns the current cursor position.
func (b *TextBuffer) Cursor() Position {
	return b.cursor
}

// LineCount returns the number of rows.
func (b *TextBuffer) LineCount() int {
	return b.rows.Len()
}

// Line returns the text of row i, or "" when i is out of range.
func (b *TextBuffer) Line(i int) string {
	if i < 0 || i >= b.rows.Len() {
		return ""
	}
	return rowString(b.rows.At(i))
}

// Lines returns a copy of all rows.
func (b *TextBuffer) Lines() []string {
	out := make([]string, 0, b.rows.Len())
	for r := range b.rows.Values() {
		out = append(out, rowString(r))
	}
	return out
}

// String returns the rows joined with '\n'.
func (b *TextBuffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// GoString renders the buffer for the %#v debug dump.
func (b *TextBuffer) GoString() string {
	var sb strings.Builder
	sb.WriteString("TextBuffer {\n    rows: [\n")
	for _, l := range b.Lines() {
		fmt.Fprintf(&sb, "        %q,\n", l)
	}
	fmt.Fprintf(&sb, "    ],\n    row: %d,\n    col: %d,\n}", b.cursor.Row, b.cursor.Col)
	return sb.String()
}

func rowString(r row) string {
	var sb strings.Builder
	sb.Grow(r.Len())
	for c := range r.Values() {
		sb.WriteRune(c)
	}
	return sb.String()
}
