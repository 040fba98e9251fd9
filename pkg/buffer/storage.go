package buffer

import "iter"

// Position is a logical cursor location. Col counts runes within row Row and
// may equal the row length (the append position).
type Position struct {
	Row int
	Col int
}

// Frame is a read-only view of a document for one redraw.
type Frame struct {
	// Rows yields (index, text) for every row in order. It may be ranged
	// over any number of times and reads the document lazily.
	Rows   iter.Seq2[int, string]
	Cursor Position
}

// Document defines the editing operations the session drives. Storage is an
// internal detail of the implementation; the interface is sealed so callers
// cannot depend on a particular representation.
type Document interface {
	InsertChar(c rune)
	SplitLine()
	MoveLeft()
	MoveRight()
	CurrentLineLength() int
	Render() Frame

	sealed()
}
