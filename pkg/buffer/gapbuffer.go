package buffer

import (
	"fmt"
	"iter"
)

const defaultGapCap = 16

// GapBuffer is a simple gap buffer over items of type T.
// The underlying slice stores items with a gap between gapStart and gapEnd.
// Inserting near the last edit point is amortized O(1); jumping the edit
// point costs O(distance) to relocate the gap.
type GapBuffer[T any] struct {
	buf      []T
	gapStart int
	gapEnd   int
}

// NewGapBuffer creates an empty GapBuffer with an initial capacity.
func NewGapBuffer[T any](cap int) *GapBuffer[T] {
	if cap < 1 {
		cap = defaultGapCap
	}
	return &GapBuffer[T]{buf: make([]T, cap), gapStart: 0, gapEnd: cap}
}

// NewGapBufferFrom initializes a GapBuffer holding a copy of items.
func NewGapBufferFrom[T any](items []T) *GapBuffer[T] {
	g := NewGapBuffer[T](len(items) + defaultGapCap)
	// place the items before the gap
	copy(g.buf, items)
	g.gapStart = len(items)
	return g
}

func (g *GapBuffer[T]) ensureGap(n int) {
	gap := g.gapEnd - g.gapStart
	if gap >= n {
		return
	}
	// grow buffer: double size or add n
	needed := n - gap
	newCap := len(g.buf)*2 + needed
	newBuf := make([]T, newCap)
	copy(newBuf, g.buf[:g.gapStart])
	suffixLen := len(g.buf) - g.gapEnd
	copy(newBuf[newCap-suffixLen:], g.buf[g.gapEnd:])
	g.gapEnd = newCap - suffixLen
	g.buf = newBuf
}

// moveGap moves the gap so that gapStart == pos. pos must be in [0, Len()].
func (g *GapBuffer[T]) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		// shift the items in [pos, gapStart) to the far side of the gap
		d := g.gapStart - pos
		oldStart := g.gapStart
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart = pos
		g.gapEnd -= d
		// vacated slots are zeroed so they do not pin references
		clear(g.buf[pos:min(oldStart, g.gapEnd)])
	case pos > g.gapStart:
		d := pos - g.gapStart
		oldEnd := g.gapEnd
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
		clear(g.buf[max(oldEnd, g.gapStart):g.gapEnd])
	}
}

// Insert inserts items at position pos (0..Len()).
func (g *GapBuffer[T]) Insert(pos int, items ...T) error {
	if pos < 0 || pos > g.Len() {
		return fmt.Errorf("insert position %d out of range [0,%d]", pos, g.Len())
	}
	g.moveGap(pos)
	g.ensureGap(len(items))
	copy(g.buf[g.gapStart:], items)
	g.gapStart += len(items)
	return nil
}

// Delete removes items in [start,end).
func (g *GapBuffer[T]) Delete(start, end int) error {
	if start < 0 || end < start || end > g.Len() {
		return fmt.Errorf("invalid range [%d,%d) for length %d", start, end, g.Len())
	}
	g.moveGap(start)
	clear(g.buf[g.gapEnd : g.gapEnd+(end-start)])
	g.gapEnd += end - start
	return nil
}

// Slice returns a copy of the items in [start,end), clamped to the buffer.
func (g *GapBuffer[T]) Slice(start, end int) []T {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []T{}
	}
	out := make([]T, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) - g.gapStart + g.gapEnd
		to := end - g.gapStart + g.gapEnd
		out = append(out, g.buf[from:to]...)
	}
	return out
}

// Len returns the logical length (excluding gap).
func (g *GapBuffer[T]) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// At returns the item at index i. If i is out of bounds it returns the zero value.
func (g *GapBuffer[T]) At(i int) T {
	if i < 0 || i >= g.Len() {
		var zero T
		return zero
	}
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[g.gapEnd+(i-g.gapStart)]
}

// Values yields the items in order. The sequence reads the buffer each time
// it is ranged over.
func (g *GapBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.buf[:g.gapStart] {
			if !yield(v) {
				return
			}
		}
		for _, v := range g.buf[g.gapEnd:] {
			if !yield(v) {
				return
			}
		}
	}
}
