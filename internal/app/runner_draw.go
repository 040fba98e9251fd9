package app

import (
	"unicode"

	"example.com/modedit/pkg/buffer"
	"example.com/modedit/pkg/editor"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// renderState captures a snapshot of editor state for one redraw.
type renderState struct {
	lines   []string // visible rows only, starting at topLine
	cursor  buffer.Position
	mode    editor.Mode
	topLine int
}

// cellWidth is the number of screen cells a rune occupies when drawn.
func cellWidth(ch rune) int {
	if w := runewidth.RuneWidth(ch); w > 0 {
		return w
	}
	return 1
}

// displayCol converts a rune column in line to a screen column.
func displayCol(line string, col int) int {
	x := 0
	for i, ch := range []rune(line) {
		if i >= col {
			break
		}
		x += cellWidth(ch)
	}
	return x
}

// ensureCursorVisible scrolls TopLine so the cursor row is on screen above
// the status row.
func (r *Runner) ensureCursorVisible(row int) {
	if r.Screen == nil {
		return
	}
	_, height := r.Screen.Size()
	textRows := height - 1
	if textRows < 1 {
		textRows = 1
	}
	if row < r.TopLine {
		r.TopLine = row
	}
	if row >= r.TopLine+textRows {
		r.TopLine = row - textRows + 1
	}
}

// renderSnapshot captures the visible part of the session's document.
func (r *Runner) renderSnapshot() renderState {
	s := r.session()
	f := s.Frame()
	r.ensureCursorVisible(f.Cursor.Row)
	textRows := 0
	if r.Screen != nil {
		_, height := r.Screen.Size()
		textRows = height - 1
	}
	var lines []string
	for i, line := range f.Rows {
		if i < r.TopLine {
			continue
		}
		if i >= r.TopLine+textRows {
			break
		}
		lines = append(lines, line)
	}
	return renderState{lines: lines, cursor: f.Cursor, mode: s.Mode, topLine: r.TopLine}
}

// renderToScreen clears the screen, draws the rows from the top, the mode
// label on the bottom row, and places the terminal cursor.
func renderToScreen(s tcell.Screen, st renderState) {
	width, height := s.Size()
	s.Clear()
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y, line := range st.lines {
		if y >= height-1 {
			break
		}
		x := 0
		for _, ch := range line {
			if x >= width {
				break
			}
			if !unicode.IsPrint(ch) {
				ch = ' '
			}
			s.SetContent(x, y, ch, nil, text)
			x += cellWidth(ch)
		}
	}

	label := st.mode.Label()
	bold := tcell.StyleDefault.Bold(true)
	x := 0
	for _, ch := range label {
		if x >= width {
			break
		}
		s.SetContent(x, height-1, ch, nil, bold)
		x += cellWidth(ch)
	}

	cy := st.cursor.Row - st.topLine
	if cy >= 0 && cy < len(st.lines) {
		s.ShowCursor(displayCol(st.lines[cy], st.cursor.Col), cy)
	} else {
		s.HideCursor()
	}
	s.Show()
}

// draw renders the current session state synchronously.
func (r *Runner) draw() {
	if r.Screen == nil {
		return
	}
	renderToScreen(r.Screen, r.renderSnapshot())
}
