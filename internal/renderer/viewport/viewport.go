// Package viewport tracks which lines and columns of a document a view
// shows.
//
// Sizes are in cells: a surface of w by h units shown with a font of a given
// advance and line height holds w/advance - 1 columns past the first and
// h/lineHeight - 1 lines past the first. Both the first and the last
// counted line are visible, so LineEnd is inclusive.
package viewport

import "math"

// Viewport is the visible window onto a document.
type Viewport struct {
	// Scroll offset in surface units, only moved by Scroll.
	dx, dy float64

	lineStart int
	height    int
	colStart  int
	width     int

	advance    int
	lineHeight int
}

// New creates an empty viewport at the top of the document.
func New() *Viewport {
	return &Viewport{advance: 1, lineHeight: 1}
}

// Resize fits the viewport to a surface of w by h units.
func (v *Viewport) Resize(w, h, advance, lineHeight int) {
	v.advance = max(advance, 1)
	v.lineHeight = max(lineHeight, 1)
	v.height = max(h/v.lineHeight-1, 0)
	v.width = max(w/v.advance-1, 0)
}

// LineStart returns the first visible line.
func (v *Viewport) LineStart() int { return v.lineStart }

// LineEnd returns the last visible line.
func (v *Viewport) LineEnd() int { return v.lineStart + v.height }

// ColStart returns the first visible column.
func (v *Viewport) ColStart() int { return v.colStart }

// ColEnd returns the last visible column.
func (v *Viewport) ColEnd() int { return v.colStart + v.width }

// Height returns the number of lines after the first visible one.
func (v *Viewport) Height() int { return v.height }

// Width returns the number of columns after the first visible one.
func (v *Viewport) Width() int { return v.width }

// Contains reports whether a line and column are on screen.
func (v *Viewport) Contains(line, col int) bool {
	return line >= v.lineStart && line <= v.LineEnd() &&
		col >= v.colStart && col <= v.ColEnd()
}

// ScreenToCell converts a surface position to a document line and column.
// Negative results are clamped to zero.
func (v *Viewport) ScreenToCell(x, y int) (line, col int) {
	col = max(x/v.advance+v.colStart, 0)
	line = max(y/v.lineHeight+v.lineStart, 0)
	return line, col
}

// Scroll moves the view by dx columns and dy lines. Positive values move
// toward the start of the document. The vertical offset stays between the
// top and the last line of a document of lineCount lines.
func (v *Viewport) Scroll(dx, dy float64, lineCount int) {
	lh, adv := float64(v.lineHeight), float64(v.advance)

	v.dy -= dy * lh
	v.dy = min(max(v.dy, 0), lh*float64(lineCount))
	v.lineStart = int(math.Ceil(v.dy / lh))

	v.dx -= dx * adv
	v.dx = max(v.dx, 0)
	v.colStart = int(math.Ceil(v.dx / adv))
}

// Focus scrolls the least amount that brings line and col on screen, then
// keeps the first line within a document of lineCount lines.
func (v *Viewport) Focus(line, col, lineCount int) {
	if line < v.lineStart {
		v.lineStart = line
	}
	if line > v.LineEnd() {
		v.lineStart = line - v.height
	}
	v.lineStart = min(v.lineStart, lineCount)

	if col < v.colStart {
		v.colStart = col
	}
	if col > v.ColEnd() {
		v.colStart = col - v.width
	}

	v.dy = float64(v.lineStart * v.lineHeight)
	v.dx = float64(v.colStart * v.advance)
}
