package view

import (
	"github.com/dshills/ropedit/internal/engine/coords"
	"github.com/dshills/ropedit/internal/engine/cursor"
)

// Direction is a cursor motion direction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func (v *View) step(dir Direction) {
	switch dir {
	case Up:
		v.cursor.Up(1)
	case Down:
		v.cursor.Down(1)
	case Left:
		v.cursor.Left()
	case Right:
		v.cursor.Right()
	}
}

// updateSelection extends the selection to the cursor when expand is set
// and drops it otherwise.
func (v *View) updateSelection(expand bool) {
	if !expand {
		v.selection = nil
		return
	}
	var s cursor.Selection
	if v.selection != nil {
		s = v.selection.Expand(v.cursor.Offset())
	} else {
		s = cursor.NewSelection(v.cursor.Previous(), v.cursor.Offset())
	}
	v.selection = &s
}

// MoveCursor moves the cursor one step. With expand the selection grows to
// the new position; without it the selection is cleared.
func (v *View) MoveCursor(dir Direction, expand bool) {
	v.step(dir)
	v.updateSelection(expand)
	v.FocusOnCursor()
}

// MovePage moves the cursor by one page of lines.
func (v *View) MovePage(dir Direction, expand bool) {
	anchor := v.cursor.Offset()
	for range v.PageLength() {
		v.step(dir)
	}
	if expand {
		if v.selection != nil {
			s := v.selection.Expand(v.cursor.Offset())
			v.selection = &s
		} else {
			s := cursor.NewSelection(anchor, v.cursor.Offset())
			v.selection = &s
		}
	} else {
		v.selection = nil
	}
	v.FocusOnCursor()
}

// Home moves the cursor to the start of its line.
func (v *View) Home(expand bool) {
	v.cursor.Home()
	v.updateSelection(expand)
	v.FocusOnCursor()
}

// End moves the cursor to the end of its line, before the terminator.
func (v *View) End(expand bool) {
	v.cursor.End()
	v.updateSelection(expand)
	v.FocusOnCursor()
}

// Click moves the cursor to the character under the pixel position (x, y)
// relative to the view origin.
func (v *View) Click(x, y int, expand bool) {
	line, col := v.viewport.ScreenToCell(x, y)
	line = min(line, v.store.LineCount()-1)
	v.cursor.SetIndex(v.mapper.PointToIndex(v.store, coords.Point{Line: line, Column: col}))
	v.updateSelection(expand)
	v.FocusOnCursor()
}

// DoubleClick moves the cursor under (x, y) and selects the word there.
func (v *View) DoubleClick(x, y int) {
	v.Click(x, y, false)
	v.SelectWordUnderCursor()
}

// SelectWordUnderCursor selects the word around the cursor. When there is
// no word the selection is cleared.
func (v *View) SelectWordUnderCursor() bool {
	s, ok := cursor.SelectWord(v.store, v.cursor.Offset())
	if !ok {
		v.selection = nil
		return false
	}
	v.selection = &s
	return true
}

// Selection returns the current selection.
func (v *View) Selection() (cursor.Selection, bool) {
	if v.selection == nil {
		return cursor.Selection{}, false
	}
	return *v.selection, true
}

// SetSelection selects the range from anchor to active and moves the
// cursor to active.
func (v *View) SetSelection(anchor, active int) {
	s := cursor.NewSelection(anchor, active).Clamp(v.store.Len())
	v.selection = &s
	v.cursor.SetIndex(s.End)
}

// SelectedText returns the selected text.
func (v *View) SelectedText() (string, bool) {
	if v.selection == nil {
		return "", false
	}
	return v.store.Slice(v.selection.Range()), true
}

// ClearSelection drops the selection.
func (v *View) ClearSelection() {
	v.selection = nil
}

// Scroll moves the viewport by dx columns and dy lines. Positive values
// move toward the start of the text.
func (v *View) Scroll(dx, dy float64) {
	v.viewport.Scroll(dx, dy, v.store.LineCount())
	v.styling.Expand(v.viewport.LineEnd(), v.store)
}

// FocusOnCursor scrolls the viewport so the cursor is visible.
func (v *View) FocusOnCursor() {
	v.viewport.Focus(v.cursor.Line(), v.cursor.Column(), v.store.LineCount())
	v.styling.Expand(v.viewport.LineEnd(), v.store)
}
