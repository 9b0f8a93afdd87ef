package view

import (
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/dshills/ropedit/internal/engine/history"
)

func (v *View) snapshot() history.Snapshot {
	return history.Snapshot{Text: v.store.Snapshot(), Cursor: v.cursor.State()}
}

func (v *View) pushState() {
	v.undo.Push(v.snapshot())
}

// removeSelection deletes the selected text and leaves the cursor at its
// lower end. It reports whether there was a selection.
func (v *View) removeSelection() bool {
	if v.selection == nil {
		return false
	}
	start, end := v.selection.Range()
	v.cursor.SetIndex(start)
	v.remove(start, end)
	v.selection = nil
	return true
}

func (v *View) remove(start, end int) {
	if err := v.store.Remove(start, end); err != nil {
		log.Error().Err(err).Int("start", start).Int("end", end).Str("view", v.Name()).Msg("remove failed")
	}
}

func (v *View) insert(offset int, text string) bool {
	if err := v.store.Insert(offset, text); err != nil {
		log.Error().Err(err).Int("offset", offset).Str("view", v.Name()).Msg("insert failed")
		return false
	}
	return true
}

// finishEdit runs the steps shared by every edit once the text changed.
func (v *View) finishEdit(startLine int) {
	v.editLine = startLine
	v.selection = nil
	v.FocusOnCursor()
	v.styling.Update(startLine, v.viewport.LineEnd(), v.store)
}

// InsertChar replaces the selection, if any, with r and moves past it.
func (v *View) InsertChar(r rune) {
	v.Insert(string(r))
}

// Insert replaces the selection, if any, with text and moves past it.
func (v *View) Insert(text string) {
	if text == "" {
		return
	}
	start := v.LineIdx()
	v.pushState()
	v.removeSelection()
	start = min(start, v.LineIdx())

	off := v.cursor.Offset()
	if v.insert(off, text) {
		v.cursor.SetIndex(off + utf8.RuneCountInString(text))
	}
	v.finishEdit(start)
}

// InsertLinefeed inserts the detected line terminator.
func (v *View) InsertLinefeed() {
	v.Insert(v.linefeed.Sequence())
}

// Backspace deletes the selection, or the character before the cursor.
// A CRLF pair before the cursor is deleted as one.
func (v *View) Backspace() {
	start := v.LineIdx()
	if v.selection == nil && v.cursor.Offset() == 0 {
		return
	}
	v.pushState()
	if !v.removeSelection() {
		v.cursor.Left()
		v.remove(v.cursor.Offset(), v.cursor.Previous())
	}
	v.finishEdit(min(start, v.LineIdx()))
}

// DeleteAtCursor deletes the selection, or the character at the cursor.
// At the end of a line the whole terminator is deleted.
func (v *View) DeleteAtCursor() {
	start := v.LineIdx()
	if v.selection == nil && v.cursor.Offset() >= v.store.Len() {
		return
	}
	v.pushState()
	if !v.removeSelection() {
		off := v.cursor.Offset()
		v.cursor.Right()
		end := v.cursor.Offset()
		if end <= off {
			// Trailing characters past the last content position of the
			// final line.
			end = off + 1
		}
		v.remove(off, end)
		v.cursor.SetIndex(off)
	}
	v.finishEdit(min(start, v.LineIdx()))
}

// Undo restores the state before the last edit. The first undo from the
// tip records the live state so Redo can return to it. It reports whether
// anything changed.
func (v *View) Undo() bool {
	before := v.LineIdx()
	v.undo.CaptureTip(v.snapshot())
	s, ok := v.undo.Undo()
	if !ok {
		return false
	}
	v.restore(s, before)
	return true
}

// Redo reapplies the state undone by Undo. It reports whether anything
// changed.
func (v *View) Redo() bool {
	before := v.LineIdx()
	s, ok := v.undo.Redo()
	if !ok {
		return false
	}
	v.restore(s, before)
	return true
}

func (v *View) restore(s history.Snapshot, before int) {
	v.store.Restore(s.Text)
	v.cursor.Restore(s.Cursor)
	v.cursor.Sync()
	v.selection = nil
	v.FocusOnCursor()
	v.editLine = min(before, v.LineIdx())
	v.styling.Update(v.editLine, v.viewport.LineEnd(), v.store)
}
