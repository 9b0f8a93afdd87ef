package history

import (
	"github.com/dshills/ropedit/internal/engine/cursor"
	"github.com/dshills/ropedit/internal/engine/rope"
)

// Snapshot is the editor state restored by undo and redo.
type Snapshot struct {
	Text   rope.Rope
	Cursor cursor.State
}

// UndoStack is the history of a view.
type UndoStack = Stack[Snapshot]

// NewUndoStack creates a view history with the given entry limit.
func NewUndoStack(maxEntries int) *UndoStack {
	return NewStack[Snapshot](maxEntries)
}
