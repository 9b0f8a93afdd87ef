package cursor

import (
	"fmt"

	"github.com/dshills/ropedit/internal/engine/coords"
)

// State is a value snapshot of a cursor.
type State struct {
	Offset        int
	Line          int
	Column        int
	VirtualColumn int
	Previous      int
}

// String returns a string representation of the state.
func (s State) String() string {
	return fmt.Sprintf("Cursor(%d @ %d:%d, vcol %d)", s.Offset, s.Line, s.Column, s.VirtualColumn)
}

// Cursor is an insertion point bound to a document.
type Cursor struct {
	text   coords.Text
	mapper coords.Mapper
	state  State
}

// New creates a cursor at the start of text.
func New(text coords.Text, mapper coords.Mapper) *Cursor {
	return &Cursor{text: text, mapper: mapper}
}

// Offset returns the cursor's character offset.
func (c *Cursor) Offset() int {
	return c.state.Offset
}

// Line returns the cursor's line.
func (c *Cursor) Line() int {
	return c.state.Line
}

// Column returns the cursor's tab-expanded column.
func (c *Cursor) Column() int {
	return c.state.Column
}

// VirtualColumn returns the column vertical motion aims for.
func (c *Cursor) VirtualColumn() int {
	return c.state.VirtualColumn
}

// Previous returns the offset before the last motion.
func (c *Cursor) Previous() int {
	return c.state.Previous
}

// Point returns the cursor's line and column.
func (c *Cursor) Point() coords.Point {
	return coords.Point{Line: c.state.Line, Column: c.state.Column}
}

// State returns a snapshot of the cursor.
func (c *Cursor) State() State {
	return c.state
}

// Restore replaces the cursor state with a snapshot, clamped to the
// current document.
func (c *Cursor) Restore(s State) {
	c.state = s
	c.Sync()
}

// SetMapper changes the tab width used for columns.
func (c *Cursor) SetMapper(m coords.Mapper) {
	c.mapper = m
	c.refresh()
	c.state.VirtualColumn = c.state.Column
}

// SetIndex moves to offset, clamped to [0, Len()].
func (c *Cursor) SetIndex(offset int) {
	c.state.Previous = c.state.Offset
	c.moveTo(offset)
	c.state.VirtualColumn = c.state.Column
}

// Up moves n lines up, aiming for the virtual column.
func (c *Cursor) Up(n int) {
	c.vertical(max(c.state.Line-n, 0))
}

// Down moves n lines down, aiming for the virtual column.
func (c *Cursor) Down(n int) {
	c.vertical(min(c.state.Line+n, c.text.LineCount()-1))
}

func (c *Cursor) vertical(line int) {
	c.state.Previous = c.state.Offset
	c.moveTo(c.mapper.PointToIndex(c.text, coords.Point{Line: line, Column: c.state.VirtualColumn}))
}

// Left moves one character back. At the start of a line it moves to the
// last content position of the previous line.
func (c *Cursor) Left() {
	c.state.Previous = c.state.Offset
	switch {
	case c.state.Offset == 0:
	case c.state.Offset == c.text.LineToChar(c.state.Line):
		c.moveTo(c.text.LineToLastChar(c.state.Line - 1))
	default:
		c.moveTo(c.state.Offset - 1)
	}
	c.state.VirtualColumn = c.state.Column
}

// Right moves one character forward. At the last content position of a
// line it moves to the start of the next line; on the last line it stays.
func (c *Cursor) Right() {
	c.state.Previous = c.state.Offset
	if c.state.Offset == c.text.LineToLastChar(c.state.Line) {
		if c.state.Line < c.text.LineCount()-1 {
			c.moveTo(c.text.LineToChar(c.state.Line + 1))
		}
	} else {
		c.moveTo(c.state.Offset + 1)
	}
	c.state.VirtualColumn = c.state.Column
}

// Home moves to the start of the current line.
func (c *Cursor) Home() {
	c.state.Previous = c.state.Offset
	c.moveTo(c.text.LineToChar(c.state.Line))
	c.state.VirtualColumn = c.state.Column
}

// End moves to the last content position of the current line.
func (c *Cursor) End() {
	c.state.Previous = c.state.Offset
	c.moveTo(c.text.LineToLastChar(c.state.Line))
	c.state.VirtualColumn = c.state.Column
}

// Sync clamps the cursor after the document changed underneath it.
// The virtual column is kept.
func (c *Cursor) Sync() {
	c.state.Offset = min(max(c.state.Offset, 0), c.text.Len())
	c.state.Previous = min(max(c.state.Previous, 0), c.text.Len())
	c.refresh()
}

func (c *Cursor) moveTo(offset int) {
	c.state.Offset = min(max(offset, 0), c.text.Len())
	c.refresh()
}

func (c *Cursor) refresh() {
	p := c.mapper.IndexToPoint(c.text, c.state.Offset)
	c.state.Line = p.Line
	c.state.Column = p.Column
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return c.state.String()
}
