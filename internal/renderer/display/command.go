package display

import (
	"fmt"

	"github.com/dshills/ropedit/internal/renderer/core"
)

// Command is one drawing instruction.
type Command interface {
	fmt.Stringer
	command()
}

// Move sets the pen position, relative to the current translation.
type Move struct{ X, Y int }

// Translate shifts the origin of later Move commands.
type Translate struct{ X, Y int }

// Color sets the pen color.
type Color struct{ Color core.Color }

// Char draws a character at the pen position.
type Char struct{ Rune rune }

// Rect fills a rectangle at the pen position with the pen color.
type Rect struct{ W, H int }

// Clear fills the whole surface.
type Clear struct{ Color core.Color }

// SetFont selects a font by name.
type SetFont struct{ Name string }

func (Move) command()      {}
func (Translate) command() {}
func (Color) command()     {}
func (Char) command()      {}
func (Rect) command()      {}
func (Clear) command()     {}
func (SetFont) command()   {}

func (c Move) String() string      { return fmt.Sprintf("move(%d,%d)", c.X, c.Y) }
func (c Translate) String() string { return fmt.Sprintf("translate(%d,%d)", c.X, c.Y) }
func (c Color) String() string     { return "color(" + c.Color.String() + ")" }
func (c Char) String() string      { return fmt.Sprintf("char(%q)", c.Rune) }
func (c Rect) String() string      { return fmt.Sprintf("rect(%dx%d)", c.W, c.H) }
func (c Clear) String() string     { return "clear(" + c.Color.String() + ")" }
func (c SetFont) String() string   { return "font(" + c.Name + ")" }

// List records commands in order.
type List struct {
	cmds []Command
}

// Add appends cmd.
func (l *List) Add(cmd Command) {
	l.cmds = append(l.cmds, cmd)
}

// Commands returns the recorded commands.
func (l *List) Commands() []Command {
	return l.cmds
}

// Len returns the number of recorded commands.
func (l *List) Len() int {
	return len(l.cmds)
}

// Reset drops every command and keeps the storage.
func (l *List) Reset() {
	l.cmds = l.cmds[:0]
}

// Text returns the characters drawn by the list in order. Useful in tests.
func (l *List) Text() string {
	var out []rune
	for _, c := range l.cmds {
		if ch, ok := c.(Char); ok {
			out = append(out, ch.Rune)
		}
	}
	return string(out)
}
