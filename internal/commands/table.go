package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dshills/ropedit/internal/clipboard"
	"github.com/dshills/ropedit/internal/input/key"
	"github.com/dshills/ropedit/internal/view"
)

// Errors returned by table operations.
var (
	// ErrDuplicateCommand indicates a command ID is already registered.
	ErrDuplicateCommand = errors.New("commands: duplicate command")

	// ErrKeyConflict indicates a key binding already triggers another command.
	ErrKeyConflict = errors.New("commands: key already bound")

	// ErrUnknownCommand indicates no command has the given ID.
	ErrUnknownCommand = errors.New("commands: unknown command")

	// ErrNoPrompter indicates a command needed to ask for a path but
	// the context has no prompter.
	ErrNoPrompter = errors.New("commands: no path prompter")
)

// Context carries what a command acts on. A frontend keeps one Context
// for the whole session.
type Context struct {
	// View is the view being edited. With a Workspace it is refreshed to
	// the current view before every command.
	View *view.View

	// Workspace holds all views. Window commands need it.
	Workspace *view.Workspace

	// Clipboard serves Cut, Copy and Paste.
	Clipboard clipboard.Clipboard

	// Prompter asks for file names.
	Prompter view.PathPrompter

	// Quit is set when the session should end.
	Quit bool

	// Message is a note for the status line left by the last command.
	Message string

	// pending is the ID of the command waiting for confirmation.
	pending string
}

// confirm reports whether the command id was just requested a second
// time. The first request leaves msg in the status line.
func (c *Context) confirm(id, msg string) bool {
	if c.pending == id {
		c.pending = ""
		return true
	}
	c.pending = id
	c.Message = msg
	return false
}

// Command is a named editor action.
type Command struct {
	// ID names the command in the table and in the keys config.
	ID string

	// Description is a one-line summary.
	Description string

	// Keys are the bindings that trigger the command.
	Keys []key.Binding

	// Edits marks commands that may change the text.
	Edits bool

	// Window marks commands that act on the workspace and run without a
	// view.
	Window bool

	// Run executes the command.
	Run func(ctx *Context) error
}

// Table maps key bindings to commands.
type Table struct {
	commands []*Command
	byID     map[string]*Command
	byKey    map[key.Binding]*Command
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		byID:  make(map[string]*Command),
		byKey: make(map[key.Binding]*Command),
	}
}

// Add registers commands. A repeated binding within one command is
// ignored; a binding of another command is a conflict.
func (t *Table) Add(cmds ...*Command) error {
	for _, c := range cmds {
		if _, ok := t.byID[c.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCommand, c.ID)
		}
		bindings := c.Keys
		c.Keys = nil
		for _, b := range bindings {
			b = b.Normalize()
			if other, ok := t.byKey[b]; ok && other != c {
				return fmt.Errorf("%w: %s for %s, bound to %s", ErrKeyConflict, b, c.ID, other.ID)
			}
			if _, ok := t.byKey[b]; !ok {
				t.byKey[b] = c
				c.Keys = append(c.Keys, b)
			}
		}
		t.byID[c.ID] = c
		t.commands = append(t.commands, c)
	}
	return nil
}

// Get returns the command with the given ID.
func (t *Table) Get(id string) (*Command, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// Lookup returns the command bound to b.
func (t *Table) Lookup(b key.Binding) (*Command, bool) {
	c, ok := t.byKey[b.Normalize()]
	return c, ok
}

// Commands returns the commands in registration order.
func (t *Table) Commands() []*Command {
	return t.commands
}

// Len returns the number of commands.
func (t *Table) Len() int {
	return len(t.commands)
}

// Rebind replaces the bindings of command id with specs. A binding held
// by another command moves to id.
func (t *Table) Rebind(id string, specs []string) error {
	c, ok := t.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	bindings := make([]key.Binding, 0, len(specs))
	for _, spec := range specs {
		b, err := key.Parse(spec)
		if err != nil {
			return fmt.Errorf("keys for %s: %w", id, err)
		}
		bindings = append(bindings, b)
	}

	for _, b := range c.Keys {
		delete(t.byKey, b)
	}
	c.Keys = nil
	for _, b := range bindings {
		if other, ok := t.byKey[b]; ok && other != c {
			other.Keys = without(other.Keys, b)
			log.Debug().Str("key", b.String()).Str("from", other.ID).Str("to", id).Msg("key rebound")
		}
		if t.byKey[b] != c {
			t.byKey[b] = c
			c.Keys = append(c.Keys, b)
		}
	}
	return nil
}

func without(keys []key.Binding, b key.Binding) []key.Binding {
	out := keys[:0]
	for _, k := range keys {
		if k != b {
			out = append(out, k)
		}
	}
	return out
}

// Dispatch runs the command bound to b. An unbound printable character is
// typed into the view. It reports whether b was handled.
func (t *Table) Dispatch(ctx *Context, b key.Binding) (bool, error) {
	if ctx.Workspace != nil {
		ctx.View = ctx.Workspace.Current()
	}
	ctx.Message = ""

	c, ok := t.Lookup(b)
	if !ok {
		ctx.pending = ""
		if !b.IsText() || ctx.View == nil {
			return false, nil
		}
		ctx.View.InsertChar(b.Rune)
		syncViews(ctx)
		return true, nil
	}
	if ctx.pending != c.ID {
		ctx.pending = ""
	}
	if !c.Window && ctx.View == nil {
		return false, nil
	}

	err := c.Run(ctx)
	if c.Edits {
		syncViews(ctx)
	}
	if ctx.Workspace != nil {
		ctx.View = ctx.Workspace.Current()
	}
	if err != nil {
		log.Warn().Err(err).Str("command", c.ID).Msg("command failed")
	}
	return true, err
}

func syncViews(ctx *Context) {
	if ctx.Workspace != nil && ctx.View != nil {
		ctx.Workspace.SyncFrom(ctx.View)
	}
}
