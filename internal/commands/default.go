package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/ropedit/internal/config"
	"github.com/dshills/ropedit/internal/input/key"
	"github.com/dshills/ropedit/internal/view"
)

func keys(specs ...string) []key.Binding {
	out := make([]key.Binding, len(specs))
	for i, spec := range specs {
		out[i] = key.MustParse(spec)
	}
	return out
}

func motion(id, desc string, dir view.Direction, expand bool, specs ...string) *Command {
	return &Command{ID: id, Description: desc, Keys: keys(specs...), Run: func(ctx *Context) error {
		ctx.View.MoveCursor(dir, expand)
		return nil
	}}
}

func page(id, desc string, dir view.Direction, expand bool, specs ...string) *Command {
	return &Command{ID: id, Description: desc, Keys: keys(specs...), Run: func(ctx *Context) error {
		ctx.View.MovePage(dir, expand)
		return nil
	}}
}

// Default returns the standard command table with the key overrides of
// settings applied.
func Default(settings config.Settings) (*Table, error) {
	t := NewTable()
	if err := t.Add(editCommands(settings)...); err != nil {
		return nil, err
	}
	if err := t.Add(windowCommands()...); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(settings.Keys))
	for id := range settings.Keys {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := t.Rebind(id, settings.Keys[id]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func editCommands(settings config.Settings) []*Command {
	return []*Command{
		{ID: "Cut", Description: "Cut the selection to the clipboard", Keys: keys("Ctrl-X"), Edits: true, Run: cut},
		{ID: "Copy", Description: "Copy the selection to the clipboard", Keys: keys("Ctrl-C"), Run: copySelection},
		{ID: "Paste", Description: "Insert the clipboard text", Keys: keys("Ctrl-V"), Edits: true, Run: paste},
		{ID: "SelectAll", Description: "Select the whole text", Keys: keys("Ctrl-A"), Run: func(ctx *Context) error {
			ctx.View.SetSelection(0, ctx.View.Store().Len())
			return nil
		}},
		{ID: "End", Description: "Move to the end of the line", Keys: keys("End"), Run: func(ctx *Context) error {
			ctx.View.End(false)
			return nil
		}},
		{ID: "EndSel", Description: "Select to the end of the line", Keys: keys("Shift-End"), Run: func(ctx *Context) error {
			ctx.View.End(true)
			return nil
		}},
		{ID: "Home", Description: "Move to the start of the line", Keys: keys("Home"), Run: func(ctx *Context) error {
			ctx.View.Home(false)
			return nil
		}},
		{ID: "HomeSel", Description: "Select to the start of the line", Keys: keys("Shift-Home"), Run: func(ctx *Context) error {
			ctx.View.Home(true)
			return nil
		}},
		{ID: "Undo", Description: "Undo the last edit", Keys: keys("Ctrl-Z"), Edits: true, Run: func(ctx *Context) error {
			if !ctx.View.Undo() {
				ctx.Message = "nothing to undo"
			}
			return nil
		}},
		{ID: "Redo", Description: "Redo the last undone edit", Keys: keys("Ctrl-Y"), Edits: true, Run: func(ctx *Context) error {
			if !ctx.View.Redo() {
				ctx.Message = "nothing to redo"
			}
			return nil
		}},
		{ID: "Enter", Description: "Insert a line break", Keys: keys("Keypad Enter", "Return"), Edits: true, Run: func(ctx *Context) error {
			ctx.View.InsertLinefeed()
			return nil
		}},
		{ID: "Tab", Description: "Insert a tab", Keys: keys("Tab"), Edits: true, Run: insertTab(settings.IndentWithSpace)},
		{ID: "Backspace", Description: "Delete the character before the cursor", Keys: keys("Backspace"), Edits: true, Run: func(ctx *Context) error {
			ctx.View.Backspace()
			return nil
		}},
		{ID: "Delete", Description: "Delete the character at the cursor", Keys: keys("Delete"), Edits: true, Run: func(ctx *Context) error {
			ctx.View.DeleteAtCursor()
			return nil
		}},
		motion("Up", "Move up", view.Up, false, "Up", "Num-Up"),
		motion("Down", "Move down", view.Down, false, "Down", "Num-Down"),
		motion("Left", "Move left", view.Left, false, "Left", "Num-Left"),
		motion("Right", "Move right", view.Right, false, "Right", "Num-Right"),
		motion("UpSel", "Select up", view.Up, true, "Shift-Up", "Shift-Num-Up"),
		motion("DownSel", "Select down", view.Down, true, "Shift-Down", "Shift-Num-Down"),
		motion("LeftSel", "Select left", view.Left, true, "Shift-Left", "Shift-Num-Left"),
		motion("RightSel", "Select right", view.Right, true, "Shift-Right", "Shift-Num-Right"),
		page("PageUp", "Move up one page", view.Up, false, "PageUp"),
		page("PageDown", "Move down one page", view.Down, false, "PageDown"),
		page("PageUpSel", "Select up one page", view.Up, true, "Shift-PageUp"),
		page("PageDownSel", "Select down one page", view.Down, true, "Shift-PageDown"),
		{ID: "Save", Description: "Save the buffer", Keys: keys("Ctrl-S"), Run: save},
	}
}

// withWorkspace adapts a window command. Without a workspace it does
// nothing.
func withWorkspace(run func(ctx *Context, ws *view.Workspace) error) func(*Context) error {
	return func(ctx *Context) error {
		if ctx.Workspace == nil {
			return nil
		}
		return run(ctx, ctx.Workspace)
	}
}

func windowCommands() []*Command {
	return []*Command{
		{ID: "Open", Description: "Open a file", Keys: keys("Ctrl-O"), Window: true, Run: withWorkspace(open)},
		{ID: "NewBuffer", Description: "Open an untitled buffer", Keys: keys("Ctrl-N"), Window: true,
			Run: withWorkspace(func(_ *Context, ws *view.Workspace) error {
				ws.NewBuffer()
				return nil
			})},
		{ID: "NextView", Description: "Focus the next view", Keys: keys("F6"), Window: true,
			Run: withWorkspace(func(_ *Context, ws *view.Workspace) error {
				ws.Next()
				return nil
			})},
		{ID: "PrevView", Description: "Focus the previous view", Keys: keys("Shift-F6"), Window: true,
			Run: withWorkspace(func(_ *Context, ws *view.Workspace) error {
				ws.Prev()
				return nil
			})},
		{ID: "SplitView", Description: "Open a second view on the buffer", Keys: keys("F7"), Window: true,
			Run: withWorkspace(func(_ *Context, ws *view.Workspace) error {
				_, err := ws.Split()
				return err
			})},
		{ID: "CloseView", Description: "Close the view", Keys: keys("Ctrl-W"), Window: true, Run: withWorkspace(closeView)},
		{ID: "Quit", Description: "Quit the editor", Keys: keys("Ctrl-Q"), Window: true, Run: quit},
	}
}

func cut(ctx *Context) error {
	if _, ok := ctx.View.Selection(); !ok {
		return nil
	}
	if err := copySelection(ctx); err != nil {
		return err
	}
	ctx.View.DeleteAtCursor()
	return nil
}

func copySelection(ctx *Context) error {
	text, ok := ctx.View.SelectedText()
	if !ok || ctx.Clipboard == nil {
		return nil
	}
	if err := ctx.Clipboard.SetText(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

func paste(ctx *Context) error {
	if ctx.Clipboard == nil {
		return nil
	}
	text, err := ctx.Clipboard.Text()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	ctx.View.Insert(text)
	return nil
}

// insertTab inserts a tab character, or with spaces pads the cursor column
// to the next tab stop.
func insertTab(withSpace bool) func(*Context) error {
	return func(ctx *Context) error {
		v := ctx.View
		if !withSpace {
			v.InsertChar('\t')
			return nil
		}
		n, p := v.TabSize(), v.ColIdx()
		next := ((p + n) / n) * n
		v.Insert(strings.Repeat(" ", next-p))
		return nil
	}
}

func save(ctx *Context) error {
	var err error
	if ctx.Workspace != nil {
		err = ctx.Workspace.Save(ctx.Prompter)
	} else {
		err = ctx.View.Save(ctx.Prompter)
	}
	switch {
	case errors.Is(err, view.ErrSaveCanceled):
		ctx.Message = "save canceled"
		return nil
	case err != nil:
		return err
	}
	ctx.Message = "saved " + ctx.View.Name()
	return nil
}

func open(ctx *Context, ws *view.Workspace) error {
	if ctx.Prompter == nil {
		return ErrNoPrompter
	}
	path, ok := ctx.Prompter.PromptPath("")
	if !ok || path == "" {
		return nil
	}
	_, err := ws.Open(path)
	return err
}

// lastViewOf reports whether v is the only view on its store.
func lastViewOf(ws *view.Workspace, v *view.View) bool {
	for _, other := range ws.Views() {
		if other != v && other.Store() == v.Store() {
			return false
		}
	}
	return true
}

func closeView(ctx *Context, ws *view.Workspace) error {
	v := ws.Current()
	if v == nil {
		return nil
	}
	if v.IsDirty() && lastViewOf(ws, v) &&
		!ctx.confirm("CloseView", v.Name()+" has unsaved changes, close again to discard") {
		return nil
	}
	ws.Close()
	if ws.Len() == 0 {
		ctx.Quit = true
	}
	return nil
}

func quit(ctx *Context) error {
	if ctx.Workspace != nil && ctx.Workspace.Dirty() &&
		!ctx.confirm("Quit", "unsaved changes, quit again to discard") {
		return nil
	}
	ctx.Quit = true
	return nil
}
