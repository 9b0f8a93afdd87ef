package app

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dshills/ropedit/internal/config/watcher"
	"github.com/dshills/ropedit/internal/engine/textstore"
	"github.com/dshills/ropedit/internal/input/key"
	"github.com/dshills/ropedit/internal/renderer/backend"
	"github.com/dshills/ropedit/internal/view"
)

// doubleClickTime is the longest delay between the clicks of a double click.
const doubleClickTime = 400 * time.Millisecond

// scrollStep is the number of lines or columns moved by one wheel notch.
const scrollStep = 3

type mouseState struct {
	pressed      bool
	last         time.Time
	lastX, lastY int
}

type pasteState struct {
	active bool
	text   strings.Builder
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the session should end.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
		return nil
	case backend.EventKey:
		if app.paste.active {
			app.pasteKey(ev.Binding)
			return nil
		}
		return app.handleKey(ev.Binding)
	case backend.EventMouse:
		app.handleMouse(ev)
		return nil
	case backend.EventPaste:
		app.handlePaste(ev.PasteStart)
		return nil
	case backend.EventInterrupt:
		if fe, ok := ev.Data.(watcher.Event); ok {
			app.handleFileEvent(fe)
		}
		return nil
	default:
		return nil
	}
}

// handleKey runs the command bound to b.
func (app *Application) handleKey(b key.Binding) error {
	handled, err := app.table.Dispatch(app.ctx, b)
	app.msgIsError = err != nil
	switch {
	case err != nil:
		log.Error().Err(err).Stringer("key", b).Msg("command failed")
		app.ctx.Message = err.Error()
	case !handled:
		log.Debug().Stringer("key", b).Msg("unbound key")
	}

	if app.ctx.Quit || app.workspace.Len() == 0 {
		return ErrQuit
	}
	// Views created by the command need a size.
	app.resize(app.width, app.height)
	return nil
}

// handleMouse moves the cursor on clicks and drags and scrolls on the
// wheel.
func (app *Application) handleMouse(ev backend.Event) {
	v := app.workspace.Current()
	if v == nil {
		return
	}

	switch ev.MouseButton {
	case backend.MouseWheelUp:
		v.Scroll(0, scrollStep)
	case backend.MouseWheelDown:
		v.Scroll(0, -scrollStep)
	case backend.MouseWheelLeft:
		v.Scroll(scrollStep, 0)
	case backend.MouseWheelRight:
		v.Scroll(-scrollStep, 0)
	case backend.MouseLeft:
		app.click(v, ev)
	case backend.MouseNone:
		app.mouse.pressed = false
	}
}

func (app *Application) click(v *view.View, ev backend.Event) {
	if ev.MouseY >= app.height-1 {
		return
	}
	x, y := ev.MouseX*app.font.Advance(), ev.MouseY*app.font.LineHeight()

	if app.mouse.pressed {
		v.Click(x, y, true)
		return
	}
	app.mouse.pressed = true

	now := time.Now()
	double := now.Sub(app.mouse.last) < doubleClickTime &&
		ev.MouseX == app.mouse.lastX && ev.MouseY == app.mouse.lastY
	if double {
		v.DoubleClick(x, y)
		app.mouse.last = time.Time{}
		return
	}
	v.Click(x, y, ev.Mod.Has(key.ModShift))
	app.mouse.last = now
	app.mouse.lastX, app.mouse.lastY = ev.MouseX, ev.MouseY
}

// handlePaste collects a bracketed paste and inserts it as one edit.
func (app *Application) handlePaste(start bool) {
	if start {
		app.paste.active = true
		app.paste.text.Reset()
		return
	}
	app.paste.active = false
	text := app.paste.text.String()
	app.paste.text.Reset()

	v := app.workspace.Current()
	if v == nil || text == "" {
		return
	}
	v.Insert(text)
	app.workspace.SyncFrom(v)
}

func (app *Application) pasteKey(b key.Binding) {
	switch {
	case b.Key == key.KeyEnter:
		lf := "\n"
		if v := app.workspace.Current(); v != nil {
			lf = v.Linefeed().Sequence()
		}
		app.paste.text.WriteString(lf)
	case b.Key == key.KeyTab && b.Modifiers == key.ModNone:
		app.paste.text.WriteByte('\t')
	case b.IsText():
		app.paste.text.WriteRune(b.Rune)
	}
}

// handleFileEvent reloads or flags a file changed by another program.
func (app *Application) handleFileEvent(ev watcher.Event) {
	if ev.Op == watcher.OpRemove {
		log.Info().Str("path", ev.Path).Msg("file removed on disk")
		return
	}
	reloaded, err := app.workspace.Reload(ev.Path)
	if err != nil {
		if !errors.Is(err, textstore.ErrNotFound) {
			log.Warn().Err(err).Str("path", ev.Path).Msg("reload failed")
		}
		return
	}
	if reloaded {
		log.Info().Str("path", ev.Path).Msg("reloaded file")
	}
}
