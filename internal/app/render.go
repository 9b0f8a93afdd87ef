package app

import (
	"github.com/dshills/ropedit/internal/renderer/backend"
	"github.com/dshills/ropedit/internal/renderer/display"
	"github.com/dshills/ropedit/internal/renderer/statusline"
)

// render draws the current view and the status line and places the
// terminal cursor.
func (app *Application) render() {
	b := app.backend
	v := app.workspace.Current()
	rows := max(app.height-1, 1)

	app.list.Reset()
	app.list.Add(display.Clear{Color: app.theme.Background})
	if v != nil {
		v.Draw(&app.list)
	}
	backend.NewPainter(b, app.font, 0, 0, app.width, rows).Replay(&app.list)

	app.updateStatus()
	app.status.Render(b, app.height-1)

	if v != nil {
		vp := v.Viewport()
		line, col := v.LineIdx(), v.ColIdx()
		if vp.Contains(line, col) {
			b.ShowCursor(col-vp.ColStart(), line-vp.LineStart())
		} else {
			b.HideCursor()
		}
	}
	b.Show()
}

// renderPrompt draws the status line as an input field.
func (app *Application) renderPrompt(label string, input []rune) {
	app.status.Resize(app.width)
	app.status.SetPrompt(label, input)
	app.status.Render(app.backend, app.height-1)
	app.status.SetPrompt("", nil)
	app.backend.Show()
}

// updateStatus copies the state of the current view to the status line.
func (app *Application) updateStatus() {
	s := app.status
	s.Resize(app.width)
	s.SetViews(app.workspace.Len())

	msgType := statusline.MessageInfo
	if app.msgIsError {
		msgType = statusline.MessageError
	}
	if app.ctx.Message == "" {
		s.ClearMessage()
	} else {
		s.SetMessage(app.ctx.Message, msgType)
	}

	v := app.workspace.Current()
	if v == nil {
		return
	}
	s.SetFilename(v.Name())
	s.SetModified(v.IsDirty())
	s.SetChangedOnDisk(app.workspace.ChangedOnDisk(v))
	s.SetPosition(v.LineIdx()+1, v.ColIdx()+1)

	syntax := v.Syntax()
	if syntax == "" {
		syntax = "plain"
	}
	s.SetFormat(v.Encoding(), v.Linefeed().String(), v.Indentation().String(), syntax)
}
