package app

import (
	"github.com/dshills/ropedit/internal/input/key"
	"github.com/dshills/ropedit/internal/renderer/backend"
)

const promptLabel = "File: "

// promptPath asks for a file name on the status line. It runs its own
// event loop until Return or Escape; events it cannot handle are replayed
// after the current command.
func (app *Application) promptPath(suggested string) (string, bool) {
	if app.backend == nil {
		return "", false
	}
	input := []rune(suggested)
	for {
		app.renderPrompt(promptLabel, input)

		select {
		case <-app.done:
			return "", false
		default:
		}

		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			b := ev.Binding
			switch {
			case b.Key == key.KeyEnter:
				return string(input), len(input) > 0
			case b.Key == key.KeyEscape, b == key.NewRuneBinding('g', key.ModCtrl):
				return "", false
			case b == key.NewRuneBinding('u', key.ModCtrl):
				input = input[:0]
			case b.Key == key.KeyBackspace:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case b.IsText():
				input = append(input, b.Rune)
			}
		case backend.EventResize:
			app.resize(ev.Width, ev.Height)
		case backend.EventInterrupt:
			if ev.Data == nil {
				// Shutdown
				return "", false
			}
			app.deferred = append(app.deferred, ev)
		}
	}
}
