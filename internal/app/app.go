// Package app runs an editing session on a character-cell backend. It
// wires the workspace, the command table, the clipboard and the file
// watcher together and owns the main event loop.
package app

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/dshills/ropedit/internal/clipboard"
	"github.com/dshills/ropedit/internal/commands"
	"github.com/dshills/ropedit/internal/config"
	"github.com/dshills/ropedit/internal/config/watcher"
	"github.com/dshills/ropedit/internal/renderer/backend"
	"github.com/dshills/ropedit/internal/renderer/display"
	"github.com/dshills/ropedit/internal/renderer/highlight"
	"github.com/dshills/ropedit/internal/renderer/statusline"
	"github.com/dshills/ropedit/internal/view"
)

// Application is one editing session.
type Application struct {
	mu sync.Mutex

	settings  config.Settings
	theme     *highlight.Theme
	font      display.Font
	workspace *view.Workspace
	table     *commands.Table
	ctx       *commands.Context
	backend   backend.Backend
	watcher   *watcher.Watcher
	list      display.List
	status    *statusline.StatusLine

	// msgIsError marks the status message as a command failure.
	msgIsError bool

	width, height int

	mouse mouseState
	paste pasteState

	// deferred holds events that arrived while a prompt was open.
	deferred []backend.Event

	running atomic.Bool
	done    chan struct{}
	once    sync.Once
}

// Options configures the application.
type Options struct {
	// Settings are the user settings. The zero value selects
	// config.Default.
	Settings *config.Settings

	// Files are opened on startup. Without files an untitled buffer is
	// created.
	Files []string

	// Clipboard serves Cut, Copy and Paste. Nil selects clipboard.Default.
	Clipboard clipboard.Clipboard
}

// New creates an application and opens the startup files. Files that
// cannot be opened are logged and skipped.
func New(opts Options) (*Application, error) {
	settings := config.Default()
	if opts.Settings != nil {
		settings = *opts.Settings
	}
	if err := settings.Validate(); err != nil {
		return nil, &InitError{Component: "settings", Err: err}
	}

	theme, ok := highlight.LookupTheme(settings.Theme)
	if !ok {
		log.Warn().Str("theme", settings.Theme).Msg("unknown theme, using default")
		theme = highlight.DefaultTheme()
	}

	table, err := commands.Default(settings)
	if err != nil {
		return nil, &InitError{Component: "commands", Err: err}
	}

	cb := opts.Clipboard
	if cb == nil {
		cb = clipboard.Default()
	}

	app := &Application{
		settings: settings,
		theme:    theme,
		font:     display.NewFont("cell", settings.Font.Advance, settings.Font.LineHeight),
		table:    table,
		status:   statusline.New(theme.Background, theme.Foreground),
		done:     make(chan struct{}),
	}
	app.workspace = view.NewWorkspace(
		view.WithTabSize(settings.TabSize),
		view.WithTheme(theme),
		view.WithMaxUndoEntries(settings.MaxUndo),
		view.WithPageOverlap(settings.PageOverlap),
	)
	app.ctx = &commands.Context{
		Workspace: app.workspace,
		Clipboard: cb,
		Prompter:  view.PathPrompterFunc(app.promptPath),
	}

	for _, path := range opts.Files {
		if _, err := app.workspace.Open(path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("open failed")
			app.ctx.Message = err.Error()
		}
	}
	if app.workspace.Len() == 0 {
		app.workspace.NewBuffer()
	}
	return app, nil
}

// SetBackend sets the surface the session runs on.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and processes events until the session
// ends. A normal end returns nil.
func (app *Application) Run() error {
	if app.backend == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	if app.settings.Watch {
		if err := app.startWatcher(); err != nil {
			log.Warn().Err(err).Msg("file watching disabled")
		}
	}
	defer app.stopWatcher()

	w, h := app.backend.Size()
	app.resize(w, h)
	return app.eventLoop()
}

// Shutdown ends the session. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.once.Do(func() {
		close(app.done)
		if app.backend != nil {
			app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
		}
	})
}

// IsRunning reports whether Run is processing events.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Workspace returns the views of the session.
func (app *Application) Workspace() *view.Workspace {
	return app.workspace
}

// Message returns the current status line message.
func (app *Application) Message() string {
	return app.ctx.Message
}

// eventLoop polls the backend until a quit command or Shutdown.
func (app *Application) eventLoop() error {
	app.render()
	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			if err == ErrQuit {
				return nil
			}
			return err
		}
		for len(app.deferred) > 0 {
			next := app.deferred[0]
			app.deferred = app.deferred[1:]
			if err := app.handleBackendEvent(next); err == ErrQuit {
				return nil
			}
		}
		app.syncWatches()
		app.render()
	}
}

// resize lays out every view for a surface of w by h cells. The last row
// holds the status line.
func (app *Application) resize(w, h int) {
	app.width, app.height = w, h
	rows := max(h-1, 1)
	for _, v := range app.workspace.Views() {
		v.Relayout(w*app.font.Advance(), rows*app.font.LineHeight(), app.font)
	}
}
