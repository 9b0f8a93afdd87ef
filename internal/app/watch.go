package app

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dshills/ropedit/internal/config/watcher"
	"github.com/dshills/ropedit/internal/renderer/backend"
)

// watchDebounce coalesces the bursts of events a single save produces.
const watchDebounce = 100 * time.Millisecond

// startWatcher watches the files of the open views. Changes are posted to
// the backend and handled on the event loop.
func (app *Application) startWatcher() error {
	w, err := watcher.New(watcher.WithDebounce(watchDebounce))
	if err != nil {
		return err
	}
	b := app.backend
	w.OnChange(func(ev watcher.Event) {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: ev})
	})
	w.Start()
	app.watcher = w
	app.syncWatches()
	return nil
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		log.Warn().Err(err).Msg("closing watcher")
	}
	app.watcher = nil
}

// syncWatches makes the watched set match the files of the open views.
func (app *Application) syncWatches() {
	if app.watcher == nil {
		return
	}

	want := make(map[string]bool)
	for _, v := range app.workspace.Views() {
		path := v.Store().Path()
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			want[abs] = true
		}
	}

	for _, path := range app.watcher.WatchedFiles() {
		if want[path] {
			delete(want, path)
			continue
		}
		if err := app.watcher.Unwatch(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("unwatch failed")
		}
	}
	for path := range want {
		if err := app.watcher.Watch(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("watch failed")
		}
	}
}
