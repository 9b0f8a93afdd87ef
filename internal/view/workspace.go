package view

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/dshills/ropedit/internal/engine/textstore"
)

// Workspace is the ordered set of views of an editing session. Views on
// the same file share one store.
type Workspace struct {
	registry *textstore.Registry
	views    []*View
	current  int
	opts     []Option

	// changedOnDisk holds the stores whose file changed while they had
	// unsaved edits.
	changedOnDisk map[*textstore.Store]bool
}

// NewWorkspace creates an empty workspace. opts are applied to every view
// it creates.
func NewWorkspace(opts ...Option) *Workspace {
	return &Workspace{
		registry:      textstore.NewRegistry(),
		opts:          opts,
		changedOnDisk: make(map[*textstore.Store]bool),
	}
}

// Registry returns the store registry.
func (w *Workspace) Registry() *textstore.Registry {
	return w.registry
}

// Len returns the number of views.
func (w *Workspace) Len() int {
	return len(w.views)
}

// Views returns the views in order.
func (w *Workspace) Views() []*View {
	return w.views
}

// Current returns the focused view, or nil if there is none.
func (w *Workspace) Current() *View {
	if len(w.views) == 0 {
		return nil
	}
	return w.views[w.current]
}

func (w *Workspace) add(v *View) *View {
	if len(w.views) == 0 {
		w.views = append(w.views, v)
		w.current = 0
		return v
	}
	w.current++
	w.views = append(w.views[:w.current], append([]*View{v}, w.views[w.current:]...)...)
	return v
}

// NewBuffer opens a view on a new untitled store.
func (w *Workspace) NewBuffer() *View {
	return w.add(New(w.registry.Create(), w.opts...))
}

// Open opens a view on path. A file that is already open is not read
// again; the new view shares its store.
func (w *Workspace) Open(path string) (*View, error) {
	s, err := w.registry.Open(path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", s.Path()).Str("encoding", s.Encoding().String()).Msg("opened file")
	return w.add(New(s, w.opts...)), nil
}

// Split opens a second view on the store of the current view.
func (w *Workspace) Split() (*View, error) {
	cur := w.Current()
	if cur == nil {
		return w.NewBuffer(), nil
	}
	if err := w.registry.Retain(cur.Store().ID()); err != nil {
		return nil, err
	}
	v := New(cur.Store(), w.opts...)
	v.SetIndex(cur.Offset())
	return w.add(v), nil
}

// Next focuses the following view, wrapping around.
func (w *Workspace) Next() *View {
	if len(w.views) == 0 {
		return nil
	}
	w.current = (w.current + 1) % len(w.views)
	return w.views[w.current]
}

// Prev focuses the preceding view, wrapping around.
func (w *Workspace) Prev() *View {
	if len(w.views) == 0 {
		return nil
	}
	w.current = (w.current - 1 + len(w.views)) % len(w.views)
	return w.views[w.current]
}

// Close removes the current view and releases its store. It returns the
// closed view, or nil when there was none.
func (w *Workspace) Close() *View {
	v := w.Current()
	if v == nil {
		return nil
	}
	w.views = append(w.views[:w.current], w.views[w.current+1:]...)
	if w.current >= len(w.views) && w.current > 0 {
		w.current--
	}
	if w.registry.Release(v.Store().ID()) {
		delete(w.changedOnDisk, v.Store())
	}
	return v
}

// SyncFrom brings every other view on the store of edited up to date.
// They are restyled from the first line changed by the latest edit.
func (w *Workspace) SyncFrom(edited *View) {
	for _, v := range w.views {
		if v != edited && v.Store() == edited.Store() {
			v.Sync(edited.editLine)
		}
	}
}

// Save saves the current view and records a new path in the registry.
func (w *Workspace) Save(prompter PathPrompter) error {
	v := w.Current()
	if v == nil {
		return nil
	}
	if err := v.Save(prompter); err != nil {
		return err
	}
	w.registry.Rebind(v.Store())
	delete(w.changedOnDisk, v.Store())
	for _, other := range w.views {
		if other != v && other.Store() == v.Store() {
			other.DetectSyntax()
		}
	}
	return nil
}

// Dirty reports whether any store has unsaved changes.
func (w *Workspace) Dirty() bool {
	for _, v := range w.views {
		if v.IsDirty() {
			return true
		}
	}
	return false
}

// ChangedOnDisk reports whether the file of v changed while v had unsaved
// edits.
func (w *Workspace) ChangedOnDisk(v *View) bool {
	return w.changedOnDisk[v.Store()]
}

// Reload handles a change of path on disk. A clean store is reloaded and
// its views synced; a dirty store is only flagged. It reports whether the
// content was reloaded.
func (w *Workspace) Reload(path string) (bool, error) {
	s, ok := w.registry.Lookup(path)
	if !ok {
		return false, fmt.Errorf("%w: %s", textstore.ErrNotFound, filepath.Base(path))
	}
	if s.IsDirty() {
		w.changedOnDisk[s] = true
		log.Warn().Str("path", s.Path()).Msg("file changed on disk with unsaved edits")
		return false, nil
	}
	if err := s.Reload(); err != nil {
		return false, err
	}
	delete(w.changedOnDisk, s)
	for _, v := range w.views {
		if v.Store() == s {
			v.Sync(0)
			v.DetectLinefeed()
			v.DetectIndentation()
		}
	}
	log.Info().Str("path", s.Path()).Msg("reloaded file")
	return true, nil
}
