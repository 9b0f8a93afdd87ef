package textstore

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type entry struct {
	store *Store
	refs  int
}

// Registry tracks the open stores of an editing session.
// Stores are reference counted: each view holding a store retains it and
// releases it when closed.
type Registry struct {
	mu     sync.RWMutex
	stores map[uuid.UUID]*entry
	paths  map[string]uuid.UUID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[uuid.UUID]*entry),
		paths:  make(map[string]uuid.UUID),
	}
}

// Create registers a new empty store with one reference.
func (r *Registry) Create(opts ...Option) *Store {
	s := New(opts...)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[s.ID()] = &entry{store: s, refs: 1}
	return s
}

// Open returns the store for path, loading it on first use.
// A path that does not exist yet yields an empty store bound to it.
// Every successful call adds a reference.
func (r *Registry) Open(path string) (*Store, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.paths[key]; ok {
		e := r.stores[id]
		e.refs++
		return e.store, nil
	}

	s, err := Load(key)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", key).Msg("opening new file")
		s, err = New(WithPath(key)), nil
	}
	if err != nil {
		return nil, err
	}

	r.stores[s.ID()] = &entry{store: s, refs: 1}
	r.paths[key] = s.ID()
	return s, nil
}

// Get returns the store with the given id.
func (r *Registry) Get(id uuid.UUID) (*Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.stores[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.store, nil
}

// Lookup returns the open store for path, if any.
func (r *Registry) Lookup(path string) (*Store, bool) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.paths[key]
	if !ok {
		return nil, false
	}
	return r.stores[id].store, true
}

// Retain adds a reference to the store with the given id.
func (r *Registry) Retain(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.stores[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.refs++
	return nil
}

// Release drops a reference and forgets the store when none remain.
// It reports whether the store was removed.
func (r *Registry) Release(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.stores[id]
	if !ok {
		return false
	}
	e.refs--
	if e.refs > 0 {
		return false
	}
	delete(r.stores, id)
	for path, pid := range r.paths {
		if pid == id {
			delete(r.paths, path)
		}
	}
	return true
}

// Rebind records that a store is now saved under a new path.
func (r *Registry) Rebind(s *Store) {
	key, err := filepath.Abs(s.Path())
	if err != nil || s.Path() == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for path, id := range r.paths {
		if id == s.ID() {
			delete(r.paths, path)
		}
	}
	r.paths[key] = s.ID()
}

// Len returns the number of open stores.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}

// Paths returns the file paths of all open stores, sorted.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.paths))
	for path := range r.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
