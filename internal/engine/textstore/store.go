package textstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dshills/ropedit/internal/engine/rope"
)

// Untitled is the name of a store with no file path.
const Untitled = "untitled"

// Store is a mutable document backed by an immutable rope.
// All methods are thread-safe.
type Store struct {
	mu       sync.RWMutex
	id       uuid.UUID
	rope     rope.Rope
	path     string
	dirty    bool
	encoding Encoding

	// saved is the content as last loaded or saved.
	saved rope.Rope
}

// Option is a functional option for configuring a Store.
type Option func(*Store)

// WithPath associates a file path with the store.
func WithPath(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

// WithEncoding sets the encoding used when the store is saved.
func WithEncoding(e Encoding) Option {
	return func(s *Store) {
		s.encoding = e
	}
}

// New creates an empty, clean store.
func New(opts ...Option) *Store {
	s := &Store{
		id:       uuid.New(),
		rope:     rope.New(),
		encoding: UTF8,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.saved = s.rope
	return s
}

// FromString creates a clean store holding text.
func FromString(text string, opts ...Option) *Store {
	s := New(opts...)
	s.rope = rope.FromString(text)
	s.saved = s.rope
	return s
}

// FromBytes decodes raw file content into a clean store.
// The detected encoding is kept for saving.
func FromBytes(content []byte, opts ...Option) *Store {
	text, enc := Decode(content)
	s := New(append([]Option{WithEncoding(enc)}, opts...)...)
	s.rope = rope.FromString(text)
	s.saved = s.rope
	return s
}

// Load reads and decodes the file at path.
// Only I/O failures are reported; undecodable bytes become U+FFFD.
func Load(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s := FromBytes(content, WithPath(path))
	log.Debug().
		Str("path", path).
		Str("encoding", s.encoding.String()).
		Int("bytes", len(content)).
		Int("chars", s.rope.Len()).
		Msg("loaded file")
	return s, nil
}

// ID returns the store's identity.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Path returns the associated file path, or "" if there is none.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Name returns the base name of the file, or "untitled".
func (s *Store) Name() string {
	path := s.Path()
	if path == "" {
		return Untitled
	}
	return filepath.Base(path)
}

// Extension returns the file extension without the dot, or "".
func (s *Store) Extension() string {
	return strings.TrimPrefix(filepath.Ext(s.Path()), ".")
}

// IsDirty reports whether the store has unsaved changes.
func (s *Store) IsDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Encoding returns the encoding used when saving.
func (s *Store) Encoding() Encoding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.encoding
}

// Save writes the content to the associated path in the store's encoding.
// The file is replaced atomically. On failure the store stays dirty.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// SaveAs associates path with the store and saves to it.
func (s *Store) SaveAs(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if s.path == "" {
		return ErrNoPath
	}
	content := s.encoding.Encode(s.rope.String())
	if err := writeFileAtomic(s.path, content); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("save failed")
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.dirty = false
	s.saved = s.rope
	log.Debug().
		Str("path", s.path).
		Str("encoding", s.encoding.String()).
		Int("bytes", len(content)).
		Msg("saved file")
	return nil
}

// writeFileAtomic writes content to a temporary file next to path and
// renames it into place, keeping the mode of an existing file.
func writeFileAtomic(path string, content []byte) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Read operations

// Len returns the number of characters.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.Len()
}

// LineCount returns the number of lines, always at least 1.
func (s *Store) LineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.LineCount()
}

// String returns the full content.
func (s *Store) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.String()
}

// Slice returns the text in the character range [start, end), clamped.
func (s *Store) Slice(start, end int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.Slice(start, end)
}

// CharAt returns the character at offset.
func (s *Store) CharAt(offset int) (rune, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.CharAt(offset)
}

// Line returns the text of a line including its terminator.
func (s *Store) Line(line int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.Line(line)
}

// LineChars returns the characters of a line including its terminator.
func (s *Store) LineChars(line int) []rune {
	return []rune(s.Line(line))
}

// CharToLine returns the line containing offset.
func (s *Store) CharToLine(offset int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.CharToLine(offset)
}

// LineToChar returns the offset of the first character of line.
func (s *Store) LineToChar(line int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.LineToChar(line)
}

// LineLenNoEOL returns the number of characters on a line, excluding the
// trailing run of terminator characters.
func (s *Store) LineLenNoEOL(line int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lineLenNoEOL(s.rope.Line(line))
}

// LineToLastChar returns the offset just past the last content character of
// line. For the final line this is Len(): end of buffer counts as a position.
func (s *Store) LineToLastChar(line int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope.LineToChar(line) + lineLenNoEOL(s.rope.Line(line))
}

// IsEOLChar reports whether r is excluded from line content and column counts.
func IsEOLChar(r rune) bool {
	switch r {
	case '\n', '\r', 0, '\uFEFF', '\uFFFE':
		return true
	}
	return false
}

func lineLenNoEOL(text string) int {
	runes := []rune(text)
	n := len(runes)
	for n > 0 && IsEOLChar(runes[n-1]) {
		n--
	}
	return n
}

// Write operations

// Insert inserts text at offset and marks the store dirty.
func (s *Store) Insert(offset int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if offset < 0 || offset > s.rope.Len() {
		return fmt.Errorf("insert at %d: %w", offset, ErrOffsetOutOfRange)
	}
	if text == "" {
		return nil
	}
	s.rope = s.rope.Insert(offset, text)
	s.dirty = true
	return nil
}

// Remove deletes the character range [start, end) and marks the store dirty.
func (s *Store) Remove(start, end int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if end < start {
		return fmt.Errorf("remove [%d, %d): %w", start, end, ErrRangeInvalid)
	}
	if start < 0 || end > s.rope.Len() {
		return fmt.Errorf("remove [%d, %d): %w", start, end, ErrOffsetOutOfRange)
	}
	if start == end {
		return nil
	}
	s.rope = s.rope.Delete(start, end)
	s.dirty = true
	return nil
}

// Snapshot returns the current content. The rope is immutable, so the
// snapshot is unaffected by later edits.
func (s *Store) Snapshot() rope.Rope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rope
}

// Restore replaces the content with a snapshot. The store is clean only
// when the snapshot is the content as last loaded or saved.
func (s *Store) Restore(r rope.Rope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rope = r
	s.dirty = !r.Same(s.saved)
}

// Reload replaces the content with the file on disk and clears the dirty flag.
func (s *Store) Reload() error {
	path := s.Path()
	if path == "" {
		return ErrNoPath
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reload %s: %w", path, err)
	}
	text, enc := Decode(content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rope = rope.FromString(text)
	s.saved = s.rope
	s.encoding = enc
	s.dirty = false
	return nil
}
