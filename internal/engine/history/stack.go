package history

import (
	"sync"
	"time"
)

// DefaultMaxEntries bounds a stack created with a non-positive limit.
const DefaultMaxEntries = 1000

// Kind tells how an entry entered the history.
type Kind uint8

const (
	// Applied is a state recorded before an edit.
	Applied Kind = iota

	// LiveTip is the unsaved live state recorded on the first undo from the tip.
	LiveTip
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Applied:
		return "applied"
	case LiveTip:
		return "live-tip"
	default:
		return "unknown"
	}
}

// Entry is one recorded state.
type Entry[S any] struct {
	Kind      Kind
	State     S
	Timestamp time.Time
}

// Info describes an entry without its state.
type Info struct {
	Kind      Kind
	Timestamp time.Time
}

// Stack is a bounded undo history over snapshots of type S.
type Stack[S any] struct {
	mu sync.Mutex

	entries []Entry[S]
	index   int

	maxEntries int
}

// NewStack creates a history keeping at most maxEntries entries.
func NewStack[S any](maxEntries int) *Stack[S] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Stack[S]{maxEntries: maxEntries}
}

// Push records the state before an edit. The redo tail is discarded.
func (h *Stack[S]) Push(s S) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.index], Entry[S]{
		Kind:      Applied,
		State:     s,
		Timestamp: time.Now(),
	})
	h.index++
	h.trimLocked()
}

// CaptureTip records the live state ahead of the first undo from the tip.
// It does nothing unless the stack is at its tip with a non-empty history,
// and it never moves the index. It reports whether an entry was added.
func (h *Stack[S]) CaptureTip(s S) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index != len(h.entries) || len(h.entries) == 0 {
		return false
	}
	h.entries = append(h.entries, Entry[S]{
		Kind:      LiveTip,
		State:     s,
		Timestamp: time.Now(),
	})
	return true
}

// Undo steps back one entry and returns its state.
// Returns false if there is nothing to undo.
func (h *Stack[S]) Undo() (S, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == 0 {
		var zero S
		return zero, false
	}
	h.index--
	return h.entries[h.index].State, true
}

// Redo steps forward one entry and returns its state.
// Returns false if there is nothing to redo.
func (h *Stack[S]) Redo() (S, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index >= len(h.entries)-1 {
		var zero S
		return zero, false
	}
	h.index++
	return h.entries[h.index].State, true
}

// AtTip returns true if no entry lies past the index.
func (h *Stack[S]) AtTip() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index == len(h.entries)
}

// CanUndo returns true if undo is available.
func (h *Stack[S]) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index > 0
}

// CanRedo returns true if redo is available.
func (h *Stack[S]) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index < len(h.entries)-1
}

// Len returns the number of entries.
func (h *Stack[S]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Index returns the current position in the history.
func (h *Stack[S]) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

// Entries returns info about every entry, oldest first.
func (h *Stack[S]) Entries() []Info {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]Info, len(h.entries))
	for i, e := range h.entries {
		result[i] = Info{Kind: e.Kind, Timestamp: e.Timestamp}
	}
	return result
}

// Clear removes all history.
func (h *Stack[S]) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	h.index = 0
}

// SetMaxEntries changes the entry limit.
// If the history is larger, the oldest entries are removed.
func (h *Stack[S]) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	h.trimLocked()
}

// MaxEntries returns the entry limit.
func (h *Stack[S]) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

func (h *Stack[S]) trimLocked() {
	if len(h.entries) <= h.maxEntries {
		return
	}
	excess := len(h.entries) - h.maxEntries
	h.entries = append([]Entry[S](nil), h.entries[excess:]...)
	h.index = max(h.index-excess, 0)
}
