// Package clipboard exchanges text with the system clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no system clipboard utility exists.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard holds one piece of text.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
}

// System is the clipboard of the desktop session.
type System struct{}

// Text returns the clipboard content.
func (System) Text() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// SetText replaces the clipboard content.
func (System) SetText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Memory is a clipboard local to the process.
type Memory struct {
	mu   sync.Mutex
	text string
}

// Text returns the stored text.
func (m *Memory) Text() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// SetText stores text.
func (m *Memory) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Default returns the system clipboard when one is available and a
// memory clipboard otherwise.
func Default() Clipboard {
	if clipboard.Unsupported {
		return &Memory{}
	}
	return System{}
}
