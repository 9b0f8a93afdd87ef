// Package textstore provides the document model shared by editor views.
//
// A Store wraps an immutable rope with the state an editor needs around it:
// the file it was loaded from, whether it has unsaved changes and the
// character encoding it was stored in on disk. Loading sniffs the encoding
// and decodes to UTF-8, replacing undecodable bytes with U+FFFD. Saving
// re-encodes to the same encoding and writes the file atomically.
//
// All offsets are character offsets. Line breaks are LF characters.
//
// Multiple views may hold the same *Store; every method is guarded by an
// internal RWMutex. A Registry tracks the open stores of a session and hands
// out the existing store when a path is opened twice.
package textstore
