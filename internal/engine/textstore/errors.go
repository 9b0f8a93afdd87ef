package textstore

import "errors"

// Errors returned by store operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside [0, Len()].
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates a range whose end precedes its start.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrNoPath indicates a save was requested on a store with no file path.
	ErrNoPath = errors.New("no file path associated")

	// ErrNotFound indicates a registry lookup for an unknown store.
	ErrNotFound = errors.New("store not found")
)
