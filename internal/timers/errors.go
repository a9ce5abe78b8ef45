package timers

import "errors"

var (
	// ErrCorruptCollection is returned by Load when the persisted blob cannot
	// be decoded. The store falls back to an empty collection.
	ErrCorruptCollection = errors.New("persisted timer collection is corrupt")

	// ErrInvalidStatus is returned when a status other than running or paused
	// is requested directly.
	ErrInvalidStatus = errors.New("status must be running or paused")

	// ErrStoreClosed is returned by Flush after Close.
	ErrStoreClosed = errors.New("timer store is closed")
)
