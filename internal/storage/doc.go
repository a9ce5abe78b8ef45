package storage

// Package storage implements the key-value persistence collaborator used by
// the timer store. Every backend holds opaque string values under string keys;
// the timer collection is one such value.
