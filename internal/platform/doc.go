package platform

// Package platform contains OS/platform integration glue: application data
// directories, atomic file writes and the single-instance lock.
