package timers

// Package timers implements the authoritative timer collection: creation,
// deletion, start/pause/reset in single and per-category bulk form, the
// per-tick advance pass, and full-collection persistence through a storage
// backend. One mutex guards the collection; persistence is written by a
// single background writer so callers and the tick never wait on I/O.
