package timers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/timerbox/internal/model"
	"github.com/ytget/timerbox/internal/storage"
)

// Store defaults
const (
	DefaultKey          = "timers"
	CorruptSuffix       = ".corrupt"
	DefaultWriteTimeout = 5 * time.Second
)

// Options configures a Store. Zero values select the defaults.
type Options struct {
	// Key is the storage key holding the serialized collection
	Key string

	// NewID generates timer ids; defaults to UUIDv7 strings. Repeated
	// collisions fall back to a numeric suffix on the last id drawn.
	NewID func() string

	// Now stamps completion events; defaults to time.Now
	Now func() time.Time

	// OnPersistError is called from the writer goroutine when a write fails
	OnPersistError func(error)

	// WriteTimeout bounds a single backend write
	WriteTimeout time.Duration
}

// pendingWrite is the latest collection state waiting to be persisted
type pendingWrite struct {
	data   string
	remove bool
}

// Store owns the timer collection
type Store struct {
	mu       sync.Mutex
	timers   []model.Timer
	onUpdate func([]model.Timer) // callback for UI updates

	backend        storage.Backend
	key            string
	newID          func() string
	now            func() time.Time
	onPersistError func(error)
	writeTimeout   time.Duration

	pendingMu sync.Mutex
	pending   *pendingWrite
	closed    bool

	wake      chan struct{}
	flushCh   chan chan error
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// NewStore creates an empty store backed by backend and starts its writer.
// Call Load to read the persisted collection and Close on shutdown.
func NewStore(backend storage.Backend, options Options) *Store {
	if options.Key == "" {
		options.Key = DefaultKey
	}
	if options.NewID == nil {
		options.NewID = generateTimerID
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.WriteTimeout <= 0 {
		options.WriteTimeout = DefaultWriteTimeout
	}

	s := &Store{
		timers:         make([]model.Timer, 0),
		backend:        backend,
		key:            options.Key,
		newID:          options.NewID,
		now:            options.Now,
		onPersistError: options.OnPersistError,
		writeTimeout:   options.WriteTimeout,
		wake:           make(chan struct{}, 1),
		flushCh:        make(chan chan error),
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
	go s.runWriter()
	return s
}

// SetUpdateCallback sets the function called with a snapshot after every change
func (s *Store) SetUpdateCallback(callback func([]model.Timer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Load replaces the in-memory collection with the persisted one. A missing
// key loads an empty collection without error. An undecodable blob is copied
// to <key>.corrupt, the collection starts empty, and an error wrapping
// ErrCorruptCollection is returned.
func (s *Store) Load(ctx context.Context) ([]model.Timer, error) {
	raw, exists, err := s.backend.Get(ctx, s.key)
	if err != nil {
		s.replace(nil)
		return []model.Timer{}, fmt.Errorf("read %s: %w", s.key, err)
	}
	if !exists {
		log.Printf("no saved timers under %q", s.key)
		return s.replace(nil), nil
	}

	timers, report, err := Decode(raw, s.newID)
	if err != nil {
		backupKey := s.key + CorruptSuffix
		if backupErr := s.backend.Set(ctx, backupKey, raw); backupErr != nil {
			log.Printf("saved timers are corrupt and could not be backed up: %v", backupErr)
		} else {
			log.Printf("saved timers are corrupt, original kept under %q", backupKey)
		}
		s.replace(nil)
		return []model.Timer{}, err
	}

	if !report.Clean() {
		log.Printf("loaded timers with fixes: %s", report)
	}
	return s.replace(timers), nil
}

// replace swaps the collection without persisting; used by Load only
func (s *Store) replace(timers []model.Timer) []model.Timer {
	s.mu.Lock()
	if timers == nil {
		timers = make([]model.Timer, 0)
	}
	s.timers = timers
	snapshot := cloneTimers(s.timers)
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
	return cloneTimers(snapshot)
}

// Add validates the form input and appends a new paused timer
func (s *Store) Add(name, duration, category string) (model.Timer, error) {
	if strings.TrimSpace(name) == "" {
		return model.Timer{}, model.NewValidationError(model.FieldName, "is required")
	}
	seconds, err := ParseDuration(duration)
	if err != nil {
		return model.Timer{}, err
	}
	if strings.TrimSpace(category) == "" {
		return model.Timer{}, model.NewValidationError(model.FieldCategory, "is required")
	}

	var timer model.Timer
	s.mutate(func() {
		id := uniqueID(s.hasIDLocked, s.newID)
		timer = model.NewTimer(id, name, category, seconds)
		s.timers = append(s.timers, timer)
	})

	log.Printf("added timer %s %q in %q (%ds)", timer.ID, timer.Name, timer.Category, timer.Duration)
	return timer, nil
}

// Delete removes the timer with id; a missing id is a no-op
func (s *Store) Delete(id string) {
	s.mutate(func() {
		for i, timer := range s.timers {
			if timer.ID == id {
				s.timers = append(s.timers[:i], s.timers[i+1:]...)
				return
			}
		}
	})
}

// ClearAll empties the collection and removes the persisted key
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.timers = make([]model.Timer, 0)
	s.enqueue(pendingWrite{remove: true})
	snapshot := cloneTimers(s.timers)
	callback := s.onUpdate
	s.mu.Unlock()

	log.Printf("cleared all timers")
	if callback != nil {
		callback(snapshot)
	}
}

// Get returns a copy of the timer with id
func (s *Store) Get(id string) (model.Timer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, timer := range s.timers {
		if timer.ID == id {
			return timer, true
		}
	}
	return model.Timer{}, false
}

// Timers returns a copy of the collection in insertion order
func (s *Store) Timers() []model.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTimers(s.timers)
}

// ListByCategory returns the collection grouped by category
func (s *Store) ListByCategory() []model.CategoryGroup {
	return model.GroupByCategory(s.Timers())
}

// DistinctCategories returns "All" followed by each category in first-seen order
func (s *Store) DistinctCategories() []string {
	return model.DistinctCategories(s.Timers())
}

// SetStatus sets a timer to running or paused. Remaining time is untouched
// and a completed timer stays completed.
func (s *Store) SetStatus(id string, status model.TimerStatus) error {
	if !status.IsSettable() {
		return fmt.Errorf("%w: got %q", ErrInvalidStatus, status)
	}
	s.mutate(func() {
		s.applyLocked(func(t model.Timer) bool { return t.ID == id }, func(t *model.Timer) {
			t.SetStatus(status)
		})
	})
	return nil
}

// Start sets the timer with id running
func (s *Store) Start(id string) {
	_ = s.SetStatus(id, model.TimerStatusRunning)
}

// Pause sets the timer with id paused
func (s *Store) Pause(id string) {
	_ = s.SetStatus(id, model.TimerStatusPaused)
}

// Reset restores the full duration and pauses the timer with id
func (s *Store) Reset(id string) {
	s.mutate(func() {
		s.applyLocked(func(t model.Timer) bool { return t.ID == id }, func(t *model.Timer) {
			t.Reset()
		})
	})
}

// BulkSetStatus applies SetStatus to every timer in category
func (s *Store) BulkSetStatus(category string, status model.TimerStatus) error {
	if !status.IsSettable() {
		return fmt.Errorf("%w: got %q", ErrInvalidStatus, status)
	}
	s.mutate(func() {
		s.applyLocked(inCategory(category), func(t *model.Timer) {
			t.SetStatus(status)
		})
	})
	return nil
}

// StartAll sets every timer in category running
func (s *Store) StartAll(category string) {
	_ = s.BulkSetStatus(category, model.TimerStatusRunning)
}

// PauseAll pauses every timer in category
func (s *Store) PauseAll(category string) {
	_ = s.BulkSetStatus(category, model.TimerStatusPaused)
}

// BulkReset resets every timer in category
func (s *Store) BulkReset(category string) {
	s.mutate(func() {
		s.applyLocked(inCategory(category), func(t *model.Timer) {
			t.Reset()
		})
	})
}

// Advance applies one tick to every timer under a single lock and returns a
// completion event for each timer that completed on this tick. The collection
// is persisted only when something changed.
func (s *Store) Advance() []model.CompletionEvent {
	s.mu.Lock()
	now := s.now()
	changed := false
	var events []model.CompletionEvent

	for i := range s.timers {
		timerChanged, completed := s.timers[i].Tick()
		if timerChanged {
			changed = true
		}
		if completed {
			events = append(events, model.NewCompletionEvent(s.timers[i], now))
		}
	}

	if !changed {
		s.mu.Unlock()
		return events
	}

	s.persistLocked()
	snapshot := cloneTimers(s.timers)
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
	return events
}

// Flush blocks until every change made before the call is written
func (s *Store) Flush(ctx context.Context) error {
	done := make(chan error, 1)
	select {
	case s.flushCh <- done:
	case <-s.doneCh:
		return ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes any pending change and stops the writer. The backend is
// left open; its owner closes it.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.pendingMu.Lock()
		s.closed = true
		s.pendingMu.Unlock()

		close(s.stopCh)
		<-s.doneCh
	})
	return nil
}

// mutate runs fn under the lock, then queues a full-collection write and
// notifies the update callback with a snapshot
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	s.persistLocked()
	snapshot := cloneTimers(s.timers)
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// applyLocked runs change on every timer matching match
func (s *Store) applyLocked(match func(model.Timer) bool, change func(*model.Timer)) {
	for i := range s.timers {
		if match(s.timers[i]) {
			change(&s.timers[i])
		}
	}
}

func (s *Store) hasIDLocked(id string) bool {
	for _, timer := range s.timers {
		if timer.ID == id {
			return true
		}
	}
	return false
}

// persistLocked serializes the collection and hands it to the writer. It
// runs under s.mu so queued states keep mutation order.
func (s *Store) persistLocked() {
	data, err := Encode(s.timers)
	if err != nil {
		s.reportPersistError(err)
		return
	}
	s.enqueue(pendingWrite{data: data})
}

// enqueue replaces any unwritten state with w and wakes the writer
func (s *Store) enqueue(w pendingWrite) {
	s.pendingMu.Lock()
	if s.closed {
		s.pendingMu.Unlock()
		log.Printf("timer store closed, change to %q not persisted", s.key)
		return
	}
	s.pending = &w
	s.pendingMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store) runWriter() {
	defer close(s.doneCh)
	for {
		select {
		case <-s.wake:
			_ = s.writePending()
		case done := <-s.flushCh:
			done <- s.writePending()
		case <-s.stopCh:
			_ = s.writePending()
			return
		}
	}
}

// writePending writes the latest queued state, if any
func (s *Store) writePending() error {
	s.pendingMu.Lock()
	w := s.pending
	s.pending = nil
	s.pendingMu.Unlock()

	if w == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	var err error
	if w.remove {
		err = s.backend.Delete(ctx, s.key)
	} else {
		err = s.backend.Set(ctx, s.key, w.data)
	}
	if err != nil {
		err = fmt.Errorf("persist %s: %w", s.key, err)
		s.reportPersistError(err)
	}
	return err
}

func (s *Store) reportPersistError(err error) {
	log.Printf("persisting timers failed: %v", err)
	if s.onPersistError != nil {
		s.onPersistError(err)
	}
}

// ParseDuration parses the duration form field: a whole number of seconds,
// or a Go duration string such as "90s" or "2m" that is a whole number of
// seconds
func ParseDuration(input string) (int, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return 0, model.NewValidationError(model.FieldDuration, "is required")
	}

	if seconds, err := strconv.Atoi(text); err == nil {
		if seconds < 1 {
			return 0, model.NewValidationError(model.FieldDuration, "must be at least 1 second")
		}
		return seconds, nil
	}

	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, model.NewValidationError(model.FieldDuration, fmt.Sprintf("%q is not a number of seconds", input))
	}
	if d%time.Second != 0 {
		return 0, model.NewValidationError(model.FieldDuration, "must be a whole number of seconds")
	}
	if d < time.Second {
		return 0, model.NewValidationError(model.FieldDuration, "must be at least 1 second")
	}
	return int(d / time.Second), nil
}

func inCategory(category string) func(model.Timer) bool {
	return func(t model.Timer) bool {
		return t.Category == category
	}
}

func cloneTimers(timers []model.Timer) []model.Timer {
	out := make([]model.Timer, len(timers))
	copy(out, timers)
	return out
}

// generateTimerID returns a time-ordered unique id
func generateTimerID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
