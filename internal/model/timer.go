package model

import (
	"fmt"
	"strings"
)

// Timer fields used in validation errors
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldDuration  = "duration"
	FieldCategory  = "category"
	FieldRemaining = "remaining"
	FieldStatus    = "status"
)

// Timer represents a single named, categorized countdown.
// Duration and Remaining are whole seconds.
type Timer struct {
	ID        string
	Name      string
	Category  string
	Duration  int
	Remaining int
	Status    TimerStatus
}

// NewTimer creates a paused timer with a full countdown
func NewTimer(id, name, category string, duration int) Timer {
	return Timer{
		ID:        id,
		Name:      name,
		Category:  category,
		Duration:  duration,
		Remaining: duration,
		Status:    TimerStatusPaused,
	}
}

// Start moves a paused timer to running. It reports whether anything changed;
// completed timers ignore it.
func (t *Timer) Start() bool {
	return t.SetStatus(TimerStatusRunning)
}

// Pause moves a running timer to paused. It reports whether anything changed.
func (t *Timer) Pause() bool {
	return t.SetStatus(TimerStatusPaused)
}

// SetStatus applies a user-requested status. Only running and paused are
// accepted, and a completed timer stays completed until Reset.
func (t *Timer) SetStatus(status TimerStatus) bool {
	if !status.IsSettable() || t.Status.IsFinished() || t.Status == status {
		return false
	}
	t.Status = status
	return true
}

// Reset restores the full countdown and pauses the timer
func (t *Timer) Reset() bool {
	if t.Remaining == t.Duration && t.Status == TimerStatusPaused {
		return false
	}
	t.Remaining = t.Duration
	t.Status = TimerStatusPaused
	return true
}

// Tick advances a running timer by one unit. A running timer already at zero
// completes on this tick and completed is returned as true exactly once.
func (t *Timer) Tick() (changed bool, completed bool) {
	if !t.Status.IsActive() {
		return false, false
	}
	if t.Remaining > 0 {
		t.Remaining--
		return true, false
	}
	t.Status = TimerStatusCompleted
	return true, true
}

// Progress returns the elapsed fraction of the countdown, 0.0 to 1.0
func (t Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	progress := float64(t.Duration-t.Remaining) / float64(t.Duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// RemainingString returns remaining time formatted as mm:ss, or hh:mm:ss once
// it exceeds an hour
func (t Timer) RemainingString() string {
	return FormatSeconds(t.Remaining)
}

// FormatSeconds formats a non-negative second count as mm:ss or hh:mm:ss
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Validate checks the timer invariants
func (t Timer) Validate() error {
	if t.ID == "" {
		return NewValidationError(FieldID, "is empty")
	}
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError(FieldName, "is empty")
	}
	if strings.TrimSpace(t.Category) == "" {
		return NewValidationError(FieldCategory, "is empty")
	}
	if t.Duration < 1 {
		return NewValidationError(FieldDuration, fmt.Sprintf("must be at least 1, got %d", t.Duration))
	}
	if t.Remaining < 0 || t.Remaining > t.Duration {
		return NewValidationError(FieldRemaining, fmt.Sprintf("%d is outside [0, %d]", t.Remaining, t.Duration))
	}
	if !t.Status.IsValid() {
		return NewValidationError(FieldStatus, fmt.Sprintf("unknown status %q", t.Status))
	}
	if t.Status.IsFinished() && t.Remaining != 0 {
		return NewValidationError(FieldRemaining, "completed timer must have zero remaining")
	}
	return nil
}
