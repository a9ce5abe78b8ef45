package model

import (
	"fmt"
	"time"
)

// CompletionTitle is the alert title shown for a CompletionEvent
const CompletionTitle = "Timer Completed"

// CompletionEvent is emitted once when a running timer reaches zero
type CompletionEvent struct {
	TimerID  string
	Name     string
	Category string
	At       time.Time
}

// NewCompletionEvent builds the event for a timer that just completed
func NewCompletionEvent(timer Timer, at time.Time) CompletionEvent {
	return CompletionEvent{
		TimerID:  timer.ID,
		Name:     timer.Name,
		Category: timer.Category,
		At:       at,
	}
}

// Message returns the human-readable alert text
func (e CompletionEvent) Message() string {
	return fmt.Sprintf("%s has finished!", e.Name)
}
