package model

// TimerStatus represents the status of a countdown timer
type TimerStatus string

const (
	// TimerStatusPaused means the timer is not counting down
	TimerStatusPaused TimerStatus = "paused"

	// TimerStatusRunning means the timer loses one unit on every tick
	TimerStatusRunning TimerStatus = "running"

	// TimerStatusCompleted means the timer reached zero while running.
	// Only Reset leaves this state.
	TimerStatusCompleted TimerStatus = "completed"
)

// String returns the string representation of TimerStatus
func (ts TimerStatus) String() string {
	return string(ts)
}

// IsValid reports whether ts is one of the known statuses
func (ts TimerStatus) IsValid() bool {
	return ts == TimerStatusPaused || ts == TimerStatusRunning || ts == TimerStatusCompleted
}

// IsActive returns true if the timer is counting down
func (ts TimerStatus) IsActive() bool {
	return ts == TimerStatusRunning
}

// IsFinished returns true if the timer has completed
func (ts TimerStatus) IsFinished() bool {
	return ts == TimerStatusCompleted
}

// IsSettable reports whether ts may be requested directly by a user action.
// Completed is reachable only through a tick.
func (ts TimerStatus) IsSettable() bool {
	return ts == TimerStatusPaused || ts == TimerStatusRunning
}
