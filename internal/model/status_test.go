package model

import "testing"

func TestTimerStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TimerStatus
		expected bool
	}{
		{TimerStatusPaused, false},
		{TimerStatusRunning, true},
		{TimerStatusCompleted, false},
		{TimerStatus("bogus"), false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TimerStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTimerStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TimerStatus
		expected bool
	}{
		{TimerStatusPaused, false},
		{TimerStatusRunning, false},
		{TimerStatusCompleted, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TimerStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTimerStatus_IsValidAndSettable(t *testing.T) {
	tests := []struct {
		status   TimerStatus
		valid    bool
		settable bool
	}{
		{TimerStatusPaused, true, true},
		{TimerStatusRunning, true, true},
		{TimerStatusCompleted, true, false},
		{TimerStatus(""), false, false},
		{TimerStatus("Running"), false, false},
	}

	for _, test := range tests {
		if got := test.status.IsValid(); got != test.valid {
			t.Errorf("TimerStatus(%q).IsValid() = %v, expected %v", test.status, got, test.valid)
		}
		if got := test.status.IsSettable(); got != test.settable {
			t.Errorf("TimerStatus(%q).IsSettable() = %v, expected %v", test.status, got, test.settable)
		}
	}
}

func TestTimerStatus_String(t *testing.T) {
	status := TimerStatusRunning
	expected := "running"
	result := status.String()

	if result != expected {
		t.Errorf("TimerStatus.String() = %s, expected %s", result, expected)
	}
}
