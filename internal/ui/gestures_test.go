package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func runGesture(from, to fyne.Position, hold time.Duration) []GestureType {
	var got []GestureType
	handler := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return start }
	handler.TouchDown(touchAt(from.X, from.Y))
	handler.now = func() time.Time { return start.Add(hold) }
	handler.TouchUp(touchAt(to.X, to.Y))
	return got
}

func TestGestureClassification(t *testing.T) {
	tests := []struct {
		name     string
		to       fyne.Position
		hold     time.Duration
		expected GestureType
	}{
		{"tap", fyne.NewPos(102, 101), 100 * time.Millisecond, GestureTap},
		{"long press", fyne.NewPos(103, 100), 800 * time.Millisecond, GestureLongPress},
		{"swipe left", fyne.NewPos(20, 105), 150 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", fyne.NewPos(200, 95), 150 * time.Millisecond, GestureSwipeRight},
		{"swipe up", fyne.NewPos(100, 10), 150 * time.Millisecond, GestureSwipeUp},
		{"slow swipe left", fyne.NewPos(10, 100), 900 * time.Millisecond, GestureSwipeLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runGesture(fyne.NewPos(100, 100), tt.to, tt.hold)
			if len(got) != 1 || got[0] != tt.expected {
				t.Errorf("Expected [%d], got %v", tt.expected, got)
			}
		})
	}
}

func TestGestureCancelAndStrayTouchUp(t *testing.T) {
	var got []GestureType
	handler := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	handler.TouchUp(touchAt(0, 0))
	handler.TouchDown(touchAt(0, 0))
	handler.TouchCancel(touchAt(0, 0))
	handler.TouchUp(touchAt(0, 0))

	if len(got) != 0 {
		t.Errorf("Expected no gestures, got %v", got)
	}
}
