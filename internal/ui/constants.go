package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconReset    = "↺"
	IconDelete   = "🗑️"
	IconClose    = "×"
	IconTimer    = "⏱"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	GroupCountFormat   = "(%d)"
)

// Layout sizing (TimerRow / groups)
const (
	RemainingLabelWidth float32 = 72
	StatusLabelWidth    float32 = 84

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 64

	// Mobile-specific sizing
	MobileRowMinWidth  float32 = 300
	MobileRowMinHeight float32 = 88

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonWidth  float32 = 56

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 300
)

// Notification panel behavior
const (
	NotificationAutoHide = 5 * time.Second
)
