package ui

// Package ui contains the Fyne user interface for the timer app.
// It renders timers grouped by category, wires form input, row buttons and
// gestures to the timer store, and shows completion alerts. All UI strings
// are localized via Localization.
