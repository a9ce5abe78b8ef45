package model

// Package model defines domain data structures used across the app: countdown
// timers, their status enum, category groups and completion events. The
// per-timer state machine lives here so both the store and the tick engine
// apply the same transitions.
