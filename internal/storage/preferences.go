package storage

import (
	"context"

	"fyne.io/fyne/v2"
)

// presenceSuffix marks keys written through PreferencesBackend. Fyne returns
// "" for both missing and empty strings, so presence is tracked separately.
const presenceSuffix = ".present"

// PreferencesBackend stores values in the application's Fyne preferences,
// the on-device store used by the GUI.
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend wraps the given preferences
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

// Get returns the value under key
func (p *PreferencesBackend) Get(_ context.Context, key string) (string, bool, error) {
	if !p.prefs.Bool(key + presenceSuffix) {
		return "", false, nil
	}
	return p.prefs.String(key), true, nil
}

// Set stores value under key
func (p *PreferencesBackend) Set(_ context.Context, key, value string) error {
	p.prefs.SetString(key, value)
	p.prefs.SetBool(key+presenceSuffix, true)
	return nil
}

// Delete removes key
func (p *PreferencesBackend) Delete(_ context.Context, key string) error {
	p.prefs.RemoveValue(key)
	p.prefs.RemoveValue(key + presenceSuffix)
	return nil
}

// Close is a no-op; the Fyne app owns the preferences lifecycle
func (p *PreferencesBackend) Close() error {
	return nil
}
