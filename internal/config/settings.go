package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage           = "app_language"
	KeyNotifyOnComplete   = "notify_on_complete"
	KeySelectedCategory   = "selected_category"
	KeyConfirmClearAll    = "confirm_clear_all"
	KeyStorageKeyOverride = "storage_key"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultNotifyOnComplete = true
	DefaultSelectedCategory = "All"
	DefaultConfirmClearAll  = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetNotifyOnComplete returns whether completions also raise a system notification
func (s *Settings) GetNotifyOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyNotifyOnComplete, DefaultNotifyOnComplete)
}

// SetNotifyOnComplete sets whether completions also raise a system notification
func (s *Settings) SetNotifyOnComplete(notify bool) {
	s.app.Preferences().SetBool(KeyNotifyOnComplete, notify)
}

// GetSelectedCategory returns the category filter shown last time
func (s *Settings) GetSelectedCategory() string {
	return s.app.Preferences().StringWithFallback(KeySelectedCategory, DefaultSelectedCategory)
}

// SetSelectedCategory remembers the category filter
func (s *Settings) SetSelectedCategory(category string) {
	if category == "" {
		category = DefaultSelectedCategory
	}
	s.app.Preferences().SetString(KeySelectedCategory, category)
}

// GetConfirmClearAll returns whether Clear All asks for confirmation
func (s *Settings) GetConfirmClearAll() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmClearAll, DefaultConfirmClearAll)
}

// SetConfirmClearAll sets whether Clear All asks for confirmation
func (s *Settings) SetConfirmClearAll(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmClearAll, confirm)
}

// GetStorageKey returns the key the timer collection is stored under,
// falling back to fallback when no override is saved
func (s *Settings) GetStorageKey(fallback string) string {
	return s.app.Preferences().StringWithFallback(KeyStorageKeyOverride, fallback)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
