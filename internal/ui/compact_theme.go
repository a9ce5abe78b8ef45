package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/timerbox/internal/model"
)

// TimerTheme is a compact theme with larger touch targets on mobile
type TimerTheme struct {
	mobile bool
}

// NewTimerTheme creates the app theme
func NewTimerTheme(mobile bool) fyne.Theme {
	return &TimerTheme{mobile: mobile}
}

// Color returns theme colors
func (t *TimerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Completed timers
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 160, B: 0, A: 255} // Paused timers
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 137, B: 123, A: 255} // Running timers and primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *TimerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TimerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes. Desktop is compact; mobile keeps default text
// with roomier padding.
func (t *TimerTheme) Size(name fyne.ThemeSizeName) float32 {
	if t.mobile {
		switch name {
		case theme.SizeNamePadding:
			return 6
		case theme.SizeNameInnerPadding:
			return 10
		}
		return theme.DefaultTheme().Size(name)
	}

	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}

// StatusImportance maps a timer status to the label importance used to
// color it
func StatusImportance(status model.TimerStatus) widget.Importance {
	switch status {
	case model.TimerStatusRunning:
		return widget.HighImportance
	case model.TimerStatusCompleted:
		return widget.SuccessImportance
	case model.TimerStatusPaused:
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}
