package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	device := fyne.CurrentDevice()
	return device != nil && device.IsMobile()
}

// rowMinSize returns the minimum timer row size for the device class
func rowMinSize(mobile bool) fyne.Size {
	if mobile {
		return fyne.NewSize(MobileRowMinWidth, MobileRowMinHeight)
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// newActionButton creates a row or group action button. On mobile the
// icon-only button is padded out to a touch-sized target.
func newActionButton(text string, mobile bool, onTapped func()) (*widget.Button, fyne.CanvasObject) {
	btn := widget.NewButton(text, onTapped)
	if !mobile {
		return btn, btn
	}
	target := container.New(layout.NewGridWrapLayout(fyne.NewSize(MobileButtonWidth, MinTouchTargetSize)), btn)
	return btn, target
}

// formLayout stacks the add-timer inputs on phones and lays them out in a
// row on wider screens
func formLayout(mobile bool, objects ...fyne.CanvasObject) *fyne.Container {
	if mobile {
		return container.NewVBox(objects...)
	}
	return container.NewAdaptiveGrid(len(objects), objects...)
}
