package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/timerbox/internal/model"
)

// TimerActions are the store operations rows and groups trigger
type TimerActions struct {
	OnStart  func(id string)
	OnPause  func(id string)
	OnReset  func(id string)
	OnDelete func(id string)

	OnStartAll func(category string)
	OnPauseAll func(category string)
	OnResetAll func(category string)
}

// TimerRow renders a single timer: name, remaining time, status, progress
// and its action buttons. Swiping left deletes it and a long press resets it.
type TimerRow struct {
	widget.BaseWidget

	timer        model.Timer
	localization *Localization
	actions      *TimerActions
	gestures     *GestureHandler
	mobile       bool

	nameLabel      *widget.Label
	remainingLabel *widget.Label
	statusLabel    *widget.Label
	progressBar    *widget.ProgressBar

	startPauseBtn *widget.Button
	resetBtn      *widget.Button
	deleteBtn     *widget.Button

	content fyne.CanvasObject
}

// NewTimerRow creates a row bound to timer
func NewTimerRow(timer model.Timer, localization *Localization, actions *TimerActions, mobile bool) *TimerRow {
	if actions == nil {
		actions = &TimerActions{}
	}
	tr := &TimerRow{
		timer:        timer,
		localization: localization,
		actions:      actions,
		mobile:       mobile,
	}
	tr.gestures = NewGestureHandler(tr.onGesture)
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTimer()
	return tr
}

// TimerID returns the id of the timer shown in the row
func (tr *TimerRow) TimerID() string {
	return tr.timer.ID
}

// UpdateTimer updates the row with new timer data
func (tr *TimerRow) UpdateTimer(timer model.Timer) {
	if timer == tr.timer {
		return
	}
	tr.timer = timer
	tr.updateFromTimer()
	tr.Refresh()
}

// RefreshTexts re-applies localized labels
func (tr *TimerRow) RefreshTexts() {
	tr.updateFromTimer()
	tr.Refresh()
}

func (tr *TimerRow) createUI() {
	tr.nameLabel = widget.NewLabel("")
	tr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	tr.remainingLabel = widget.NewLabel("")
	tr.remainingLabel.TextStyle = fyne.TextStyle{Monospace: true}
	tr.remainingLabel.Alignment = fyne.TextAlignTrailing

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing

	tr.progressBar = widget.NewProgressBar()
	tr.progressBar.TextFormatter = func() string { return "" }

	var startPause, reset, del fyne.CanvasObject
	tr.startPauseBtn, startPause = newActionButton(IconPlay, tr.mobile, tr.onStartPause)
	tr.startPauseBtn.Importance = widget.HighImportance
	tr.resetBtn, reset = newActionButton(IconReset, tr.mobile, func() {
		tr.call(tr.actions.OnReset)
	})
	tr.deleteBtn, del = newActionButton(IconDelete, tr.mobile, func() {
		tr.call(tr.actions.OnDelete)
	})
	tr.deleteBtn.Importance = widget.DangerImportance

	remainingCell := container.NewGridWrap(fyne.NewSize(RemainingLabelWidth, tr.remainingLabel.MinSize().Height), tr.remainingLabel)
	statusCell := container.NewGridWrap(fyne.NewSize(StatusLabelWidth, tr.statusLabel.MinSize().Height), tr.statusLabel)

	header := container.NewBorder(nil, nil, nil, container.NewHBox(remainingCell, statusCell), tr.nameLabel)
	buttons := container.NewHBox(layout.NewSpacer(), startPause, reset, del)

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(rowMinSize(tr.mobile))

	tr.content = container.NewStack(spacer, container.NewVBox(header, tr.progressBar, buttons))
}

func (tr *TimerRow) updateFromTimer() {
	tr.nameLabel.SetText(tr.timer.Name)
	tr.remainingLabel.SetText(tr.timer.RemainingString())
	tr.statusLabel.Importance = StatusImportance(tr.timer.Status)
	tr.statusLabel.SetText(statusText(tr.localization, tr.timer.Status))
	tr.progressBar.SetValue(tr.timer.Progress())

	switch tr.timer.Status {
	case model.TimerStatusRunning:
		tr.startPauseBtn.SetText(IconPause)
		tr.startPauseBtn.Enable()
	case model.TimerStatusCompleted:
		tr.startPauseBtn.SetText(IconPlay)
		tr.startPauseBtn.Disable()
	default:
		tr.startPauseBtn.SetText(IconPlay)
		tr.startPauseBtn.Enable()
	}
}

func (tr *TimerRow) onStartPause() {
	if tr.timer.Status.IsActive() {
		tr.call(tr.actions.OnPause)
		return
	}
	tr.call(tr.actions.OnStart)
}

func (tr *TimerRow) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		log.Printf("swipe left on timer %s, deleting", tr.timer.ID)
		tr.call(tr.actions.OnDelete)
	case GestureLongPress:
		tr.call(tr.actions.OnReset)
	}
}

func (tr *TimerRow) call(action func(id string)) {
	if action == nil {
		return
	}
	action(tr.timer.ID)
}

// TouchDown handles touch down events
func (tr *TimerRow) TouchDown(event *mobile.TouchEvent) {
	tr.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (tr *TimerRow) TouchUp(event *mobile.TouchEvent) {
	tr.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (tr *TimerRow) TouchCancel(event *mobile.TouchEvent) {
	tr.gestures.TouchCancel(event)
}

// CreateRenderer implements fyne.Widget
func (tr *TimerRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.content)
}

func statusText(l *Localization, status model.TimerStatus) string {
	switch status {
	case model.TimerStatusRunning:
		return l.GetText(KeyStatusRunning)
	case model.TimerStatusPaused:
		return l.GetText(KeyStatusPaused)
	case model.TimerStatusCompleted:
		return l.GetText(KeyStatusCompleted)
	default:
		return status.String()
	}
}
