package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/timerbox/internal/model"
)

// CategoryGroup renders one category: a header with bulk actions and a row
// per timer. Rows are reused across updates by timer id.
type CategoryGroup struct {
	category     string
	localization *Localization
	actions      *TimerActions
	mobile       bool

	titleLabel *widget.Label
	countLabel *widget.Label

	startAllBtn *widget.Button
	pauseAllBtn *widget.Button
	resetAllBtn *widget.Button

	rowsBox   *fyne.Container
	rows      map[string]*TimerRow
	container *fyne.Container
}

// NewCategoryGroup creates the view for category
func NewCategoryGroup(category string, localization *Localization, actions *TimerActions, mobile bool) *CategoryGroup {
	if actions == nil {
		actions = &TimerActions{}
	}
	g := &CategoryGroup{
		category:     category,
		localization: localization,
		actions:      actions,
		mobile:       mobile,
		rows:         make(map[string]*TimerRow),
	}
	g.createUI()
	return g
}

// Category returns the category this group shows
func (g *CategoryGroup) Category() string {
	return g.category
}

// Container returns the group's canvas object
func (g *CategoryGroup) Container() *fyne.Container {
	return g.container
}

// Rows returns the rows in display order
func (g *CategoryGroup) Rows() []*TimerRow {
	rows := make([]*TimerRow, 0, len(g.rowsBox.Objects))
	for _, obj := range g.rowsBox.Objects {
		if row, ok := obj.(*TimerRow); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func (g *CategoryGroup) createUI() {
	g.titleLabel = widget.NewLabel(g.category)
	g.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	g.titleLabel.Truncation = fyne.TextTruncateEllipsis
	g.countLabel = widget.NewLabel("")

	g.startAllBtn = widget.NewButton("", func() { g.callBulk(g.actions.OnStartAll) })
	g.startAllBtn.Importance = widget.HighImportance
	g.pauseAllBtn = widget.NewButton("", func() { g.callBulk(g.actions.OnPauseAll) })
	g.resetAllBtn = widget.NewButton("", func() { g.callBulk(g.actions.OnResetAll) })
	g.RefreshTexts()

	title := container.NewHBox(g.titleLabel, g.countLabel)
	bulk := container.NewHBox(layout.NewSpacer(), g.startAllBtn, g.pauseAllBtn, g.resetAllBtn)

	var header fyne.CanvasObject
	if g.mobile {
		header = container.NewVBox(title, bulk)
	} else {
		header = container.NewBorder(nil, nil, title, bulk)
	}

	g.rowsBox = container.NewVBox()
	g.container = container.NewVBox(header, widget.NewSeparator(), g.rowsBox)
}

// Update renders timers in order, creating, updating and dropping rows as
// needed
func (g *CategoryGroup) Update(timers []model.Timer) {
	objects := make([]fyne.CanvasObject, 0, len(timers))
	seen := make(map[string]struct{}, len(timers))

	for _, timer := range timers {
		seen[timer.ID] = struct{}{}
		row, exists := g.rows[timer.ID]
		if exists {
			row.UpdateTimer(timer)
		} else {
			row = NewTimerRow(timer, g.localization, g.actions, g.mobile)
			g.rows[timer.ID] = row
		}
		objects = append(objects, row)
	}

	for id := range g.rows {
		if _, ok := seen[id]; !ok {
			delete(g.rows, id)
		}
	}

	g.countLabel.SetText(fmt.Sprintf(GroupCountFormat, len(timers)))
	g.rowsBox.Objects = objects
	g.rowsBox.Refresh()
}

// RefreshTexts re-applies localized labels to the header and rows
func (g *CategoryGroup) RefreshTexts() {
	g.startAllBtn.SetText(IconPlay + " " + g.localization.GetText(KeyStartAll))
	g.pauseAllBtn.SetText(IconPause + " " + g.localization.GetText(KeyPauseAll))
	g.resetAllBtn.SetText(IconReset + " " + g.localization.GetText(KeyResetAll))
	for _, row := range g.rows {
		row.RefreshTexts()
	}
}

func (g *CategoryGroup) callBulk(action func(category string)) {
	if action == nil {
		return
	}
	action(g.category)
}
