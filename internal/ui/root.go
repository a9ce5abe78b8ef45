package ui

import (
	"errors"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/timerbox/internal/config"
	"github.com/ytget/timerbox/internal/model"
	"github.com/ytget/timerbox/internal/timers"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	store        timers.Manager
	settings     *config.Settings
	localization *Localization
	mobile       bool
	actions      *TimerActions

	// Add-timer form
	nameEntry     *widget.Entry
	durationEntry *widget.Entry
	categoryEntry *widget.Entry
	addBtn        *widget.Button

	filterSelect *widget.Select
	clearAllBtn  *widget.Button
	emptyLabel   *widget.Label
	groupsBox    *fyne.Container
	groups       map[string]*CategoryGroup

	// Latest store snapshot and filter; touched on the UI goroutine only
	timers   []model.Timer
	selected string

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSeq       int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store timers.Manager, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        store,
		settings:     settings,
		localization: localization,
		mobile:       isMobileDevice(),
		groups:       make(map[string]*CategoryGroup),
		selected:     settings.GetSelectedCategory(),
	}
	ui.actions = &TimerActions{
		OnStart:    store.Start,
		OnPause:    store.Pause,
		OnReset:    store.Reset,
		OnDelete:   store.Delete,
		OnStartAll: store.StartAll,
		OnPauseAll: store.PauseAll,
		OnResetAll: store.BulkReset,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	store.SetUpdateCallback(ui.onTimersUpdate)
	ui.render(store.Timers())

	log.Printf("UI setup completed, %d timers", len(ui.timers))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.nameEntry = widget.NewEntry()
	ui.durationEntry = widget.NewEntry()
	ui.categoryEntry = widget.NewEntry()
	ui.categoryEntry.OnSubmitted = func(string) { ui.onAddClick() }
	ui.addBtn = widget.NewButton("", ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.filterSelect = widget.NewSelect([]string{model.AllCategories}, ui.onFilterChanged)
	ui.clearAllBtn = widget.NewButton("", ui.onClearAllClick)
	ui.clearAllBtn.Importance = widget.DangerImportance

	var brand fyne.CanvasObject = widget.NewLabel(IconTimer)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		brand = logoImage
	}

	form := formLayout(ui.mobile, ui.nameEntry, ui.durationEntry, ui.categoryEntry)
	formRow := container.NewBorder(nil, nil, container.NewHBox(brand, settingsBtn), ui.addBtn, form)
	filterRow := container.NewBorder(nil, nil, nil, ui.clearAllBtn, ui.filterSelect)

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, closeBtn, ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(formRow, ui.notificationContainer, filterRow, widget.NewSeparator())

	ui.emptyLabel = widget.NewLabel("")
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.groupsBox = container.NewVBox()

	ui.refreshUITexts()

	content := container.NewBorder(
		top, // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewVScroll(container.NewVBox(ui.emptyLabel, ui.groupsBox)),
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.nameEntry.SetPlaceHolder(ui.localization.GetText(KeyTimerName))
	ui.durationEntry.SetPlaceHolder(ui.localization.GetText(KeyDuration))
	ui.categoryEntry.SetPlaceHolder(ui.localization.GetText(KeyCategory))
	ui.addBtn.SetText(ui.localization.GetText(KeyAddTimer))
	ui.filterSelect.PlaceHolder = ui.localization.GetText(KeyFilterCategory)
	ui.filterSelect.Refresh()
	ui.clearAllBtn.SetText(ui.localization.GetText(KeyClearAll))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoTimers))

	for _, group := range ui.groups {
		group.RefreshTexts()
	}
}

// onAddClick validates the form and adds a timer
func (ui *RootUI) onAddClick() {
	name := ui.nameEntry.Text
	duration := ui.durationEntry.Text
	category := ui.categoryEntry.Text

	if strings.TrimSpace(name) == "" || strings.TrimSpace(duration) == "" || strings.TrimSpace(category) == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyValidationTitle), ui.localization.GetText(KeyFillAllFields), ui.window)
		return
	}

	timer, err := ui.store.Add(name, duration, category)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			dialog.ShowInformation(ui.localization.GetText(KeyValidationTitle), err.Error(), ui.window)
			return
		}
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("timer %s added from form", timer.ID)
	ui.nameEntry.SetText("")
	ui.durationEntry.SetText("")
	ui.categoryEntry.SetText("")
}

// onFilterChanged handles category filter selection
func (ui *RootUI) onFilterChanged(category string) {
	if category == "" || category == ui.selected {
		return
	}
	ui.selected = category
	ui.settings.SetSelectedCategory(category)
	ui.render(ui.timers)
}

// onClearAllClick removes every timer, asking first when configured to
func (ui *RootUI) onClearAllClick() {
	if !ui.settings.GetConfirmClearAll() {
		ui.store.ClearAll()
		return
	}
	dialog.ShowConfirm(
		ui.localization.GetText(KeyClearAll),
		ui.localization.GetText(KeyClearAllConfirm),
		func(confirmed bool) {
			if confirmed {
				ui.store.ClearAll()
			}
		},
		ui.window,
	)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.displayNotification(ui.localization.GetText(KeySettingsSaved))
	})
}

// onTimersUpdate receives store snapshots. It may run on the tick goroutine.
func (ui *RootUI) onTimersUpdate(snapshot []model.Timer) {
	fyne.Do(func() {
		ui.render(snapshot)
	})
}

// render rebuilds the filter options and the visible groups from snapshot
func (ui *RootUI) render(snapshot []model.Timer) {
	ui.timers = snapshot

	categories := model.DistinctCategories(snapshot)
	ui.filterSelect.Options = categories
	if ui.filterSelect.Selected != ui.selected {
		ui.filterSelect.Selected = ui.selected
	}
	ui.filterSelect.Refresh()

	visible := model.FilterGroups(model.GroupByCategory(snapshot), ui.selected)

	objects := make([]fyne.CanvasObject, 0, len(visible))
	shown := make(map[string]struct{}, len(visible))
	for _, group := range visible {
		view, exists := ui.groups[group.Category]
		if !exists {
			view = NewCategoryGroup(group.Category, ui.localization, ui.actions, ui.mobile)
			ui.groups[group.Category] = view
		}
		view.Update(group.Timers)
		shown[group.Category] = struct{}{}
		objects = append(objects, view.Container())
	}
	for category := range ui.groups {
		if _, ok := shown[category]; !ok {
			delete(ui.groups, category)
		}
	}

	ui.groupsBox.Objects = objects
	ui.groupsBox.Refresh()

	if len(snapshot) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
}

// ShowCompletion alerts the user that a timer finished. Safe to call from
// any goroutine.
func (ui *RootUI) ShowCompletion(event model.CompletionEvent) {
	fyne.Do(func() {
		title := ui.localization.GetText(KeyTimerCompleted)
		message := ui.localization.Format(KeyTimerFinished, event.Name)
		dialog.ShowInformation(title, message, ui.window)

		if ui.settings.GetNotifyOnComplete() {
			ui.app.SendNotification(fyne.NewNotification(title, message))
		}
	})
}

// ShowStorageError reports a failed background write. Safe to call from any
// goroutine.
func (ui *RootUI) ShowStorageError(err error) {
	fyne.Do(func() {
		ui.displayNotification(ui.localization.GetText(KeyStorageError) + ": " + err.Error())
	})
}

// ShowLoadError reports a problem reading saved timers at startup
func (ui *RootUI) ShowLoadError(err error) {
	if errors.Is(err, timers.ErrCorruptCollection) {
		fyne.Do(func() {
			ui.displayNotification(ui.localization.GetText(KeyCorruptTimersSaved))
		})
		return
	}
	ui.ShowStorageError(err)
}

// displayNotification shows message in the panel under the form and hides
// it again after NotificationAutoHide unless a newer message replaced it.
// Runs on the UI goroutine.
func (ui *RootUI) displayNotification(message string) {
	ui.notificationSeq++
	seq := ui.notificationSeq
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(func() {
			if ui.notificationSeq == seq {
				ui.notificationContainer.Hide()
			}
		})
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}
