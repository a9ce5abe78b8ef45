package ui

import (
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/timerbox/internal/config"
	"github.com/ytget/timerbox/internal/model"
	"github.com/ytget/timerbox/internal/storage"
	"github.com/ytget/timerbox/internal/timers"
)

func newTestUI(t *testing.T) (*RootUI, *timers.Store, fyne.App) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	store := timers.NewStore(storage.NewMemoryBackend(), timers.Options{})
	t.Cleanup(func() {
		_ = store.Close()
		window.Close()
	})

	ui := NewRootUI(window, app, store, config.NewSettings(app))
	return ui, store, app
}

func fillForm(ui *RootUI, name, duration, category string) {
	ui.nameEntry.SetText(name)
	ui.durationEntry.SetText(duration)
	ui.categoryEntry.SetText(category)
	test.Tap(ui.addBtn)
}

func TestRootUIAddTimer(t *testing.T) {
	ui, store, _ := newTestUI(t)

	fillForm(ui, "Tea", "180", "Kitchen")

	list := store.Timers()
	if len(list) != 1 {
		t.Fatalf("Expected 1 timer, got %d", len(list))
	}
	if list[0].Name != "Tea" || list[0].Duration != 180 || list[0].Category != "Kitchen" {
		t.Errorf("Unexpected timer %+v", list[0])
	}
	if ui.nameEntry.Text != "" || ui.durationEntry.Text != "" || ui.categoryEntry.Text != "" {
		t.Error("Expected form to be cleared after add")
	}
	if len(ui.groups) != 1 {
		t.Errorf("Expected 1 category group, got %d", len(ui.groups))
	}
	if ui.emptyLabel.Visible() {
		t.Error("Expected empty label hidden")
	}
}

func TestRootUIRejectsIncompleteForm(t *testing.T) {
	ui, store, _ := newTestUI(t)

	fillForm(ui, "Tea", "", "Kitchen")
	fillForm(ui, "Tea", "abc", "Kitchen")
	fillForm(ui, "  ", "60", "Kitchen")

	if n := len(store.Timers()); n != 0 {
		t.Errorf("Expected no timers, got %d", n)
	}
	if ui.nameEntry.Text != "  " {
		t.Error("Expected form input kept after validation failure")
	}
}

func TestRootUIFilterAndCategories(t *testing.T) {
	ui, _, app := newTestUI(t)

	fillForm(ui, "Tea", "60", "Kitchen")
	fillForm(ui, "Standup", "900", "Office")

	expected := []string{model.AllCategories, "Kitchen", "Office"}
	if len(ui.filterSelect.Options) != len(expected) {
		t.Fatalf("Expected options %v, got %v", expected, ui.filterSelect.Options)
	}
	for i := range expected {
		if ui.filterSelect.Options[i] != expected[i] {
			t.Errorf("Option %d: expected %s, got %s", i, expected[i], ui.filterSelect.Options[i])
		}
	}

	ui.filterSelect.SetSelected("Office")
	if len(ui.groupsBox.Objects) != 1 {
		t.Errorf("Expected 1 visible group, got %d", len(ui.groupsBox.Objects))
	}
	if _, ok := ui.groups["Office"]; !ok {
		t.Error("Expected Office group to be shown")
	}

	// Selection is remembered
	if got := config.NewSettings(app).GetSelectedCategory(); got != "Office" {
		t.Errorf("Expected remembered category Office, got %s", got)
	}

	ui.filterSelect.SetSelected(model.AllCategories)
	if len(ui.groupsBox.Objects) != 2 {
		t.Errorf("Expected 2 visible groups, got %d", len(ui.groupsBox.Objects))
	}
}

func TestRootUIRowAndBulkActions(t *testing.T) {
	ui, store, _ := newTestUI(t)

	fillForm(ui, "Tea", "60", "Kitchen")
	fillForm(ui, "Eggs", "30", "Kitchen")

	group := ui.groups["Kitchen"]
	rows := group.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	test.Tap(rows[0].startPauseBtn)
	tea, _ := store.Get(rows[0].TimerID())
	if tea.Status != model.TimerStatusRunning {
		t.Errorf("Expected Tea running, got %s", tea.Status)
	}
	if rows[0].startPauseBtn.Text != IconPause {
		t.Errorf("Expected pause icon on running row, got %s", rows[0].startPauseBtn.Text)
	}

	test.Tap(group.startAllBtn)
	for _, timer := range store.Timers() {
		if timer.Status != model.TimerStatusRunning {
			t.Errorf("Expected %s running after start all, got %s", timer.Name, timer.Status)
		}
	}

	store.Advance()
	if rows[0].remainingLabel.Text != "00:59" {
		t.Errorf("Expected 00:59, got %s", rows[0].remainingLabel.Text)
	}

	test.Tap(group.resetAllBtn)
	for _, timer := range store.Timers() {
		if timer.Status != model.TimerStatusPaused || timer.Remaining != timer.Duration {
			t.Errorf("Expected %s reset, got %+v", timer.Name, timer)
		}
	}

	test.Tap(rows[1].deleteBtn)
	if n := len(store.Timers()); n != 1 {
		t.Errorf("Expected 1 timer after delete, got %d", n)
	}
	if len(group.Rows()) != 1 {
		t.Errorf("Expected 1 row after delete, got %d", len(group.Rows()))
	}
}

func TestRootUISwipeDeletesAndLongPressResets(t *testing.T) {
	ui, store, _ := newTestUI(t)
	fillForm(ui, "Tea", "60", "Kitchen")
	row := ui.groups["Kitchen"].Rows()[0]

	store.Start(row.TimerID())
	store.Advance()

	row.onGesture(GestureLongPress)
	tea, _ := store.Get(row.TimerID())
	if tea.Remaining != 60 || tea.Status != model.TimerStatusPaused {
		t.Errorf("Expected long press to reset, got %+v", tea)
	}

	row.onGesture(GestureSwipeLeft)
	if n := len(store.Timers()); n != 0 {
		t.Errorf("Expected swipe left to delete, %d timers left", n)
	}
}

func TestRootUIClearAllWithoutConfirmation(t *testing.T) {
	ui, store, _ := newTestUI(t)
	ui.settings.SetConfirmClearAll(false)

	fillForm(ui, "Tea", "60", "Kitchen")
	fillForm(ui, "Standup", "900", "Office")
	test.Tap(ui.clearAllBtn)

	if n := len(store.Timers()); n != 0 {
		t.Errorf("Expected no timers, got %d", n)
	}
	if len(ui.groups) != 0 {
		t.Errorf("Expected no groups, got %d", len(ui.groups))
	}
	if !ui.emptyLabel.Visible() {
		t.Error("Expected empty label visible")
	}
}

func TestRootUIShowCompletion(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.ShowCompletion(model.CompletionEvent{TimerID: "a", Name: "Tea", Category: "Kitchen"})
	ui.ShowStorageError(timers.ErrStoreClosed)
	if !ui.notificationContainer.Visible() {
		t.Error("Expected storage error in notification panel")
	}
}

func TestRootUIShowCompletionWhileSwitchingLanguage(t *testing.T) {
	ui, _, _ := newTestUI(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			ui.ShowCompletion(model.CompletionEvent{TimerID: "a", Name: "Tea", Category: "Kitchen"})
		}
	}()

	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			ui.localization.SetLanguage("ru")
		} else {
			ui.localization.SetLanguage("en")
		}
	}
	wg.Wait()

	if got := ui.localization.GetCurrentLanguage(); got != "en" {
		t.Errorf("Expected language en after switching, got %s", got)
	}
}
