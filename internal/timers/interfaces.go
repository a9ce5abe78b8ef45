package timers

import (
	"context"

	"github.com/ytget/timerbox/internal/model"
)

// Manager defines the operations the UI and CLI drive the timer store with.
type Manager interface {
	SetUpdateCallback(func([]model.Timer))
	Load(ctx context.Context) ([]model.Timer, error)

	Add(name, duration, category string) (model.Timer, error)
	Delete(id string)
	ClearAll()

	Get(id string) (model.Timer, bool)
	Timers() []model.Timer
	ListByCategory() []model.CategoryGroup
	DistinctCategories() []string

	SetStatus(id string, status model.TimerStatus) error
	Start(id string)
	Pause(id string)
	Reset(id string)

	// Bulk variants touch every timer whose category equals category exactly
	BulkSetStatus(category string, status model.TimerStatus) error
	StartAll(category string)
	PauseAll(category string)
	BulkReset(category string)

	// Advance applies one tick to the whole collection atomically
	Advance() []model.CompletionEvent

	Flush(ctx context.Context) error
	Close() error
}
