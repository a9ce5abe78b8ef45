package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/timerbox/internal/model"
	"github.com/ytget/timerbox/internal/storage"
	"github.com/ytget/timerbox/internal/timers"
)

// countingSource completes a fixed event on the nth call to Advance, or on
// every call when always is set
type countingSource struct {
	mu     sync.Mutex
	calls  int
	fireOn int
	always bool
	event  model.CompletionEvent
}

func (c *countingSource) Advance() []model.CompletionEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.always || c.calls == c.fireOn {
		return []model.CompletionEvent{c.event}
	}
	return nil
}

func (c *countingSource) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestNewDefaults(t *testing.T) {
	e := New(&countingSource{}, Config{})
	assert.Equal(t, DefaultTickInterval, e.Interval())
	assert.False(t, e.Running())
}

func TestTickNotifiesAndPublishes(t *testing.T) {
	event := model.CompletionEvent{TimerID: "a", Name: "Tea", Category: "Kitchen"}
	source := &countingSource{fireOn: 2, event: event}
	e := New(source, Config{})

	var notified []model.CompletionEvent
	e.SetNotifier(func(ev model.CompletionEvent) { notified = append(notified, ev) })
	events := e.Subscribe(4)

	assert.Empty(t, e.Tick())
	assert.Equal(t, []model.CompletionEvent{event}, e.Tick())
	assert.Empty(t, e.Tick())

	assert.Equal(t, []model.CompletionEvent{event}, notified)
	require.Len(t, events, 1)
	assert.Equal(t, event, <-events)
}

func TestFullSubscriberDoesNotBlock(t *testing.T) {
	source := &countingSource{always: true, event: model.CompletionEvent{TimerID: "a"}}
	e := New(source, Config{})
	events := e.Subscribe(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 3; i++ {
			e.Tick()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Tick blocked on a full subscriber")
	}
	assert.Len(t, events, 1)
}

func TestStartStop(t *testing.T) {
	source := &countingSource{}
	e := New(source, Config{TickInterval: 5 * time.Millisecond})
	events := e.Subscribe(1)

	e.Start()
	e.Start()
	assert.True(t, e.Running())

	require.Eventually(t, func() bool { return source.Calls() >= 3 }, time.Second, time.Millisecond)

	e.Stop()
	e.Stop()
	assert.False(t, e.Running())

	_, open := <-events
	assert.False(t, open, "subscriber channel should be closed after Stop")

	calls := source.Calls()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, source.Calls(), "no ticks after Stop returns")
}

func TestRunStopsWithContext(t *testing.T) {
	source := &countingSource{}
	e := New(source, Config{TickInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return source.Calls() >= 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, e.Running())
}

func TestEngineDrivesStore(t *testing.T) {
	store := timers.NewStore(storage.NewMemoryBackend(), timers.Options{})
	defer store.Close()

	tea, err := store.Add("Tea", "5", "Kitchen")
	require.NoError(t, err)
	store.Start(tea.ID)

	e := New(store, Config{})
	var completions []model.CompletionEvent
	e.SetNotifier(func(ev model.CompletionEvent) { completions = append(completions, ev) })

	for i := 0; i < 5; i++ {
		e.Tick()
	}
	assert.Empty(t, completions)

	e.Tick()
	require.Len(t, completions, 1)
	assert.Equal(t, "Tea has finished!", completions[0].Message())

	for i := 0; i < 3; i++ {
		e.Tick()
	}
	assert.Len(t, completions, 1)
}
