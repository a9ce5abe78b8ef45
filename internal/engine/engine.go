package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ytget/timerbox/internal/model"
)

// DefaultTickInterval is one countdown unit
const DefaultTickInterval = time.Second

// Advancer applies one tick to a timer collection and reports the timers
// that completed on it.
type Advancer interface {
	Advance() []model.CompletionEvent
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Engine fires Advance on a fixed interval while started.
type Engine struct {
	mu       sync.Mutex
	source   Advancer
	options  Config
	notifier func(model.CompletionEvent)
	events   []chan model.CompletionEvent
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New creates a stopped Engine over source.
func New(source Advancer, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	return &Engine{
		source:  source,
		options: options,
	}
}

// SetNotifier sets the function called once per completion, on the tick
// goroutine.
func (e *Engine) SetNotifier(notifier func(model.CompletionEvent)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notifier = notifier
}

// Subscribe registers a new observer channel. Events are dropped for an
// observer whose buffer is full.
func (e *Engine) Subscribe(buffer int) <-chan model.CompletionEvent {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan model.CompletionEvent, buffer)
	e.mu.Lock()
	e.events = append(e.events, ch)
	e.mu.Unlock()
	return ch
}

// Interval returns the configured tick interval
func (e *Engine) Interval() time.Duration {
	return e.options.TickInterval
}

// Running reports whether the ticking loop is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Start launches the ticking loop. Calling Start on a running engine does
// nothing.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.stopCh = make(chan struct{})
	e.doneCh = make(chan struct{})
	stopCh, doneCh := e.stopCh, e.doneCh
	e.mu.Unlock()

	log.Printf("tick engine started, interval %s", e.options.TickInterval)
	go e.run(stopCh, doneCh)
}

// Stop terminates the ticking loop, waits for an in-flight tick to finish
// and closes observers.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.stopCh)
	doneCh := e.doneCh
	e.mu.Unlock()

	<-doneCh

	e.mu.Lock()
	events := e.events
	e.events = nil
	e.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	log.Printf("tick engine stopped")
}

// Run starts the engine and blocks until ctx is done, then stops it.
func (e *Engine) Run(ctx context.Context) {
	e.Start()
	<-ctx.Done()
	e.Stop()
}

// Tick performs one firing: advance the collection and deliver completions.
func (e *Engine) Tick() []model.CompletionEvent {
	completed := e.source.Advance()
	if len(completed) == 0 {
		return nil
	}

	e.mu.Lock()
	notifier := e.notifier
	for _, event := range completed {
		e.emitLocked(event)
	}
	e.mu.Unlock()

	for _, event := range completed {
		log.Printf("timer %s %q completed", event.TimerID, event.Name)
		if notifier != nil {
			notifier(event)
		}
	}
	return completed
}

func (e *Engine) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(e.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

func (e *Engine) emitLocked(event model.CompletionEvent) {
	for _, ch := range e.events {
		select {
		case ch <- event:
		default:
		}
	}
}
