package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/ytget/timerbox/internal/engine"
	"github.com/ytget/timerbox/internal/model"
	"github.com/ytget/timerbox/internal/platform"
	"github.com/ytget/timerbox/internal/timers"
)

// ErrTimerNotFound is returned when a command names an unknown timer id
var ErrTimerNotFound = errors.New("timer not found")

// AddCmd implements the 'add' command.
type AddCmd struct {
	Name     string `arg:"" help:"Timer name"`
	Duration string `arg:"" help:"Duration in seconds, or a Go duration such as 90s or 5m"`
	Category string `arg:"" help:"Category"`
}

func (a *AddCmd) Run(cli *CLI) error {
	return cli.withStore(func(store *timers.Store) error {
		timer, err := store.Add(a.Name, a.Duration, a.Category)
		if err != nil {
			return err
		}
		cli.printf("added %s %q in %q (%s)\n", timer.ID, timer.Name, timer.Category, timer.RemainingString())
		return nil
	})
}

// ListCmd implements the 'list' command.
type ListCmd struct {
	Category string `short:"g" help:"Only show this category" default:"All"`
}

func (l *ListCmd) Run(cli *CLI) error {
	return cli.withStore(func(store *timers.Store) error {
		groups := model.FilterGroups(store.ListByCategory(), l.Category)
		if len(store.Timers()) == 0 {
			cli.printf("no timers\n")
			return nil
		}

		w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
		for _, group := range groups {
			_, _ = fmt.Fprintf(w, "%s\n", group.Category)
			for _, timer := range group.Timers {
				_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", timer.ID, timer.Name, timer.RemainingString(), timer.Status)
			}
		}
		return w.Flush()
	})
}

// CategoriesCmd implements the 'categories' command.
type CategoriesCmd struct{}

func (CategoriesCmd) Run(cli *CLI) error {
	return cli.withStore(func(store *timers.Store) error {
		for _, category := range store.DistinctCategories() {
			cli.printf("%s\n", category)
		}
		return nil
	})
}

// TimerRef is the positional id argument shared by single-timer commands
type TimerRef struct {
	ID string `arg:"" help:"Timer id"`
}

// apply runs action on the referenced timer and prints its new state
func (r TimerRef) apply(cli *CLI, verb string, action func(store *timers.Store, id string)) error {
	return cli.withStore(func(store *timers.Store) error {
		if _, ok := store.Get(r.ID); !ok {
			return fmt.Errorf("%w: %s", ErrTimerNotFound, r.ID)
		}
		action(store, r.ID)
		if timer, ok := store.Get(r.ID); ok {
			cli.printf("%s %s: %s %s\n", verb, timer.Name, timer.RemainingString(), timer.Status)
		} else {
			cli.printf("%s %s\n", verb, r.ID)
		}
		return nil
	})
}

// StartCmd implements the 'start' command.
type StartCmd struct {
	TimerRef `embed:""`
}

func (c *StartCmd) Run(cli *CLI) error {
	return c.apply(cli, "started", (*timers.Store).Start)
}

// PauseCmd implements the 'pause' command.
type PauseCmd struct {
	TimerRef `embed:""`
}

func (c *PauseCmd) Run(cli *CLI) error {
	return c.apply(cli, "paused", (*timers.Store).Pause)
}

// ResetCmd implements the 'reset' command.
type ResetCmd struct {
	TimerRef `embed:""`
}

func (c *ResetCmd) Run(cli *CLI) error {
	return c.apply(cli, "reset", (*timers.Store).Reset)
}

// DeleteCmd implements the 'delete' command.
type DeleteCmd struct {
	TimerRef `embed:""`
}

func (c *DeleteCmd) Run(cli *CLI) error {
	return c.apply(cli, "deleted", (*timers.Store).Delete)
}

// CategoryRef is the positional category argument shared by bulk commands
type CategoryRef struct {
	Category string `arg:"" help:"Category, matched exactly"`
}

func (r CategoryRef) apply(cli *CLI, verb string, action func(store *timers.Store, category string)) error {
	return cli.withStore(func(store *timers.Store) error {
		action(store, r.Category)
		count := 0
		for _, timer := range store.Timers() {
			if timer.Category == r.Category {
				count++
			}
		}
		cli.printf("%s %d timers in %q\n", verb, count, r.Category)
		return nil
	})
}

// StartAllCmd implements the 'start-all' command.
type StartAllCmd struct {
	CategoryRef `embed:""`
}

func (c *StartAllCmd) Run(cli *CLI) error {
	return c.apply(cli, "started", (*timers.Store).StartAll)
}

// PauseAllCmd implements the 'pause-all' command.
type PauseAllCmd struct {
	CategoryRef `embed:""`
}

func (c *PauseAllCmd) Run(cli *CLI) error {
	return c.apply(cli, "paused", (*timers.Store).PauseAll)
}

// ResetAllCmd implements the 'reset-all' command.
type ResetAllCmd struct {
	CategoryRef `embed:""`
}

func (c *ResetAllCmd) Run(cli *CLI) error {
	return c.apply(cli, "reset", (*timers.Store).BulkReset)
}

// ClearCmd implements the 'clear' command.
type ClearCmd struct{}

func (ClearCmd) Run(cli *CLI) error {
	return cli.withStore(func(store *timers.Store) error {
		store.ClearAll()
		cli.printf("cleared all timers\n")
		return nil
	})
}

// RunCmd implements the 'run' command.
type RunCmd struct {
	For time.Duration `help:"Stop after this long (0 runs until interrupted)" default:"0s"`
}

func (r *RunCmd) Run(cli *CLI) error {
	guard, err := platform.AcquireSingleInstance(InstanceLockName)
	if err != nil {
		return fmt.Errorf("another TimerBox process is ticking these timers: %w", err)
	}
	defer func() { _ = guard.Release() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if r.For > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.For)
		defer cancel()
	}

	s, err := cli.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.close() }()

	tickEngine := engine.New(s.store, engine.Config{TickInterval: s.cfg.TickInterval()})
	tickEngine.SetNotifier(func(event model.CompletionEvent) {
		cli.printf("%s %s: %s\n", event.At.Format(time.TimeOnly), model.CompletionTitle, event.Message())
	})

	running := 0
	for _, timer := range s.store.Timers() {
		if timer.Status.IsActive() {
			running++
		}
	}
	cli.printf("ticking %d running timers every %s\n", running, tickEngine.Interval())

	tickEngine.Run(ctx)
	return s.close()
}
