package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ytget/timerbox/internal/config"
	"github.com/ytget/timerbox/internal/storage"
	"github.com/ytget/timerbox/internal/timers"
)

const (
	AppName = "TimerBox"

	// InstanceLockName matches the app so only one process ticks the timers
	InstanceLockName = "timerbox"

	closeTimeout = 5 * time.Second
)

// CLI definition & global flags
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (defaults to the app data dir)" type:"path"`
	Backend string           `short:"b" help:"Storage backend override (file, sqlite, redis, memory)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Add        AddCmd        `cmd:"" help:"Add a paused timer"`
	List       ListCmd       `cmd:"" help:"List timers grouped by category"`
	Categories CategoriesCmd `cmd:"" help:"List categories, starting with All"`
	Start      StartCmd      `cmd:"" help:"Start a timer"`
	Pause      PauseCmd      `cmd:"" help:"Pause a timer"`
	Reset      ResetCmd      `cmd:"" help:"Reset a timer to its full duration"`
	Delete     DeleteCmd     `cmd:"" help:"Delete a timer"`
	StartAll   StartAllCmd   `cmd:"" name:"start-all" help:"Start every timer in a category"`
	PauseAll   PauseAllCmd   `cmd:"" name:"pause-all" help:"Pause every timer in a category"`
	ResetAll   ResetAllCmd   `cmd:"" name:"reset-all" help:"Reset every timer in a category"`
	Clear      ClearCmd      `cmd:"" help:"Delete all timers"`
	Run        RunCmd        `cmd:"" help:"Tick running timers and print completions until interrupted"`

	out io.Writer
}

// AfterApply runs after flag parsing; silences the standard logger unless
// verbose output was asked for
func (c *CLI) AfterApply() error {
	if !c.Verbose {
		log.SetOutput(io.Discard)
	}
	return nil
}

// session is an opened store and the backend behind it
type session struct {
	cfg     config.File
	backend storage.Backend
	store   *timers.Store
	closed  bool
}

// loadConfig resolves the config file and applies the --backend override
func (c *CLI) loadConfig() (config.File, error) {
	path := c.Config
	if path == "" {
		defaultPath, err := config.DefaultConfigPath(AppName)
		if err != nil {
			return config.File{}, err
		}
		path = defaultPath
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return cfg, err
	}
	if c.Backend != "" {
		cfg.Storage.Backend = c.Backend
	}
	return cfg, cfg.Validate()
}

// open loads the config, opens storage and loads the timer collection
func (c *CLI) open(ctx context.Context) (*session, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	backend, err := storage.Open(ctx, cfg.Storage, AppName, nil)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	store := timers.NewStore(backend, timers.Options{Key: cfg.Storage.Key})
	if _, err := store.Load(ctx); errors.Is(err, timers.ErrCorruptCollection) {
		c.printf("warning: %v (backup kept as %s%s), starting empty\n", err, cfg.Storage.Key, timers.CorruptSuffix)
	} else if err != nil {
		_ = store.Close()
		_ = backend.Close()
		return nil, fmt.Errorf("load timers: %w", err)
	}

	return &session{cfg: cfg, backend: backend, store: store}, nil
}

// close flushes pending writes and releases the backend
func (s *session) close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	flushErr := s.store.Flush(ctx)
	_ = s.store.Close()
	closeErr := s.backend.Close()

	if flushErr != nil {
		return fmt.Errorf("save timers: %w", flushErr)
	}
	return closeErr
}

// withStore runs fn against an opened session and saves on the way out
func (c *CLI) withStore(fn func(store *timers.Store) error) (err error) {
	s, err := c.open(context.Background())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.close(); err == nil {
			err = closeErr
		}
	}()
	return fn(s.store)
}

func (c *CLI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
