package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/timerbox/internal/config"
	"github.com/ytget/timerbox/internal/engine"
	"github.com/ytget/timerbox/internal/platform"
	"github.com/ytget/timerbox/internal/storage"
	"github.com/ytget/timerbox/internal/timers"
	"github.com/ytget/timerbox/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.timerbox"
	AppName = "TimerBox"

	// InstanceLockName is shared with timerctl run so only one process ticks
	InstanceLockName = "timerbox"

	WindowWidth  = 480
	WindowHeight = 720
)

func main() {
	fmt.Printf("TimerBox v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	mobile := fyne.CurrentDevice().IsMobile()
	myApp.Settings().SetTheme(ui.NewTimerTheme(mobile))

	var guard *platform.InstanceGuard
	if !mobile {
		var err error
		guard, err = platform.AcquireSingleInstance(InstanceLockName)
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("another TimerBox instance is already running")
			os.Exit(0)
		}
		if err != nil {
			log.Printf("single instance check failed: %v", err)
		}
	}

	cfg := loadConfig()
	settings := config.NewSettings(myApp)

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg.Storage, AppName, myApp.Preferences())
	if err != nil {
		log.Printf("failed to open %q storage, falling back to preferences: %v", cfg.Storage.Backend, err)
		backend = storage.NewPreferencesBackend(myApp.Preferences())
	}

	// the writer goroutine may report before the window exists
	var rootUI atomic.Pointer[ui.RootUI]
	store := timers.NewStore(backend, timers.Options{
		Key: settings.GetStorageKey(cfg.Storage.Key),
		OnPersistError: func(err error) {
			if r := rootUI.Load(); r != nil {
				r.ShowStorageError(err)
			}
		},
	})
	_, loadErr := store.Load(ctx)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, store, settings)
	rootUI.Store(root)
	if loadErr != nil {
		log.Printf("loading timers: %v", loadErr)
		root.ShowLoadError(loadErr)
	}

	tickEngine := engine.New(store, engine.Config{TickInterval: cfg.TickInterval()})
	tickEngine.SetNotifier(root.ShowCompletion)
	tickEngine.Start()

	myWindow.ShowAndRun()

	tickEngine.Stop()
	if err := store.Close(); err != nil {
		log.Printf("closing timer store: %v", err)
	}
	if err := backend.Close(); err != nil {
		log.Printf("closing storage: %v", err)
	}
	if guard != nil {
		_ = guard.Release()
	}
}

// loadConfig reads the optional YAML config next to the app data. Errors
// fall back to defaults; the GUI always starts.
func loadConfig() config.File {
	path, err := config.DefaultConfigPath(AppName)
	if err != nil {
		log.Printf("config path: %v", err)
		path = ""
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		return config.DefaultFile()
	}
	return cfg
}
