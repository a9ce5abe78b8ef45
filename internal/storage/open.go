package storage

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/timerbox/internal/config"
	"github.com/ytget/timerbox/internal/platform"
)

// SQLiteFileName is the database file used when storage.path is empty
const SQLiteFileName = "timers.db"

// Open builds the backend selected by cfg. prefs may be nil outside the GUI;
// with the auto backend it decides between preferences and file.
func Open(ctx context.Context, cfg config.Storage, appName string, prefs fyne.Preferences) (Backend, error) {
	backend := cfg.Backend
	if backend == config.BackendAuto {
		backend = config.BackendFile
		if prefs != nil {
			backend = config.BackendPreferences
		}
	}

	log.Printf("opening %s storage", backend)

	switch backend {
	case config.BackendPreferences:
		if prefs == nil {
			return nil, fmt.Errorf("preferences backend needs a running Fyne app")
		}
		return NewPreferencesBackend(prefs), nil
	case config.BackendFile:
		dir := cfg.Path
		if dir == "" {
			appDir, err := platform.GetAppDataDir(appName)
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(appDir, "data")
		}
		return NewFileBackend(dir)
	case config.BackendSQLite:
		path := cfg.Path
		if path == "" {
			appDir, err := platform.GetAppDataDir(appName)
			if err != nil {
				return nil, err
			}
			if err := platform.CreateDirectoryIfNotExists(appDir); err != nil {
				return nil, fmt.Errorf("create app data dir: %w", err)
			}
			path = filepath.Join(appDir, SQLiteFileName)
		}
		return NewSQLiteBackend(path)
	case config.BackendRedis:
		return DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
	case config.BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
