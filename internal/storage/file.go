package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ytget/timerbox/internal/platform"
)

// FileExtension is appended to every key file
const FileExtension = ".json"

// FileBackend stores each key in its own file under a directory. Writes go
// through a temp file and rename so a crash never leaves a torn value.
type FileBackend struct {
	dir string
	mu  sync.RWMutex
}

// NewFileBackend creates the directory if needed and returns a backend
// rooted at it
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("file backend: directory is required")
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Dir returns the backing directory
func (f *FileBackend) Dir() string {
	return f.dir
}

// Get returns the value under key
func (f *FileBackend) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set stores value under key
func (f *FileBackend) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := platform.WriteFileAtomic(f.pathFor(key), []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (f *FileBackend) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.pathFor(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Close is a no-op
func (f *FileBackend) Close() error {
	return nil
}

func (f *FileBackend) pathFor(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+FileExtension)
}

// sanitizeKey maps a key onto a safe file name. Characters outside
// [A-Za-z0-9._-] become '_'; a leading dot is escaped so keys never
// produce hidden files.
func sanitizeKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == '.' && i > 0:
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
