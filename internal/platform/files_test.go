package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetAppDataDir(t *testing.T) {
	dir, err := GetAppDataDir("TimerBox")
	if err != nil {
		t.Fatalf("Failed to get app data directory: %v", err)
	}

	if dir == "" {
		t.Fatal("App data directory is empty")
	}

	base := filepath.Base(dir)
	if base != "TimerBox" && base != ".TimerBox" {
		t.Errorf("Expected directory to end with the app name, got: %s", dir)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "value.json")

	if err := WriteFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected 'second', got %q", string(data))
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Failed to list directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the target file, found %d entries", len(entries))
	}
}

func TestAcquireSingleInstance(t *testing.T) {
	name := "timerbox-test-" + t.Name()

	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable in this environment: %v", err)
	}
	defer guard.Release()

	if guard.Address() == "" {
		t.Error("Expected a bound address")
	}

	if _, err := AcquireSingleInstance(name); err != ErrAlreadyRunning {
		t.Errorf("Expected ErrAlreadyRunning for a second acquire, got %v", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	again, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("Expected to reacquire after release, got %v", err)
	}
	_ = again.Release()
}
