package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ytget/timerbox/internal/platform"
)

// Storage backend names
const (
	BackendAuto        = ""
	BackendPreferences = "preferences"
	BackendFile        = "file"
	BackendSQLite      = "sqlite"
	BackendRedis       = "redis"
	BackendMemory      = "memory"
)

// Config file defaults
const (
	ConfigFileName        = "config.yaml"
	DefaultStorageKey     = "timers"
	DefaultTickIntervalMs = 1000
	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisPrefix    = "timerbox:"
	MinTickIntervalMs     = 10
)

// Environment overrides, applied after the YAML file
const (
	EnvStorageBackend = "TIMERBOX_STORAGE_BACKEND"
	EnvStoragePath    = "TIMERBOX_STORAGE_PATH"
	EnvStorageKey     = "TIMERBOX_STORAGE_KEY"
	EnvRedisAddr      = "TIMERBOX_REDIS_ADDR"
	EnvRedisPassword  = "TIMERBOX_REDIS_PASSWORD"
	EnvRedisDB        = "TIMERBOX_REDIS_DB"
	EnvRedisPrefix    = "TIMERBOX_REDIS_PREFIX"
	EnvTickIntervalMs = "TIMERBOX_TICK_INTERVAL_MS"
)

// RedisConfig configures the redis storage backend
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Storage selects and configures the persistence backend. An empty Backend
// means preferences inside the GUI and file everywhere else.
type Storage struct {
	Backend string      `yaml:"backend"`
	Path    string      `yaml:"path"`
	Key     string      `yaml:"key"`
	Redis   RedisConfig `yaml:"redis"`
}

// File is the optional YAML configuration shared by the GUI and timerctl
type File struct {
	Storage        Storage `yaml:"storage"`
	TickIntervalMs int     `yaml:"tick_interval_ms"`
}

// DefaultFile returns the configuration used when no file exists
func DefaultFile() File {
	return File{
		Storage: Storage{
			Backend: BackendAuto,
			Key:     DefaultStorageKey,
			Redis: RedisConfig{
				Addr:   DefaultRedisAddr,
				Prefix: DefaultRedisPrefix,
			},
		},
		TickIntervalMs: DefaultTickIntervalMs,
	}
}

// TickInterval returns the tick cadence as a duration
func (f File) TickInterval() time.Duration {
	return time.Duration(f.TickIntervalMs) * time.Millisecond
}

// Validate checks the configuration for values no backend can work with
func (f File) Validate() error {
	switch f.Storage.Backend {
	case BackendAuto, BackendPreferences, BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("storage.backend %q is not one of preferences, file, sqlite, redis, memory", f.Storage.Backend)
	}
	if f.Storage.Key == "" {
		return fmt.Errorf("storage.key is required")
	}
	if f.Storage.Backend == BackendRedis && f.Storage.Redis.Addr == "" {
		return fmt.Errorf("storage.redis.addr is required for the redis backend")
	}
	if f.TickIntervalMs < MinTickIntervalMs {
		return fmt.Errorf("tick_interval_ms must be at least %d, got %d", MinTickIntervalMs, f.TickIntervalMs)
	}
	return nil
}

// DefaultConfigPath returns <app data dir>/config.yaml
func DefaultConfigPath(appName string) (string, error) {
	dir, err := platform.GetAppDataDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadFile reads the YAML configuration at path and applies environment
// overrides. A missing file yields the defaults. A .env file in the working
// directory, if present, is loaded first without overriding the real
// environment.
func LoadFile(path string) (File, error) {
	_ = godotenv.Load()

	cfg := DefaultFile()
	if path != "" {
		rawData, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(rawData, &cfg); err != nil {
				return DefaultFile(), fmt.Errorf("parse config yaml: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return DefaultFile(), fmt.Errorf("read config file: %w", err)
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = DefaultStorageKey
	}
	if cfg.TickIntervalMs == 0 {
		cfg.TickIntervalMs = DefaultTickIntervalMs
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveFile writes cfg as YAML to path
func SaveFile(path string, cfg File) error {
	serialized, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := platform.WriteFileAtomic(path, serialized); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with any TIMERBOX_* variables that are set
func ApplyEnv(cfg *File) error {
	cfg.Storage.Backend = getEnv(EnvStorageBackend, cfg.Storage.Backend)
	cfg.Storage.Path = getEnv(EnvStoragePath, cfg.Storage.Path)
	cfg.Storage.Key = getEnv(EnvStorageKey, cfg.Storage.Key)
	cfg.Storage.Redis.Addr = getEnv(EnvRedisAddr, cfg.Storage.Redis.Addr)
	cfg.Storage.Redis.Password = getEnv(EnvRedisPassword, cfg.Storage.Redis.Password)
	cfg.Storage.Redis.Prefix = getEnv(EnvRedisPrefix, cfg.Storage.Redis.Prefix)

	db, err := getEnvAsInt(EnvRedisDB, cfg.Storage.Redis.DB)
	if err != nil {
		return err
	}
	cfg.Storage.Redis.DB = db

	tick, err := getEnvAsInt(EnvTickIntervalMs, cfg.TickIntervalMs)
	if err != nil {
		return err
	}
	cfg.TickIntervalMs = tick
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return parsed, nil
}
