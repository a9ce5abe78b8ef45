package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/timerbox/internal/config"
	"github.com/ytget/timerbox/internal/storage"
	"github.com/ytget/timerbox/internal/timers"
)

// cliEnv points timerctl at a file backend in a temp dir
type cliEnv struct {
	t          *testing.T
	configPath string
	dataDir    string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultFile()
	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.Path = filepath.Join(dir, "data")
	cfg.TickIntervalMs = 10

	configPath := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, config.SaveFile(configPath, cfg))
	return &cliEnv{t: t, configPath: configPath, dataDir: cfg.Storage.Path}
}

func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	var out bytes.Buffer
	cli := CLI{out: &out}

	parser, err := kong.New(&cli,
		kong.Name("timerctl"),
		kong.Exit(func(int) { e.t.Fatalf("timerctl exited for %v", args) }),
		kong.Vars{"version": "test"},
	)
	require.NoError(e.t, err)

	ctx, err := parser.Parse(append([]string{"--config", e.configPath}, args...))
	require.NoError(e.t, err)

	err = ctx.Run(&cli)
	return out.String(), err
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "timerctl %v", args)
	return out
}

func addedID(t *testing.T, out string) string {
	t.Helper()
	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 2, out)
	require.Equal(t, "added", fields[0])
	return fields[1]
}

func TestCLIAddListCategories(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("add", "Tea", "180", "Kitchen")
	assert.Contains(t, out, `"Tea" in "Kitchen" (03:00)`)
	env.mustRun("add", "Standup", "15m", "Office")

	out = env.mustRun("categories")
	assert.Equal(t, "All\nKitchen\nOffice\n", out)

	out = env.mustRun("list")
	assert.Contains(t, out, "Kitchen")
	assert.Contains(t, out, "Tea")
	assert.Contains(t, out, "15:00")

	out = env.mustRun("list", "--category", "Office")
	assert.NotContains(t, out, "Tea")
	assert.Contains(t, out, "Standup")
}

func TestCLIAddValidation(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("add", "Tea", "soon", "Kitchen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")

	assert.Equal(t, "no timers\n", env.mustRun("list"))
}

func TestCLIRecoversFromCorruptCollection(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.MkdirAll(env.dataDir, 0o755))
	blobPath := filepath.Join(env.dataDir, config.DefaultStorageKey+storage.FileExtension)
	require.NoError(t, os.WriteFile(blobPath, []byte("{not json"), 0o644))

	out := env.mustRun("list")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "no timers")

	backup, err := os.ReadFile(filepath.Join(env.dataDir, config.DefaultStorageKey+timers.CorruptSuffix+storage.FileExtension))
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(backup))

	out = env.mustRun("add", "Tea", "5", "Kitchen")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, "a still-corrupt blob warns again before the add")
	id := addedID(t, lines[1])

	data, err := os.ReadFile(blobPath)
	require.NoError(t, err)
	saved, _, err := timers.Decode(string(data), func() string { return "unused" })
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, id, saved[0].ID)

	out = env.mustRun("list")
	assert.NotContains(t, out, "warning")
	assert.Contains(t, out, "Tea")
}

func TestCLISingleTimerCommands(t *testing.T) {
	env := newCLIEnv(t)
	id := addedID(t, env.mustRun("add", "Tea", "60", "Kitchen"))

	assert.Contains(t, env.mustRun("start", id), "running")
	assert.Contains(t, env.mustRun("pause", id), "paused")
	assert.Contains(t, env.mustRun("reset", id), "01:00 paused")
	env.mustRun("delete", id)
	assert.Equal(t, "no timers\n", env.mustRun("list"))

	_, err := env.run("start", "missing")
	assert.ErrorIs(t, err, ErrTimerNotFound)
}

func TestCLIBulkCommands(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "Tea", "60", "Kitchen")
	env.mustRun("add", "Eggs", "30", "Kitchen")
	env.mustRun("add", "Standup", "900", "Office")

	assert.Equal(t, "started 2 timers in \"Kitchen\"\n", env.mustRun("start-all", "Kitchen"))

	out := env.mustRun("list", "--category", "Kitchen")
	assert.Equal(t, 2, strings.Count(out, "running"))

	env.mustRun("pause-all", "Kitchen")
	env.mustRun("reset-all", "Kitchen")
	out = env.mustRun("list")
	assert.NotContains(t, out, "running")

	env.mustRun("clear")
	assert.Equal(t, "All\n", env.mustRun("categories"))
}

func TestCLIRunCompletesTimers(t *testing.T) {
	env := newCLIEnv(t)
	id := addedID(t, env.mustRun("add", "Tea", "2", "Kitchen"))
	env.mustRun("start", id)

	out, err := env.run("run", "--for", "500ms")
	require.NoError(t, err)
	assert.Contains(t, out, "ticking 1 running timers every 10ms")
	assert.Contains(t, out, "Timer Completed: Tea has finished!")
	assert.Equal(t, 1, strings.Count(out, "has finished!"))

	assert.Contains(t, env.mustRun("list"), "completed")
}

func TestRunDurationFlag(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"run", "--for", "2m"})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cli.Run.For)
}
