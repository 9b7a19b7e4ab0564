package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoadoutCalc_Go/internal/config"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("app_2026-01-%02d_10-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "planner_2026-01-01_10-00-00.log"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	cleanupLogs(dir, "app")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+2)
	assert.NotContains(t, names, "app_2026-01-01_10-00-00.log")
	assert.NotContains(t, names, "app_2026-01-03_10-00-00.log")
	assert.Contains(t, names, "app_2026-01-04_10-00-00.log")
	assert.Contains(t, names, "app_2026-01-12_10-00-00.log")
	assert.Contains(t, names, "planner_2026-01-01_10-00-00.log")
	assert.Contains(t, names, "notes.txt")
}

func TestSetupLogger_FileOnly(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{
		LogLevel:    "info",
		LogFormat:   "json",
		LogDir:      filepath.Join(t.TempDir(), "logs"),
		Environment: "test",
		ServiceName: "loadout-calc",
		Version:     "test",
	}

	f, err := SetupLogger(cfg, "planner", false)
	require.NoError(t, err)

	slog.Info("hello from the planner")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the planner")
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
	assert.Contains(t, filepath.Base(f.Name()), "planner_")
}
