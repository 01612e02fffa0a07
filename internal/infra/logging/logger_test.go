package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFormattedEntries(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	logger.Info("analyze", "solved 10 activities")
	logger.Debug("loader", "read schedule.csv")

	data, err := os.ReadFile(filepath.Join(dir, "slipway.log"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[INFO] [analyze] solved 10 activities")
	assert.Contains(t, content, "[DEBUG] [loader] read schedule.csv")
}

func TestLoggerRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Info("analyze", "hidden")
	logger.Error("analyze", "shown")

	data, err := os.ReadFile(filepath.Join(dir, "slipway.log"))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "[ERROR] [analyze] shown")
}

func TestLoggerDisabledWithoutDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	// Must not panic or create files.
	logger.Info("analyze", "dropped")
	assert.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("anything"))
}
