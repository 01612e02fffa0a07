package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slipway.toml"), []byte(content), 0o600))
}

func TestLoaderDefaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Project.Start)
	assert.False(t, cfg.Output.CriticalOnly)
	assert.Empty(t, cfg.Warnings)
}

func TestLoaderLocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	workDir := t.TempDir()

	writeConfig(t, globalDir, `
[log]
level = "debug"

[project]
start = "2026-01-05"
`)
	writeConfig(t, workDir, `
[log]
level = "error"
`)

	loader := NewLoaderWithGlobalDir(workDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	// Global values survive where the local file is silent.
	assert.Equal(t, "2026-01-05", cfg.Project.Start)
}

func TestLoaderUnknownKeysWarn(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, `
[log]
level = "info"
colour = true

[nonsense]
key = 1
`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Warnings, "unknown key in [log]: colour")
	assert.Contains(t, cfg.Warnings, "unknown section: nonsense")
}

func TestLoaderOutputSection(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, `
[output]
critical_only = true
`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Output.CriticalOnly)
}

func TestLoaderBadTOMLFails(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, `this is not toml = = =`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestConfigProjectStart(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	start, err := cfg.ProjectStart()
	require.NoError(t, err)
	assert.True(t, start.IsZero())

	cfg.Project.Start = "2026-03-02"
	start, err = cfg.ProjectStart()
	require.NoError(t, err)
	assert.Equal(t, 2026, start.Year())

	cfg.Project.Start = "03/02/2026"
	_, err = cfg.ProjectStart()
	assert.Error(t, err)
}
