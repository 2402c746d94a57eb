package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// each test swaps HOME
	homedir.DisableCache = true
}

// isolate points every config search path at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(EnvConfigPath, dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".todo"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, ".todo", "todo.log"), cfg.LogFile)
	assert.False(t, cfg.Dark)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "", cfg.File)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := isolate(t)
	body := "data_dir: " + filepath.Join(dir, "data") + "\ndark: true\nlog_level: DEBUG\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte(body), 0o644))
	t.Setenv("TODO_COLOR", "never")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)
	assert.True(t, cfg.Dark)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, filepath.Join(dir, ".todo.yaml"), cfg.File)
}

func TestMalformedConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte("dark: [unterminated"), 0o644))

	_, err := Load(New())
	assert.Error(t, err)
}
