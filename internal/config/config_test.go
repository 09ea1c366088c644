package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvNoColor, "")
	return dir
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Zero(t, cfg.Seed)
	assert.FileExists(t, GetConfigFilePath())
}

func TestLoadConfigReadsFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(GetConfigFilePath(),
		[]byte("seed = 12\nlog_level = \"debug\"\nquiet = true\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(12), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Quiet)
	assert.False(t, cfg.NoColor)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvNoColor, "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestBadSeedFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSeed, "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSetDefaultDeckAndGetDeckPath(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(GetDeckLibraryPath(), 0755))
	saved := filepath.Join(GetDeckLibraryPath(), "sorted.toml")
	require.NoError(t, os.WriteFile(saved, []byte("[deck]\n"), 0644))

	path, err := GetDeckPath("sorted")
	require.NoError(t, err)
	assert.Equal(t, saved, path)

	_, err = GetDeckPath("missing")
	assert.Error(t, err)

	require.NoError(t, SetDefaultDeck("sorted"))
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sorted", cfg.DefaultDeck)
}
