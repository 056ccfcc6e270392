package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AU_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDirHonorsEnv(t *testing.T) {
	dir := setupHome(t)
	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FilePath())
}

func TestLoadDefaults(t *testing.T) {
	setupHome(t)
	Load()

	assert.Equal(t, "none", Get(KeyLogLevel))
	assert.Equal(t, "dev", Get(KeyEnv))
	assert.False(t, GetBool(KeyNonInteractive))
}

func TestLoadEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("AU_LOG_LEVEL", "debug")
	t.Setenv("AU_NON_INTERACTIVE", "true")
	Load()

	assert.Equal(t, "debug", Get(KeyLogLevel))
	assert.True(t, GetBool(KeyNonInteractive))
}

func TestSetPersists(t *testing.T) {
	dir := setupHome(t)
	Load()

	require.NoError(t, Set(KeyEnv, "prod"))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "env: prod")

	viper.Reset()
	Load()
	assert.Equal(t, "prod", Get(KeyEnv))
}
