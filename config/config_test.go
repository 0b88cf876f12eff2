package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pressure.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "AA", cfg.Start)
	assert.Equal(t, 30, cfg.Single.Minutes)
	assert.Equal(t, 26, cfg.Dual.Minutes)
	assert.Equal(t, 0, cfg.Dual.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
start: BB
single:
  minutes: 20
dual:
  minutes: 12
  workers: 3
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "BB", cfg.Start)
	assert.Equal(t, 20, cfg.Single.Minutes)
	assert.Equal(t, 12, cfg.Dual.Minutes)
	assert.Equal(t, 3, cfg.Dual.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "dual:\n  workers: 3\n")
	t.Setenv("PRESSURE_DUAL_WORKERS", "8")
	t.Setenv("PRESSURE_START", "JJ")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Dual.Workers)
	assert.Equal(t, "JJ", cfg.Start)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "dual:\n  workers: -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeConfig(t, "log:\n  level: loud\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	base := config.Config{
		Start:  "AA",
		Single: config.SingleConfig{Minutes: 30},
		Dual:   config.DualConfig{Minutes: 26},
		Log:    config.LogConfig{Level: "warn"},
	}
	require.NoError(t, base.Validate())

	c := base
	c.Start = ""
	assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)

	c = base
	c.Single.Minutes = -1
	assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)

	c = base
	c.Dual.Minutes = -1
	assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
}
