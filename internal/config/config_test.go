package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDB, EnvCatalog, EnvInterval, EnvLogLevel, EnvLogFile, EnvEphemeral} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10*time.Second, cfg.Interval)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	catalog := filepath.Join(t.TempDir(), "offers.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte("offers: []\n"), 0o644))

	t.Setenv(EnvDB, "/tmp/c.db")
	t.Setenv(EnvCatalog, catalog)
	t.Setenv(EnvInterval, "3s")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFile, "/tmp/c.log")
	t.Setenv(EnvEphemeral, "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.db", cfg.DBPath)
	assert.Equal(t, catalog, cfg.CatalogPath)
	assert.Equal(t, 3*time.Second, cfg.Interval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/c.log", cfg.LogFile)
	assert.True(t, cfg.Ephemeral)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvParseErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvInterval, "soon"},
		{EnvEphemeral, "perhaps"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Config)
		field string
	}{
		{name: "interval too short", mut: func(c *Config) { c.Interval = 500 * time.Millisecond }, field: "Interval"},
		{name: "interval too long", mut: func(c *Config) { c.Interval = 2 * time.Hour }, field: "Interval"},
		{name: "unknown level", mut: func(c *Config) { c.LogLevel = "chatty" }, field: "LogLevel"},
		{name: "empty level", mut: func(c *Config) { c.LogLevel = "" }, field: "LogLevel"},
		{name: "missing catalog", mut: func(c *Config) { c.CatalogPath = "/does/not/exist.yaml" }, field: "CatalogPath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mut(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
