package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheencheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadChecker_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadChecker(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultChecker(), cfg)
}

func TestLoadChecker_Overrides(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
workers: 8
fix: suggest
database:
  enabled: true
  host: db
  port: 6543
`)

	cfg, err := LoadChecker(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, FixSuggest, cfg.Fix)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://sheencheck:sheencheck@db:6543/sheencheck?sslmode=disable", cfg.Database.DSN())
}

func TestLoadChecker_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "workers: [1"},
		{"unknown fix", "fix: nuke"},
		{"negative workers", "workers: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadChecker(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
