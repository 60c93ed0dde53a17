package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agenthub.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 5*time.Second, cfg.StatusInterval)
	assert.Equal(t, 2*time.Second, cfg.ReplyDelay)
	assert.Equal(t, 15.0, cfg.MaxIncrement)
	assert.Equal(t, 50, cfg.Retention)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tick_interval: 250ms
reply_delay: 3s
retention: 0
seed: 42
log:
  level: debug
  json: true
  file: /tmp/agenthub.log
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 3*time.Second, cfg.ReplyDelay)
	assert.Equal(t, 5*time.Second, cfg.StatusInterval)
	assert.Equal(t, 0, cfg.Retention)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, LogConfig{Level: "debug", JSON: true, File: "/tmp/agenthub.log"}, cfg.Log)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero tick", "tick_interval: 0s\n"},
		{"increment too large", "max_increment: 40\n"},
		{"negative retention", "retention: -1\n"},
		{"bad level", "log:\n  level: verbose\n"},
		{"bad duration", "tick_interval: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), true)
			assert.Error(t, err)
		})
	}
}

func TestSeedOrNow(t *testing.T) {
	now := time.Unix(100, 5)
	assert.Equal(t, now.UnixNano(), Default().SeedOrNow(now))

	cfg := Default()
	cfg.Seed = 7
	assert.Equal(t, int64(7), cfg.SeedOrNow(now))
}
