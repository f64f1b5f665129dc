package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, KindArray, cfg.Queue.Kind)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logger:
  log_level: debug
  file_log_name: /tmp/queue.log
  max_size: 10
  max_backups: 3
  max_age: 7
  compress: true
queue:
  kind: ring
  initial_capacity: 64
  pooled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Logger{
		LogLevel:    "debug",
		FileLogName: "/tmp/queue.log",
		MaxBackups:  3,
		MaxAge:      7,
		MaxSize:     10,
		Compress:    true,
	}, cfg.Logger)
	assert.Equal(t, Queue{Kind: KindRing, InitialCapacity: 64, Pooled: true}, cfg.Queue)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "queue:\n  initial_capacity: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, KindArray, cfg.Queue.Kind)
	assert.Equal(t, 8, cfg.Queue.InitialCapacity)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad_level", "logger:\n  log_level: loud\n", "invalid config"},
		{"bad_kind", "queue:\n  kind: heap\n", "invalid config"},
		{"negative_capacity", "queue:\n  initial_capacity: -1\n", "invalid config"},
		{"malformed_yaml", "queue: [", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
