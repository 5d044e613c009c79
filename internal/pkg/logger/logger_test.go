package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Options{App: "hexasuite-dashboard", Env: "test", Level: "warn"})

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("pending list fetch failed", "list", "leave")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pending list fetch failed", entry["message"])
	assert.Equal(t, "hexasuite-dashboard", entry["app"])
}

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.log")
	log, closer := New(Options{Level: "info", File: path, MaxSizeMB: 1})
	log.Info("hello")
	require.NoError(t, closer.Close())
	assert.FileExists(t, path)
}
