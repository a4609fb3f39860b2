package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelBasedMuxHandler_RoutesByLevel(t *testing.T) {
	var stdout, file bytes.Buffer
	log := slog.New(NewLevelBasedMuxHandler(&stdout, &file, slog.LevelDebug))

	log.Debug("debug only")
	log.Info("both", slog.String("user_id", "u1"))

	assert.Contains(t, stdout.String(), "debug only")
	assert.Contains(t, stdout.String(), "both")
	assert.NotContains(t, file.String(), "debug only")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "u1", entry["user_id"])
	assert.Contains(t, entry, "source")
}

func TestLevelBasedMuxHandler_WithAttrsWithoutFile(t *testing.T) {
	var stdout bytes.Buffer
	log := slog.New(NewLevelBasedMuxHandler(&stdout, nil, slog.LevelWarn)).
		With(slog.String("trace_id", "t-1")).
		WithGroup("req")

	log.Info("filtered")
	log.Warn("kept", slog.Int("status", 500))

	out := stdout.String()
	assert.NotContains(t, out, "filtered")
	assert.Contains(t, out, `"trace_id":"t-1"`)
	assert.Contains(t, out, `"req":{"status":500}`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewLoggerWithFile("info", path)
	require.NoError(t, err)
	l.Logger.Info("written to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")

	stdoutOnly, err := NewLoggerWithFile("info", "")
	require.NoError(t, err)
	assert.Nil(t, stdoutOnly.LogFile)
	assert.NoError(t, stdoutOnly.Close())

	_, err = NewLoggerWithFile("info", filepath.Join(t.TempDir(), "missing", "app.log"))
	assert.Error(t, err)
}
