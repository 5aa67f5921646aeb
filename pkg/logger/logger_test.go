package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		" DEBUG ":  slog.LevelDebug,
		"warn":     slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"error":    slog.LevelError,
		"info":     slog.LevelInfo,
		"":         slog.LevelInfo,
		"nonsense": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), "level %q", in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Module: "menutree", Version: "v1", Level: "warn"})

	l.Info("dropped")
	l.Warn("kept", "id", "users")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "menutree", rec["module"])
	assert.Equal(t, "v1", rec["version"])
	assert.Equal(t, "users", rec["id"])
	assert.NotContains(t, rec, "source")
}

func TestNewTextWithSource(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Module: "m", Version: "v", Level: "debug", Format: "text"})

	l.Debug("hello")
	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "module=m")
	assert.Contains(t, out, "source=")
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv(EnvVarLogLevel, "error")
	t.Setenv(EnvVarLogFormat, "text")

	opts := OptionsFromEnv("m", "v")
	assert.Equal(t, Options{Module: "m", Version: "v", Level: "error", Format: "text"}, opts)
}
