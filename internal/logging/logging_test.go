package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info("hello", KeyUser, "u1", KeyKind, "notes")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "u1", entry["user"])
	assert.Equal(t, "notes", entry["kind"])
}

func TestInitTextLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelWarn, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info("dropped")
	Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestLogOperation(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	LogOperation("save_notes", KeyCount, 3)

	assert.True(t, strings.Contains(buf.String(), "op=save_notes"))
}

func TestDebugFlag(t *testing.T) {
	InitDebug()
	t.Cleanup(func() { Init(DefaultConfig()) })
	assert.True(t, Debug)
}
