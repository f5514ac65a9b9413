package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf))

	log.Info("hello", "voice", "nova")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "nova", rec["voice"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf), WithLevel("warn"))

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))

	log = New(WithOutput(&buf), WithLevel("nonsense"))
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf), WithFormat("TEXT"))

	log.Info("server started", "addr", ":8080")

	out := buf.String()
	assert.Contains(t, out, "server started")
	assert.Contains(t, out, ":8080")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestNew_LogFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "tts.log")
	log := New(WithOutput(&buf), WithLogFile(path))

	log.Error("generation failed", "status", 503)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generation failed")
	assert.Equal(t, buf.String(), string(data))
}
