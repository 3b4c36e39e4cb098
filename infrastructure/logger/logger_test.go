package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestWriterLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf)

	log.Info("preview fetched", "url", "https://youtu.be/dQw4w9WgXcQ")
	log.Warning("slow backend")
	log.Error("transcribe failed", errors.New("boom"), "status", 500)

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 3)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "preview fetched", entries[0]["msg"])
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", entries[0]["url"])
	assert.Equal(t, "logger_test.go", entries[0]["file"])
	assert.Equal(t, "TestWriterLoggerFields", entries[0]["function"])
	assert.NotEmpty(t, entries[0]["timestamp"])

	assert.Equal(t, "WARN", entries[1]["level"])

	assert.Equal(t, "ERROR", entries[2]["level"])
	assert.Equal(t, "boom", entries[2]["err"])
	assert.EqualValues(t, 500, entries[2]["status"])
}

func TestFileLoggerCreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := NewFileLogger(dir, "ytcompanion")
	require.NoError(t, err)
	log.Info("application starting")
	log.Close()

	files, err := filepath.Glob(filepath.Join(dir, "ytcompanion_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	raw, err := os.ReadFile(files[0])
	require.NoError(t, err)
	entries := decodeLines(t, string(raw))
	require.Len(t, entries, 1)
	assert.Equal(t, "application starting", entries[0]["msg"])
}

func TestClosedLoggerDropsEntries(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf)
	log.Close()

	assert.NotPanics(t, func() { log.Info("after close") })
	assert.Empty(t, buf.String())
}
