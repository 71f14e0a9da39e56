package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendancecli/internal/config"
)

func TestNewLogger_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "test.log")

	logger, closer, err := NewLogger(config.LoggingConfig{
		Level:    "info",
		Output:   "file",
		FilePath: logFile,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("test message", "key", "value")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &entry), "log output is not valid JSON")
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Contains(t, entry, "source")
}

func TestNewLogger_BothOutputs(t *testing.T) {
	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "both.log")

	logger, closer, err := newLogger(config.LoggingConfig{
		Level:    "debug",
		Output:   "both",
		FilePath: logFile,
	}, &console)
	require.NoError(t, err)

	logger.Debug("debug message")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "debug message")
	assert.Contains(t, console.String(), "debug message")
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var console bytes.Buffer

	logger, _, err := newLogger(config.LoggingConfig{Level: "warn", Output: "console"}, &console)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
}

func TestRunIDInjection(t *testing.T) {
	var console bytes.Buffer

	logger, _, err := newLogger(config.LoggingConfig{Level: "info", Output: "console"}, &console)
	require.NoError(t, err)

	ctx := WithRunID(context.Background(), "run-123")
	logger.InfoContext(ctx, "with run")
	logger.InfoContext(context.Background(), "without run")

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "run-123", first["run_id"])
	assert.NotContains(t, second, "run_id")
}

func TestRunIDInjection_WithAttrsKeepsWrapper(t *testing.T) {
	var console bytes.Buffer

	logger, _, err := newLogger(config.LoggingConfig{Level: "info", Output: "console"}, &console)
	require.NoError(t, err)

	WithComponent(logger, "extractor").InfoContext(WithRunID(context.Background(), "run-9"), "tagged")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(console.Bytes(), &entry))
	assert.Equal(t, "extractor", entry["component"])
	assert.Equal(t, "run-9", entry["run_id"])
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input).String())
		})
	}
}

func TestNewLogger_UnwritableFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// The log directory path runs through a regular file
	_, _, err := NewLogger(config.LoggingConfig{
		Output:   "file",
		FilePath: filepath.Join(blocker, "app.log"),
	})
	assert.Error(t, err)
}

func TestGetRunID_Missing(t *testing.T) {
	assert.Empty(t, GetRunID(context.Background()))
}
