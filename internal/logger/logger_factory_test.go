package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"block_explorer/internal/config"
	"block_explorer/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppLogger_JSON(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	var buf bytes.Buffer
	appLogger, err := logger.NewAppLogger(config.LoggerConfig{Level: config.LogLevelInfo, Format: config.LogFormatJSON}, &buf)
	require.NoError(t, err)

	appLogger.Debug("hidden")
	appLogger.With("blockNumber", 42).Info("Transaction list updated", "txCount", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug is below the configured level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Transaction list updated", entry["msg"])
	assert.Equal(t, float64(42), entry["blockNumber"])
	assert.Equal(t, float64(2), entry["txCount"])
	assert.Equal(t, "block_explorer", entry["service"])
}

func TestNewAppLogger_Text(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	var buf bytes.Buffer
	appLogger, err := logger.NewAppLogger(config.LoggerConfig{Level: config.LogLevelDebug, Format: config.LogFormatText}, &buf)
	require.NoError(t, err)

	appLogger.Debug("Fetching block transactions", "blockNumber", 7)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "blockNumber=7")
}

func TestNewAppLogger_InvalidConfig(t *testing.T) {
	_, err := logger.NewAppLogger(config.LoggerConfig{Level: "verbose", Format: config.LogFormatJSON}, nil)
	assert.Error(t, err)

	_, err = logger.NewAppLogger(config.LoggerConfig{Level: config.LogLevelInfo, Format: "xml"}, nil)
	assert.Error(t, err)
}
