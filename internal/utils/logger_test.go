package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEventCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LogOptions{Level: "info", Format: "json"}, &buf)
	ctx := WithRequestID(context.Background(), "req-1")

	LogEvent(ctx, logger, "itinerary", "create", "itinerary created", slog.Int64("itinerary_id", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "itinerary created", line["msg"])
	assert.Equal(t, "itinerary", line["module"])
	assert.Equal(t, "create", line["action"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.EqualValues(t, 3, line["itinerary_id"])
}

func TestLoggerRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LogOptions{Format: "json"}, &buf)

	logger.Info("opening store", slog.String("dsn", "root:hunter2@tcp(127.0.0.1:3306)/travel"))

	assert.NotContains(t, buf.String(), "hunter2")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LogOptions{Level: "warn", Format: "text"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestRequestIDFromContextMissing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
