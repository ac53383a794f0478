package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{in: "debug", expected: slog.LevelDebug},
		{in: "INFO", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, logging.ParseLevel(tt.in))
		})
	}
}

func TestNewLoggerAddsContextAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, logging.Config{
		Level:       "info",
		Service:     logging.ServiceInfo{Name: "medication-remind", Version: "test"},
		Environment: logging.EnvDev,
	})

	ctx := logging.WithRequestID(context.Background(), "req-1")
	ctx = logging.WithModule(ctx, logging.ModuleReminder)

	logger.InfoContext(ctx, "hello", slog.String("user_id", "alice"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "reminder", record["module"])
	assert.Equal(t, "alice", record["user_id"])
	assert.Equal(t, "dev", record["env"])

	service, ok := record["service"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "medication-remind", service["name"])
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, logging.Config{Level: "warn"})
	logger.Info("dropped")

	assert.Empty(t, buf.String())
}

func TestValidateAndExtractRequestID(t *testing.T) {
	assert.Equal(t, "abc-123", logging.ValidateAndExtractRequestID("abc-123"))

	generated := logging.ValidateAndExtractRequestID("has spaces")
	assert.NotEqual(t, "has spaces", generated)
	assert.Len(t, generated, 36)

	assert.Len(t, logging.ValidateAndExtractRequestID(""), 36)
}
