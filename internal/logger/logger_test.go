package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Info("hidden")
	Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	ctx = WithSessionID(ctx, "session-1")

	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))

	FromContext(ctx).Info("scoped")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-req-123", entry[AttrKeyRequestID])
	assert.Equal(t, "session-1", entry[AttrKeySessionID])
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
	assert.Equal(t, 4, strings.Count(a, "-"))
}

func TestConfigPresets(t *testing.T) {
	prod := ProductionConfig()
	assert.Equal(t, "json", prod.Format)
	assert.Equal(t, "info", prod.Level)
	assert.Equal(t, "prod", prod.Environment)
	assert.False(t, prod.AddSource)

	dev := DevelopmentConfig()
	assert.Equal(t, "text", dev.Format)
	assert.Equal(t, "debug", dev.Level)
	assert.True(t, dev.AddSource)

	def := DefaultConfig()
	assert.NotEmpty(t, def.ServiceName)
	assert.NotEmpty(t, def.Level)
	assert.NotEmpty(t, def.Format)
}

func TestConfig_LogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for level, want := range tests {
		assert.Equal(t, want, Config{Level: level}.LogLevel(), level)
	}
}
