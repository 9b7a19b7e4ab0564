package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the default logger into a buffer for the test's duration
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reload", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	require.Contains(t, logOutput, LogMsgRequestHeaders)
	assert.NotContains(t, logOutput, "secret-key-123")
	assert.NotContains(t, logOutput, "Bearer mytoken")
	assert.Contains(t, logOutput, RedactedValue)
	assert.Contains(t, logOutput, "TestAgent")
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/materials", nil))

	logOutput := buf.String()
	assert.Contains(t, logOutput, LogMsgRequestStarted)
	assert.Contains(t, logOutput, LogMsgRequestCompleted)
	assert.Contains(t, logOutput, "request_id=")
	assert.Contains(t, logOutput, "status=418")
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	buf := captureLogs(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Empty(t, buf.String())
}
