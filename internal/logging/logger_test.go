package logging

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_JSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "json")

	logger.Info("dropped")
	logger.Warn("kept", "diff_id", "abc")

	line := buf.String()
	require.True(t, gjson.Valid(line), "not JSON: %s", line)
	assert.Equal(t, "kept", gjson.Get(line, "msg").String())
	assert.Equal(t, "abc", gjson.Get(line, "diff_id").String())
	assert.NotContains(t, line, "dropped")
}

func TestWithFields_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "json"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	var ctx context.Context
	handler := middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	WithFields(ctx, "diff_id", "d1").Info("hello")

	line := buf.String()
	assert.NotEmpty(t, gjson.Get(line, "request_id").String())
	assert.Equal(t, "d1", gjson.Get(line, "diff_id").String())

	buf.Reset()
	FromContext(context.Background()).Info("plain")
	assert.False(t, gjson.Get(buf.String(), "request_id").Exists())
}
