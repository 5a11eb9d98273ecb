package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidfilters/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "info", Format: "json"}, &buf, requestID)

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
		log.InfoContext(ctx, "request processed", slog.Int("status", 200))

		rec := decode(t, &buf)
		assert.Equal(t, "request processed", rec["msg"])
		assert.Equal(t, "abc-123", rec["request_id"])
		assert.EqualValues(t, 200, rec["status"])
	})

	t.Run("extractor skipped when value missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{}, &buf, requestID, nil)
		log.Info("no request")

		rec := decode(t, &buf)
		assert.NotContains(t, rec, "request_id")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "warn"}, &buf)
		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Format: "TEXT"}, &buf)
		log.Info("hello", slog.String("k", "v"))
		assert.Contains(t, buf.String(), "msg=hello k=v")
	})

	t.Run("invalid level warns and uses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "loud"}, &buf)
		assert.Contains(t, buf.String(), "invalid log level")

		buf.Reset()
		log.Debug("hidden")
		assert.Zero(t, buf.Len())
	})

	t.Run("attrs and groups keep extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{}, &buf, requestID).With("component", "server").WithGroup("req")

		ctx := context.WithValue(context.Background(), ctxKey{}, "r-1")
		log.InfoContext(ctx, "served", slog.String("path", "/v1/handle"))

		rec := decode(t, &buf)
		assert.Equal(t, "server", rec["component"])
		group, ok := rec["req"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "/v1/handle", group["path"])
		assert.Equal(t, "r-1", group["request_id"])
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Error("discarded") })
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SENTRY_DSN", "")

	cfg, err := logger.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.Sentry.DSN)
	assert.Equal(t, "production", cfg.Sentry.Environment)
	assert.True(t, strings.EqualFold(cfg.Sentry.MinLevel, "warn"))
}
