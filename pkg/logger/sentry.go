package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// withSentry fans base out to Sentry when a DSN is configured. Without a DSN, or
// when the SDK fails to start, base is returned unchanged.
func withSentry(cfg SentryConfig, base slog.Handler) slog.Handler {
	if cfg.DSN == "" {
		return base
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(base).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return base
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if lvl, err := ParseLevel(cfg.MinLevel); err == nil && lvl >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return newMultiHandler(base, sentryHandler)
}

// Flush waits up to timeout for buffered Sentry events to be sent.
// It is a no-op when Sentry was never initialized.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
