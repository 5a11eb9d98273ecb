// Package logger builds the structured logger used by the liquidfilters CLI and
// preview server.
//
// It wraps log/slog with two additions: context extractors that inject
// request-scoped attributes (the server adds request_id this way) and optional
// Sentry fan-out when SENTRY_DSN is set.
//
// # Basic Usage
//
//	cfg, err := logger.LoadConfig() // LOG_LEVEL, LOG_FORMAT, SENTRY_*
//	if err != nil {
//		return err
//	}
//	log := logger.New(cfg, os.Stderr, requestIDExtractor)
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//	// {"level":"INFO","msg":"request processed","status":200,"request_id":"abc-123"}
//
// # Context Extractors
//
// A ContextExtractor returns an attribute for the current context, or false to
// skip it. Extractors run on every log call, so values are always fresh.
//
// # Sentry
//
// With a DSN configured, errors create Sentry issues and warnings (or only errors,
// with SENTRY_MIN_LEVEL=error) are stored as Sentry logs. A missing DSN or a
// failed SDK start leaves logging on the local handler only. Call Flush before
// exit so buffered events are delivered.
package logger
