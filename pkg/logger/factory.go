package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New builds a logger writing to w in the configured format and level, decorated
// with the given context extractors. An unknown level falls back to info and an
// unknown format to JSON.
func New(cfg Config, w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	lvl, err := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: lvl}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		base = slog.NewTextHandler(w, opts)
	} else {
		base = slog.NewJSONHandler(w, opts)
	}

	log := slog.New(NewLogHandlerDecorator(withSentry(cfg.Sentry, base), extractors...))
	if err != nil {
		log.Warn("invalid log level, using info", slog.String("level", cfg.Level))
	}
	return log
}

// NewNope returns a logger that discards everything.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
