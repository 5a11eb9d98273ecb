package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/liquidfilters/pkg/logger"
)

type requestIDKey struct{}

// RequestIDHeaders are checked in order for an upstream request ID.
var RequestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

const requestIDResponseHeader = "X-Request-ID"

// RequestID reuses the first upstream request ID header or generates a UUID, stores
// it in the request context and echoes it in the response.
func RequestID(generate func() string) func(http.Handler) http.Handler {
	if generate == nil {
		generate = uuid.NewString
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			for _, h := range RequestIDHeaders {
				if v := r.Header.Get(h); v != "" {
					id = v
					break
				}
			}
			if id == "" {
				id = generate()
			}

			w.Header().Set(requestIDResponseHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds "request_id" to every record logged with a request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := GetRequestID(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
