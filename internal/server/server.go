package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/liquidfilters/pkg/health"
	"github.com/dmitrymomot/liquidfilters/pkg/locale"
	"github.com/dmitrymomot/liquidfilters/pkg/logger"
)

// Server is the preview HTTP server.
type Server struct {
	cfg    Config
	log    *slog.Logger
	newID  func() string
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRequestIDGenerator replaces the UUID request ID generator.
func WithRequestIDGenerator(fn func() string) Option {
	return func(s *Server) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New builds a server and its routes.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		cfg: cfg,
		log: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		RequestID(s.newID),
		middleware.RealIP,
		s.accessLog,
		s.recoverer,
	)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	r.NotFound(s.wrap(func(http.ResponseWriter, *http.Request) error {
		return &HTTPError{Message: http.StatusText(http.StatusNotFound), Code: http.StatusNotFound}
	}))
	r.MethodNotAllowed(s.wrap(func(http.ResponseWriter, *http.Request) error {
		return &HTTPError{Message: http.StatusText(http.StatusMethodNotAllowed), Code: http.StatusMethodNotAllowed}
	}))

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(health.Checks{
		"locale_presets": func(context.Context) error { return locale.Ready() },
	}, health.WithLogger(s.log)))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/handle", s.wrap(s.handleSlug))
		r.Get("/money", s.wrap(s.handleMoney))
	})
	return r
}

// Run listens on cfg.Addr and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully within
// cfg.ShutdownTimeout. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		s.log.Info("shutdown completed")
		return nil
	})

	return g.Wait()
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	he := toHTTPError(err)
	var pe *PanicError
	switch {
	case errors.As(err, &pe):
		s.log.ErrorContext(r.Context(), "panic recovered",
			slog.Any("panic", pe.Value),
			slog.String("stack", string(pe.Stack)),
		)
	case he.Code >= http.StatusInternalServerError:
		s.log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
	}
	writeJSON(w, he.Code, errorResponse{Error: he.Message, RequestID: GetRequestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
