package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/liquidfilters/pkg/logger"
)

const (
	defaultTimeout = 5 * time.Second

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

// Checks maps a check name to its function.
type Checks map[string]CheckFunc

// Response is the JSON body of a health check.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the outcome of one named check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures ReadinessHandler.
type Option func(*config)

// WithTimeout bounds the whole check run. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger logs failed checks at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Run executes every check concurrently and aggregates the result. The returned
// error wraps ErrCheckFailed when at least one check failed.
func Run(ctx context.Context, checks Checks, opts ...Option) (*Response, error) {
	return runChecks(ctx, checks, newConfig(opts...))
}

func runChecks(ctx context.Context, checks Checks, cfg *config) (*Response, error) {
	if len(checks) == 0 {
		return &Response{Status: StatusHealthy}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]Check, len(checks))
		failed  []error
		g       errgroup.Group
	)

	for name, check := range checks {
		g.Go(func() error {
			err := runOne(ctx, check)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				results[name] = Check{Status: StatusHealthy}
				return nil
			}
			results[name] = Check{Status: StatusUnhealthy, Error: err.Error()}
			failed = append(failed, fmt.Errorf("%s: %w", name, err))
			cfg.logger.WarnContext(ctx, "health check failed",
				slog.String("check", name),
				slog.String("error", err.Error()),
			)
			return nil
		})
	}
	_ = g.Wait()

	resp := &Response{Status: StatusHealthy, Checks: results}
	if len(failed) > 0 {
		resp.Status = StatusUnhealthy
		return resp, fmt.Errorf("%w: %w", ErrCheckFailed, errors.Join(failed...))
	}
	return resp, nil
}

// runOne runs check and reports ErrCheckTimeout if ctx expires first.
func runOne(ctx context.Context, check CheckFunc) error {
	done := make(chan error, 1)
	go func() { done <- check(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrCheckTimeout, ctx.Err())
	}
}
