package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr              string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// LoadConfig reads Config from LIQUIDFILTERS_-prefixed environment variables.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "LIQUIDFILTERS_"})
	if err != nil {
		return Config{}, fmt.Errorf("server: parse env: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns the same values LoadConfig yields on an empty environment.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		RequestTimeout:    5 * time.Second,
		ShutdownTimeout:   15 * time.Second,
	}
}
