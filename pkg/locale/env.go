package locale

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/liquidfilters/pkg/money"
)

// EnvConfig holds the POSIX locale variables that influence monetary formatting.
type EnvConfig struct {
	All      string `env:"LC_ALL"`
	Monetary string `env:"LC_MONETARY"`
	Lang     string `env:"LANG"`
}

// Name returns the effective monetary locale name using POSIX precedence:
// LC_ALL, then LC_MONETARY, then LANG.
func (c EnvConfig) Name() string {
	switch {
	case c.All != "":
		return c.All
	case c.Monetary != "":
		return c.Monetary
	default:
		return c.Lang
	}
}

// LoadEnvConfig reads EnvConfig from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	cfg, err := env.ParseAs[EnvConfig]()
	if err != nil {
		return EnvConfig{}, fmt.Errorf("locale: parse environment: %w", err)
	}
	return cfg, nil
}

// FromEnv resolves conventions from the process environment.
// An unset environment yields Default.
func FromEnv() (money.Conventions, error) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		return money.Conventions{}, err
	}
	return FromConfig(cfg)
}

// FromConfig resolves conventions from already loaded locale variables.
func FromConfig(cfg EnvConfig) (money.Conventions, error) {
	return Lookup(cfg.Name())
}
