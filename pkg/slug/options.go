package slug

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// config holds the settings applied by Make.
type config struct {
	replacer  *strings.Replacer
	fallback  string
	maxLength int
	normalize bool
}

// Option configures Make.
type Option func(*config)

// MaxLength limits the slug to n characters, cutting at a dash boundary when one
// exists inside the limit. Zero or negative means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// CustomReplace applies literal replacements before the slug pipeline runs.
// Keys are applied in sorted order so overlapping keys behave the same on every call.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		if len(replacements) == 0 {
			return
		}
		pairs := make([]string, 0, len(replacements)*2)
		for _, k := range slices.Sorted(maps.Keys(replacements)) {
			if k == "" {
				continue
			}
			pairs = append(pairs, k, replacements[k])
		}
		c.replacer = strings.NewReplacer(pairs...)
	}
}

// Normalize composes decomposed sequences (NFC) before transliteration, so "e" followed
// by a combining acute accent is treated like "é". Disabled by default.
func Normalize(enabled bool) Option {
	return func(c *config) {
		c.normalize = enabled
	}
}

// Fallback sets the value returned when the input produces an empty slug.
// The fallback goes through the same pipeline.
func Fallback(s string) Option {
	return func(c *config) {
		c.fallback = s
	}
}

// Make builds a slug with optional tweaks on top of Handle.
// With no options it returns exactly Handle(s).
func Make(s string, opts ...Option) string {
	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.normalize {
		s = norm.NFC.String(s)
	}
	if cfg.replacer != nil {
		s = cfg.replacer.Replace(s)
	}

	result := truncate(Handle(s), cfg.maxLength)
	if result == "" && cfg.fallback != "" {
		result = truncate(Handle(cfg.fallback), cfg.maxLength)
	}
	return result
}

// truncate shortens an already normalized slug without leaving a trailing dash.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}

	cut := s[:n]
	if s[n] != '-' {
		if i := strings.LastIndexByte(cut, '-'); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRight(cut, "-")
}
