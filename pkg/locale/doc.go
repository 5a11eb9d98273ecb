// Package locale supplies money.Conventions for named locales.
//
// Formatting in package money never reads process state. This package is the
// collaborator that does: it ships an embedded table of POSIX monetary conventions
// (presets.yaml), resolves POSIX or BCP 47 names against it with
// golang.org/x/text/language, and reads LC_ALL, LC_MONETARY and LANG from the
// environment.
//
// # Main Functions
//
// [Lookup] resolves a locale name to conventions.
// [Negotiate] picks conventions from an Accept-Language header.
// [FromEnv] and [FromConfig] resolve the POSIX locale variables.
// [Active], [SetActive], [InitFromEnv] and [Reset] manage a process-wide snapshot.
// [Available] lists the preset names and [Ready] reports whether they loaded.
//
// # Features
//
//   - Embedded presets for common locales, decoded once on first use
//   - POSIX names with codeset and modifier ("de_DE.UTF-8@euro") and BCP 47 tags
//   - Closest-preset matching by language, with the currency symbol of the
//     requested region ("es_MX" keeps Spanish separators and uses "$")
//   - POSIX variable precedence: LC_ALL, then LC_MONETARY, then LANG
//   - Atomic snapshot safe for concurrent reads and writes
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/liquidfilters/pkg/locale"
//
//	c, err := locale.Lookup("de_DE.UTF-8")
//	if err != nil {
//	    return err
//	}
//	s, _ := money.FormatCurrency(1234.5, c)
//	// Output: "1.234,50 €"
//
// "C", "POSIX" and the empty name carry no monetary data and resolve to [Default]
// (en_US: "$1,234.50").
//
// # Name Resolution
//
// An exact preset wins. Otherwise the name is matched to the closest preset of
// the same language; a language without any preset is an error rather than a
// silent fallback to en_US:
//
//	locale.Lookup("fr_FR")  // exact preset
//	locale.Lookup("de_AT")  // a German preset, "€" from Austria
//	locale.Lookup("sw_KE")  // ErrUnknownLocale
//
// # Content Negotiation
//
// Negotiate walks the Accept-Language tags in quality order and returns the first
// one Lookup resolves. Unsupported languages are skipped and Default is returned
// when none match:
//
//	c := locale.Negotiate(r.Header.Get("Accept-Language"))
//
// # Environment
//
// FromEnv reads the POSIX variables with github.com/caarlos0/env. FromConfig takes
// an [EnvConfig] loaded elsewhere, which keeps callers testable:
//
//	c, err := locale.FromConfig(locale.EnvConfig{
//	    Monetary: "ja_JP.UTF-8",
//	    Lang:     "de_DE.UTF-8",
//	})
//	// ja_JP wins over LANG: "¥1,235"
//
// # Active Snapshot
//
// Long-running processes can cache the environment's conventions once at startup
// and re-initialize them explicitly when the locale changes:
//
//	if err := locale.InitFromEnv(); err != nil {
//	    log.Warn("falling back to en_US", slog.Any("error", err))
//	}
//	c := locale.Active()
//
// SetActive rejects invalid conventions and keeps the previous snapshot. When
// nothing is configured, or after Reset, Active returns Default.
//
// # Readiness
//
// Ready forces the presets to load and reports decoding problems, so it can back
// a health check:
//
//	health.Checks{"locale_presets": func(context.Context) error { return locale.Ready() }}
//
// # Error Handling
//
// The package defines sentinel errors for consistent error handling:
//
//   - [ErrUnknownLocale] - Name cannot be parsed or its language has no preset
//   - [ErrInvalidPresets] - Embedded preset table is malformed
package locale
