// Package liquidfilters implements the text filters of a Shopify-style template
// engine: URL handles built from arbitrary Unicode text and locale-aware money
// formatting, plus the smaller helper filters that usually ship next to them.
//
// The two core filters are re-exported here:
//
//	liquidfilters.Handle("Déjà Vu!")                                 // "deja-vu"
//	liquidfilters.FormatCurrency(1234.5, money.DefaultConventions()) // "$1,234.50"
//
// Registering filters with a template engine is left to the caller.
//
// Subpackages:
//
//   - pkg/translit: the transliteration table
//   - pkg/slug: Handle and the option-driven Make
//   - pkg/money: Conventions and the formatters
//   - pkg/locale: named conventions presets, environment and Accept-Language lookup
//   - pkg/filters: tag, URL, digest, string and collection filters
package liquidfilters
