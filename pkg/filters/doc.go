// Package filters implements the template filters that sit around the slug and money
// formatters: HTML tag builders, URL helpers, digests, string and collection helpers.
//
// Every filter is a plain function with no shared state except the HTML sanitizer
// policies, which are built once on first use. Filters that can fail return an
// error wrapping one of the package sentinels or a money sentinel.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/liquidfilters/pkg/filters"
//
//	filters.Handleize("Hello World")        // "hello-world"
//	filters.URLParamEscape("a&b c")         // "a%26b%20c"
//	filters.HexToRGBA("#fff", 0.5)          // "rgba(255,255,255,0.5)"
//	filters.Money(1234.5, money.DefaultConventions()) // "$1,234.50"
//
// Image URL filters return sized placeholders, not real asset locations.
package filters
