// Package slug generates URL-safe handles from arbitrary Unicode text.
//
// Handle is the storefront "handle"/"handleize" filter: it transliterates text with
// the table from package translit, drops anything that is not printable ASCII and
// collapses separators into single dashes.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/liquidfilters/pkg/slug"
//
//	s := slug.Handle("Hello, World!")
//	// Output: "hello-world"
//
//	s = slug.Handle("Über Größe straße")
//	// Output: "ueber-groesse-strasse"
//
//	s = slug.Handle("___multiple___underscores___")
//	// Output: "multiple-underscores"
//
// Punctuation is removed rather than replaced, so words joined by an apostrophe or
// a dot stay joined:
//
//	slug.Handle("Côte d'Ivoire")  // "cote-divoire"
//	slug.Handle("Price: $99.99")  // "price-9999"
//
// Characters the table does not know (CJK, emoji, most symbols) are dropped.
// Control characters such as tabs and newlines are dropped too, they do not act as
// word separators. Input that strips down to nothing returns "".
//
// # Options
//
// Make runs Handle with optional pre- and post-processing:
//
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// Output: "fish-and-chips"
//
//	slug.Make("This is a very long title", slug.MaxLength(12))
//	// Output: "this-is-a"
//
//	slug.Make("日本", slug.Fallback("untitled"))
//	// Output: "untitled"
//
//	slug.Make("Café", slug.Normalize(true))
//	// Output: "cafe"
//
// Make without options is identical to Handle. Both functions are pure and safe for
// concurrent use.
package slug
