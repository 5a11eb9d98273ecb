// Package translit holds the static transliteration table used to turn Unicode text
// into ASCII before slug generation.
//
// The table maps a canonical ASCII token (a letter, a digraph such as "sh", "(c)",
// or a single space for exotic whitespace) to the Latin, Greek, Cyrillic, Arabic,
// Georgian, Myanmar and Devanagari characters it stands for. It is built once at
// package initialization and never mutated, so it is safe for concurrent use without
// locking.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/liquidfilters/pkg/translit"
//
//	s := translit.Transliterate("Ærøskøbing")
//	// Output: "AEroskobing"
//
//	c, ok := translit.Lookup("ж")
//	// Output: "zh", true
//
// Application order matters. Entries are applied in the order they are declared and
// an earlier entry wins when two variants overlap, which keeps output stable across
// releases.
package translit
