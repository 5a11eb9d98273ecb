package slug

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/liquidfilters/pkg/translit"
)

var (
	underscoreRun = regexp.MustCompile(`_+`)
	nonSlugChars  = regexp.MustCompile(`[^-\pL\pN\s]+`)
	separatorRun  = regexp.MustCompile(`[-\s]+`)
)

// Handle converts arbitrary text into a URL-safe handle.
//
// The stages run in a fixed order, each consuming the output of the previous one:
// transliteration, printable-ASCII filter, underscore collapse, lowercasing,
// removal of anything that is not a letter, digit, dash or whitespace, separator
// collapse and finally trimming of dashes at both ends.
//
// The result only contains [a-z0-9-] with single internal dashes. Input that strips
// down to nothing yields "".
func Handle(s string) string {
	if s == "" {
		return ""
	}

	s = translit.Transliterate(s)
	s = printableASCII(s)
	s = underscoreRun.ReplaceAllLiteralString(s, "-")
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllLiteralString(s, "")
	s = separatorRun.ReplaceAllLiteralString(s, "-")

	return strings.Trim(s, "-")
}

// printableASCII drops every rune outside 0x20-0x7E, including invalid UTF-8.
func printableASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, s)
}
