package filters

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/liquidfilters/pkg/slug"
)

var camelSeparators = strings.NewReplacer("-", " ", "_", " ")

// CamelCase upper-cases the first letter of every word and removes the separators.
// Words are split on spaces, dashes and underscores; other letters keep their case.
//
//	CamelCase("coming-soon_page") // "ComingSoonPage"
func CamelCase(s string) string {
	words := strings.Fields(camelSeparators.Replace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

// Handleize is slug.Handle under its template filter name.
func Handleize(s string) string {
	return slug.Handle(s)
}

// Pluralize returns singular when count is exactly 1 and plural otherwise.
func Pluralize(count float64, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// JSON encodes v as compact JSON without escaping HTML characters.
func JSON(v any) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// WeightWithUnit appends a unit to weight. An empty unit defaults to "lb".
func WeightWithUnit(weight float64, unit string) string {
	if unit == "" {
		unit = "lb"
	}
	return strconv.FormatFloat(weight, 'f', -1, 64) + " " + unit
}

// HexToRGBA converts a 3 or 6 digit hex color, with or without "#", to a CSS
// color. Opacity above 1 is clamped to 1 and a zero opacity yields rgb() instead
// of rgba(). Malformed colors yield "rgb(0,0,0)".
//
//	HexToRGBA("#812", 0.5) // "rgba(136,17,34,0.5)"
func HexToRGBA(color string, opacity float64) string {
	const fallback = "rgb(0,0,0)"

	color = strings.TrimPrefix(color, "#")
	switch len(color) {
	case 3:
		color = string([]byte{color[0], color[0], color[1], color[1], color[2], color[2]})
	case 6:
	default:
		return fallback
	}

	var rgb [3]uint64
	for i := range rgb {
		v, err := strconv.ParseUint(color[i*2:i*2+2], 16, 8)
		if err != nil {
			return fallback
		}
		rgb[i] = v
	}

	if opacity == 0 {
		return fmt.Sprintf("rgb(%d,%d,%d)", rgb[0], rgb[1], rgb[2])
	}
	opacity = math.Min(math.Abs(opacity), 1)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", rgb[0], rgb[1], rgb[2], strconv.FormatFloat(opacity, 'f', -1, 64))
}
