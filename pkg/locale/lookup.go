package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/liquidfilters/pkg/money"
)

// Default returns the conventions used when no locale is configured (en_US).
func Default() money.Conventions {
	return money.DefaultConventions()
}

// Lookup resolves a locale name to monetary conventions.
//
// Both POSIX names ("de_DE.UTF-8@euro") and BCP 47 tags ("de-DE") are accepted.
// "C", "POSIX" and "" carry no monetary data and resolve to Default.
// Names without an exact preset are matched to the closest one by language; when
// the requested region differs from the preset's, the currency symbol is taken from
// that region instead, so "es_MX" keeps Spanish separators but uses "$".
func Lookup(name string) (money.Conventions, error) {
	tag, err := parseName(name)
	if err != nil {
		return money.Conventions{}, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	if tag == language.Und {
		return Default(), nil
	}

	cat, err := loadCatalog()
	if err != nil {
		return money.Conventions{}, err
	}

	if i, ok := cat.byTag[tag.String()]; ok {
		return cat.presets[i].Conventions, nil
	}

	// The matcher falls back to the first preset with High confidence for
	// languages it has nothing for, so the base language must agree as well.
	_, i, conf := cat.matcher.Match(tag)
	if conf == language.No || !sameLanguage(tag, cat.tags[i]) {
		return money.Conventions{}, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}

	c := cat.presets[i].Conventions
	if symbol, ok := regionSymbol(tag, cat.tags[i]); ok {
		c.CurrencySymbol = symbol
	}
	return c, nil
}

// Negotiate picks conventions from an HTTP Accept-Language header, trying tags in
// order of preference. It falls back to Default when nothing matches.
func Negotiate(acceptLanguage string) money.Conventions {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return Default()
	}
	for _, tag := range tags {
		if c, err := Lookup(tag.String()); err == nil {
			return c
		}
	}
	return Default()
}

// parseName turns a POSIX locale name into a language tag.
// Codeset and modifier suffixes are dropped: "de_DE.UTF-8@euro" becomes "de-DE".
func parseName(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return language.Und, nil
	}
	return language.Parse(strings.ReplaceAll(name, "_", "-"))
}

func sameLanguage(a, b language.Tag) bool {
	ab, _ := a.Base()
	bb, _ := b.Base()
	return ab == bb
}

// regionSymbol returns the narrow currency symbol for the requested region when it
// was given explicitly and differs from the matched preset's region.
func regionSymbol(requested, matched language.Tag) (string, bool) {
	region, conf := requested.Region()
	if conf != language.Exact {
		return "", false
	}
	if presetRegion, _ := matched.Region(); presetRegion == region {
		return "", false
	}

	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", false
	}
	symbol := message.NewPrinter(requested).Sprint(currency.NarrowSymbol(unit))
	if symbol == "" {
		return "", false
	}
	return symbol, true
}
