package translit

import (
	"strings"
	"unicode/utf8"
)

// Entry maps one canonical ASCII token to the Unicode variants it replaces.
type Entry struct {
	Canonical string
	Variants  []string
}

var (
	// replacers holds one compiled replacer per table entry, in table order.
	replacers = compile(table)
	// index maps every variant back to its canonical token.
	index = buildIndex(table)
)

func compile(entries []Entry) []*strings.Replacer {
	out := make([]*strings.Replacer, len(entries))
	for i, e := range entries {
		pairs := make([]string, 0, len(e.Variants)*2)
		for _, v := range e.Variants {
			pairs = append(pairs, v, e.Canonical)
		}
		out[i] = strings.NewReplacer(pairs...)
	}
	return out
}

func buildIndex(entries []Entry) map[string]string {
	m := make(map[string]string)
	for _, e := range entries {
		for _, v := range e.Variants {
			if _, ok := m[v]; !ok {
				m[v] = e.Canonical
			}
		}
	}
	return m
}

// Transliterate replaces every known variant in s with its canonical ASCII token.
// Entries are applied one after another in table order, so a variant consumed by an
// earlier entry is no longer visible to later ones.
// Characters the table does not cover are left untouched.
func Transliterate(s string) string {
	if !needsWork(s) {
		return s
	}
	for _, r := range replacers {
		s = r.Replace(s)
	}
	return s
}

// needsWork reports whether s may contain a variant. All variants are non-ASCII
// except "@".
func needsWork(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf || s[i] == '@' {
			return true
		}
	}
	return false
}

// Lookup returns the canonical token for a single variant.
func Lookup(variant string) (string, bool) {
	c, ok := index[variant]
	return c, ok
}

// Entries returns a copy of the table in application order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	for i, e := range table {
		out[i] = Entry{
			Canonical: e.Canonical,
			Variants:  append([]string(nil), e.Variants...),
		}
	}
	return out
}

// Len returns the number of entries in the table.
func Len() int {
	return len(table)
}
