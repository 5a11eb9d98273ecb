package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidfilters/pkg/slug"
	"github.com/dmitrymomot/liquidfilters/pkg/translit"
)

var slugPattern = regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)

func TestHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "with punctuation", input: "Hello, World!", expected: "hello-world"},
		{name: "accents and em dash", input: "Déjà Vu — L'Été!", expected: "deja-vu-lete"},
		{name: "underscore runs", input: "___multiple___underscores___", expected: "multiple-underscores"},
		{name: "snake case", input: "snake_case_Name", expected: "snake-case-name"},
		{name: "punctuation is removed not separated", input: "Price: $99.99", expected: "price-9999"},
		{name: "apostrophe joins words", input: "Côte d'Ivoire 2024", expected: "cote-divoire-2024"},
		{name: "multiple spaces", input: "Too    Many     Spaces", expected: "too-many-spaces"},
		{name: "leading and trailing spaces", input: "  Trim Me  ", expected: "trim-me"},
		{name: "consecutive dashes", input: "Too---Many---Dashes", expected: "too-many-dashes"},
		{name: "mixed dashes and spaces", input: "a - b _ c", expected: "a-b-c"},
		{name: "already a slug", input: "--Already-Slug--", expected: "already-slug"},
		{name: "only special characters", input: "!#$%^&*()", expected: ""},
		{name: "only numbers", input: "123456789", expected: "123456789"},
		{name: "german", input: "Über Größe straße", expected: "ueber-groesse-strasse"},
		{name: "french", input: "Château façade élève", expected: "chateau-facade-eleve"},
		{name: "polish", input: "Zażółć gęślą jaźń", expected: "zazolc-gesla-jazn"},
		{name: "portuguese", input: "São Paulo", expected: "sao-paulo"},
		{name: "danish", input: "Ørsted A/S", expected: "orsted-as"},
		{name: "turkish dotted capital", input: "İstanbul", expected: "istanbul"},
		{name: "russian", input: "Съешь же ещё этих мягких французских булок", expected: "sesh-zhe-eshche-etikh-myagkikh-frantsuzskikh-bulok"},
		{name: "greek capitals", input: "ΑΒΓ", expected: "abg"},
		{name: "at sign is spelled out", input: "user@example.com", expected: "useratexamplecom"},
		{name: "copyright sign", input: "© Copyright 2024", expected: "c-copyright-2024"},
		{name: "emoji stripped", input: "Hello 😀 World 🌍", expected: "hello-world"},
		{name: "cjk stripped", input: "東京 Tokyo", expected: "tokyo"},
		{name: "control characters are dropped", input: "Line1\nLine2\tTabbed", expected: "line1line2tabbed"},
		{name: "no-break space separates", input: "New\u00a0York", expected: "new-york"},
		{name: "ideographic space separates", input: "New\u3000York", expected: "new-york"},
		{name: "invalid utf-8 dropped", input: "ab\xffcd", expected: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Handle(tt.input))
		})
	}
}

func TestHandle_Properties(t *testing.T) {
	t.Parallel()

	corpus := []string{
		"",
		" ",
		"-",
		"_",
		"Hello, World!",
		"Déjà Vu — L'Été!",
		"___multiple___underscores___",
		"ẞ Þ Ψ Щ Ж",
		"Ἀθῆναι",
		"မြန်မာ",
		"ქართული",
		"العربية",
		"हिन्दी",
		"a b c",
		strings.Repeat("ä-_ ", 100),
	}

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		for _, in := range corpus {
			once := slug.Handle(in)
			assert.Equal(t, once, slug.Handle(once), "input %q", in)
		}
	})

	t.Run("alphabet closure", func(t *testing.T) {
		t.Parallel()
		for _, in := range corpus {
			out := slug.Handle(in)
			assert.Regexp(t, slugPattern, out, "input %q", in)
			assert.NotContains(t, out, "--", "input %q", in)
		}
	})

	t.Run("every variant reduces like its canonical", func(t *testing.T) {
		t.Parallel()
		for _, e := range translit.Entries() {
			want := slug.Handle(e.Canonical)
			for _, v := range e.Variants {
				assert.Equal(t, want, slug.Handle(v), "variant %q of %q", v, e.Canonical)
			}
		}
	})
}

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{
			name:     "no options equals handle",
			input:    "Déjà Vu — L'Été!",
			expected: slug.Handle("Déjà Vu — L'Été!"),
		},
		{
			name:     "max length cuts at dash",
			input:    "This is a very long title that should be truncated",
			opts:     []slug.Option{slug.MaxLength(20)},
			expected: "this-is-a-very-long",
		},
		{
			name:     "max length on exact word boundary",
			input:    "Cut off cleanly",
			opts:     []slug.Option{slug.MaxLength(7)},
			expected: "cut-off",
		},
		{
			name:     "max length inside a word",
			input:    "This is a very long title",
			opts:     []slug.Option{slug.MaxLength(12)},
			expected: "this-is-a",
		},
		{
			name:     "max length without dashes",
			input:    "Supercalifragilistic",
			opts:     []slug.Option{slug.MaxLength(5)},
			expected: "super",
		},
		{
			name:     "zero max length",
			input:    "Should not truncate",
			opts:     []slug.Option{slug.MaxLength(0)},
			expected: "should-not-truncate",
		},
		{
			name:  "custom replacements",
			input: "Fish & Chips @ Home",
			opts: []slug.Option{
				slug.CustomReplace(map[string]string{
					"&": " and ",
					"@": " at ",
				}),
			},
			expected: "fish-and-chips-at-home",
		},
		{
			name:     "fallback for empty result",
			input:    "日本",
			opts:     []slug.Option{slug.Fallback("Untitled Page")},
			expected: "untitled-page",
		},
		{
			name:     "fallback ignored when result not empty",
			input:    "Tokyo",
			opts:     []slug.Option{slug.Fallback("untitled")},
			expected: "tokyo",
		},
		{
			name:     "decomposed accents without normalization",
			input:    "Cafe\u0301 O\u0308l",
			expected: "cafe-ol",
		},
		{
			name:     "decomposed accents with normalization",
			input:    "Cafe\u0301 O\u0308l",
			opts:     []slug.Option{slug.Normalize(true)},
			expected: "cafe-oel",
		},
		{
			name:     "nil option ignored",
			input:    "Hello",
			opts:     []slug.Option{nil},
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestMake_MaxLengthNeverEndsWithDash(t *testing.T) {
	t.Parallel()

	in := "one two three four five six seven eight nine ten"
	for n := 1; n <= len(in); n++ {
		out := slug.Make(in, slug.MaxLength(n))
		require.LessOrEqual(t, len(out), n)
		require.False(t, strings.HasSuffix(out, "-"), "max %d produced %q", n, out)
	}
}

func FuzzHandle(f *testing.F) {
	for _, seed := range []string{"", "Hello, World!", "Déjà Vu — L'Été!", "___", "ẞ-Ж_©@"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		out := slug.Handle(in)
		if !slugPattern.MatchString(out) {
			t.Fatalf("Handle(%q) = %q is not a slug", in, out)
		}
		if again := slug.Handle(out); again != out {
			t.Fatalf("Handle not idempotent: %q -> %q -> %q", in, out, again)
		}
	})
}

func BenchmarkHandle(b *testing.B) {
	benchmarks := []struct {
		name  string
		input string
	}{
		{name: "ascii", input: "Hello World This Is A Test"},
		{name: "latin", input: "Château façade élève über Größe"},
		{name: "long", input: strings.Repeat("Déjà Vu — L'Été! ", 50)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for b.Loop() {
				_ = slug.Handle(bm.input)
			}
		})
	}
}

func BenchmarkHandleParallel(b *testing.B) {
	input := "Château façade élève über Größe"
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = slug.Handle(input)
		}
	})
}
