package filters_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidfilters/pkg/filters"
)

func TestTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "stylesheet",
			got:      filters.StylesheetTag("/assets/theme.css"),
			expected: `<link href="/assets/theme.css" rel="stylesheet" type="text/css" media="all" />`,
		},
		{
			name:     "script",
			got:      filters.ScriptTag("/assets/app.js"),
			expected: `<script src="/assets/app.js" type="text/javascript"></script>`,
		},
		{
			name:     "image",
			got:      filters.ImgTag("/assets/logo.png", "Logo"),
			expected: `<img src="/assets/logo.png" alt="Logo" class="" />`,
		},
		{
			name:     "attribute values are escaped",
			got:      filters.ScriptTag(`/a.js" onload="x`),
			expected: `<script src="/a.js&#34; onload=&#34;x" type="text/javascript"></script>`,
		},
		{
			name:     "link",
			got:      filters.LinkTo("/pages/about", "About <b>us</b>"),
			expected: `<a href="/pages/about">About <b>us</b></a>`,
		},
		{
			name:     "vendor link",
			got:      filters.LinkToVendor("Acme & Co", "Acme"),
			expected: `<a href="/collections/vendors?q=Acme%20%26%20Co">Acme</a>`,
		},
		{
			name:     "type link",
			got:      filters.LinkToType("T-Shirts", "Shirts"),
			expected: `<a href="/collections/types?q=T-Shirts">Shirts</a>`,
		},
		{
			name:     "tag link",
			got:      filters.LinkToTag("summer sale"),
			expected: `<a href="/frontpage/summer%20sale">summer sale</a>`,
		},
		{
			name:     "add tag link",
			got:      filters.LinkToAddTag("new"),
			expected: `<a href="/frontpage/new">new</a>`,
		},
		{
			name:     "remove tag link",
			got:      filters.LinkToRemoveTag("new"),
			expected: `<a href="/frontpage/new">new</a>`,
		},
		{
			name:     "active tag",
			got:      filters.HighlightActiveTag("new"),
			expected: `<a href="/frontpage/new">new</a>`,
		},
		{
			name:     "customer login",
			got:      filters.CustomerLoginLink("Log in"),
			expected: `<a href="/account/login" id="customer_login_link">Log in</a>`,
		},
		{
			name:     "customer logout",
			got:      filters.CustomerLogoutLink("Log out"),
			expected: `<a href="#">Log out</a>`,
		},
		{
			name:     "customer register",
			got:      filters.CustomerRegisterLink("Sign up"),
			expected: `<a href="#">Sign up</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	t.Run("wraps every occurrence", func(t *testing.T) {
		t.Parallel()
		got := filters.Highlight("red shirt, red hat", "red")
		assert.Equal(t, "<strong>red</strong> shirt, <strong>red</strong> hat", got)
	})

	t.Run("empty term is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "red shirt", filters.Highlight("red shirt", ""))
	})

	t.Run("case sensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Red shirt", filters.Highlight("Red shirt", "red"))
	})
}

func TestDateAndTimeTag(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2024-03-05", filters.Date(ts, "%Y-%m-%d"))
		assert.Equal(t, "05 Mar 2024", filters.Date(ts, "%d %b %Y"))
	})

	t.Run("time tag with format", func(t *testing.T) {
		t.Parallel()
		got := filters.TimeTag(ts, "%B %d, %Y")
		assert.Equal(t, `<time datetime="2024-03-05T14:30:00Z">March 05, 2024</time>`, got)
	})

	t.Run("time tag without format", func(t *testing.T) {
		t.Parallel()
		got := filters.TimeTag(ts, "")
		assert.Equal(t, `<time datetime="2024-03-05T14:30:00Z">2024-03-05T14:30:00Z</time>`, got)
	})
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips script injection", input: `<p>Hello</p><script>alert('xss')</script>`, expected: "Hello"},
		{name: "strips all tags", input: `<p>Hello <strong>world</strong></p>`, expected: "Hello world"},
		{name: "strips event handlers", input: `<img src="x" onerror="alert('xss')">`, expected: ""},
		{name: "strips javascript URLs", input: `<a href="javascript:alert('xss')">click</a>`, expected: "click"},
		{name: "strips style tags", input: `Hello <STYLE>.XSS{background-image:url("javascript:alert('XSS')");}</STYLE>World`, expected: "Hello World"},
		{name: "plain text", input: "normal text", expected: "normal text"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, filters.StripHTML(tt.input))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "keeps safe tags", input: `<p>Hello</p><script>alert('xss')</script>`, expected: "<p>Hello</p>"},
		{name: "keeps lists", input: `<ul><li>one</li><li>two</li></ul>`, expected: "<ul><li>one</li><li>two</li></ul>"},
		{name: "adds nofollow to links", input: `<a href="https://example.com">link</a>`, expected: `<a href="https://example.com" rel="nofollow">link</a>`},
		{name: "strips event handlers", input: `<p onclick="alert('xss')">content</p>`, expected: "<p>content</p>"},
		{name: "strips divs", input: `<div>content</div>`, expected: "content"},
		{name: "keeps line breaks", input: `line1<br>line2`, expected: `line1<br>line2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, filters.SanitizeHTML(tt.input))
		})
	}
}

func TestMarkdownify(t *testing.T) {
	t.Parallel()

	t.Run("renders commonmark", func(t *testing.T) {
		t.Parallel()
		got, err := filters.Markdownify("# Title\n\nSome *emphasis*.")
		require.NoError(t, err)
		assert.Equal(t, "<h1>Title</h1>\n<p>Some <em>emphasis</em>.</p>\n", got)
	})

	t.Run("drops raw html", func(t *testing.T) {
		t.Parallel()
		got, err := filters.Markdownify("<script>alert(1)</script>\n\ntext")
		require.NoError(t, err)
		assert.NotContains(t, got, "<script>")
		assert.Contains(t, got, "<p>text</p>")
	})
}
