package filters

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/ncruces/go-strftime"
	"github.com/yuin/goldmark"
)

// Tag builders escape attribute values but not labels: labels are template output
// and may already contain markup.

// StylesheetTag returns a <link> tag for a stylesheet URL.
func StylesheetTag(url string) string {
	return `<link href="` + html.EscapeString(url) + `" rel="stylesheet" type="text/css" media="all" />`
}

// ScriptTag returns a <script> tag for a script URL.
func ScriptTag(url string) string {
	return `<script src="` + html.EscapeString(url) + `" type="text/javascript"></script>`
}

// ImgTag returns an <img> tag with the given alt text.
func ImgTag(url, alt string) string {
	return `<img src="` + html.EscapeString(url) + `" alt="` + html.EscapeString(alt) + `" class="" />`
}

// LinkTo returns an anchor pointing at url.
func LinkTo(url, label string) string {
	return `<a href="` + html.EscapeString(url) + `">` + label + `</a>`
}

// LinkToVendor links to the collection of a vendor's products.
func LinkToVendor(vendor, label string) string {
	return LinkTo(URLForVendor(vendor), label)
}

// LinkToType links to the collection of a product type.
func LinkToType(productType, label string) string {
	return LinkTo(URLForType(productType), label)
}

// LinkToTag links to the front page filtered by tag.
func LinkToTag(tag string) string {
	return LinkTo("/frontpage/"+rawURLEncode(tag), tag)
}

// LinkToAddTag is LinkToTag; tag filtering state is not tracked here.
func LinkToAddTag(tag string) string {
	return LinkToTag(tag)
}

// LinkToRemoveTag is LinkToTag; tag filtering state is not tracked here.
func LinkToRemoveTag(tag string) string {
	return LinkToTag(tag)
}

// HighlightActiveTag is LinkToTag; the active tag is not tracked here.
func HighlightActiveTag(tag string) string {
	return LinkToTag(tag)
}

// CustomerLoginLink links to the customer login page.
func CustomerLoginLink(label string) string {
	return `<a href="/account/login" id="customer_login_link">` + label + `</a>`
}

// CustomerLogoutLink renders a placeholder logout link.
func CustomerLogoutLink(label string) string {
	return `<a href="#">` + label + `</a>`
}

// CustomerRegisterLink renders a placeholder registration link.
func CustomerRegisterLink(label string) string {
	return `<a href="#">` + label + `</a>`
}

// Highlight wraps every occurrence of term in snippet with <strong>.
func Highlight(snippet, term string) string {
	if term == "" {
		return snippet
	}
	return strings.ReplaceAll(snippet, term, "<strong>"+term+"</strong>")
}

// Date formats t with a strftime layout such as "%Y-%m-%d".
func Date(t time.Time, format string) string {
	return strftime.Format(format, t)
}

// TimeTag renders t inside a <time> element. The datetime attribute is always
// RFC 3339; the visible text uses the strftime format, or RFC 3339 when empty.
func TimeTag(t time.Time, format string) string {
	text := t.Format(time.RFC3339)
	if format != "" {
		text = strftime.Format(format, t)
	}
	return fmt.Sprintf(`<time datetime="%s">%s</time>`, t.Format(time.RFC3339), html.EscapeString(text))
}

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes all markup and returns the text content.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML keeps basic formatting tags and links and drops everything that can
// execute: scripts, event handlers, javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// Markdownify renders CommonMark to HTML. Raw HTML in the source is not passed
// through.
func Markdownify(src string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("filters: render markdown: %w", err)
	}
	return buf.String(), nil
}
