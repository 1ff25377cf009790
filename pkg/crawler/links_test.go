package crawler

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docWithLinks(t *testing.T, hrefs ...string) *goquery.Document {
	t.Helper()
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, href := range hrefs {
		fmt.Fprintf(&b, `<a href="%s">link</a>`, href)
	}
	b.WriteString("</body></html>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func mustParse(t *testing.T, rawURL string) *url.URL {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse %s: %v", rawURL, err)
	}
	return u
}

func TestDiscoverLinksPrioritization(t *testing.T) {
	base := mustParse(t, "https://example.com")
	doc := docWithLinks(t, "/random/ok", "/random/deep/nested/path", "/about", "/blog/post-1", "/")

	links := DiscoverLinks(doc, base)

	want := []string{
		"https://example.com/about",
		"https://example.com/blog/post-1",
		"https://example.com/random/ok",
	}
	if len(links) != len(want) {
		t.Fatalf("DiscoverLinks = %v, want %v", links, want)
	}
	for i, link := range want {
		if links[i] != link {
			t.Errorf("links[%d] = %s, want %s", i, links[i], link)
		}
	}
}

func TestDiscoverLinksCap(t *testing.T) {
	base := mustParse(t, "https://example.com")
	hrefs := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		hrefs = append(hrefs, fmt.Sprintf("/page-%d", i))
	}
	doc := docWithLinks(t, hrefs...)

	links := DiscoverLinks(doc, base)

	if len(links) != MaxPages-1 {
		t.Errorf("got %d links, want cap of %d", len(links), MaxPages-1)
	}
}

func TestDiscoverLinksDedupe(t *testing.T) {
	base := mustParse(t, "https://example.com")
	doc := docWithLinks(t, "/about", "/about/", "/about#team", "https://example.com/about?ref=nav")

	links := DiscoverLinks(doc, base)

	if len(links) != 1 {
		t.Errorf("got %v, want the four spellings collapsed to one", links)
	}
}

func TestNormalizeLink(t *testing.T) {
	base := mustParse(t, "https://example.com")

	tests := []struct {
		name string
		href string
		want string
		ok   bool
	}{
		{"relative path", "/services", "https://example.com/services", true},
		{"absolute same host", "https://example.com/pricing", "https://example.com/pricing", true},
		{"www variant counts as same host", "https://www.example.com/faq", "https://www.example.com/faq", true},
		{"query stripped", "/blog?utm_source=x", "https://example.com/blog", true},
		{"trailing slash removed", "/contact/", "https://example.com/contact", true},
		{"external host", "https://other.com/about", "", false},
		{"fragment only", "#section", "", false},
		{"mailto", "mailto:hi@example.com", "", false},
		{"tel", "tel:+15551234", "", false},
		{"javascript", "javascript:void(0)", "", false},
		{"image asset", "/hero.png", "", false},
		{"stylesheet", "/site.css", "", false},
		{"sitemap", "/sitemap.xml", "", false},
		{"homepage itself", "/", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeLink(base, tt.href)
			if ok != tt.ok {
				t.Fatalf("normalizeLink(%q) ok = %v, want %v", tt.href, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("normalizeLink(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestIsImportantPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/blog", true},
		{"/blog/2024/post", true},
		{"/about", true},
		{"/pricing", true},
		{"/blogging", false},
		{"/team", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isImportantPath(tt.path); got != tt.want {
			t.Errorf("isImportantPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPathDepth(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"", 0},
		{"/a", 1},
		{"/a/b/c", 3},
		{"/a/b/c/d", 4},
	}

	for _, tt := range tests {
		if got := pathDepth(tt.path); got != tt.want {
			t.Errorf("pathDepth(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}
