package crawler

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/PuerkitoBio/purell"
)

// MaxPages caps a crawl at the homepage plus five sub-pages.
const MaxPages = 6

// maxPathDepth keeps "other" links shallow: deeper paths rarely carry the
// content that decides a site's readiness.
const maxPathDepth = 3

// importantPaths are crawled first when present.
var importantPaths = []string{
	"/blog", "/services", "/about", "/contact", "/pricing",
	"/features", "/products", "/faq", "/help",
}

// skippedExtensions are non-HTML resources that never enter the crawl set.
var skippedExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".svg": {}, ".webp": {}, ".ico": {},
	".css": {}, ".js": {}, ".mjs": {},
	".pdf": {}, ".zip": {}, ".gz": {}, ".tar": {}, ".rar": {},
	".mp3": {}, ".mp4": {}, ".avi": {}, ".mov": {}, ".webm": {},
	".xml": {}, ".json": {}, ".csv": {}, ".txt": {},
	".woff": {}, ".woff2": {}, ".ttf": {}, ".eot": {},
}

const normalizeFlags = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagRemoveDefaultPort |
	purell.FlagRemoveFragment |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagRemoveDotSegments |
	purell.FlagRemoveTrailingSlash

// DiscoverLinks collects same-origin anchor targets from the homepage
// document, normalizes and dedupes them, then ranks important paths first
// and shallow paths after, capped at MaxPages-1.
func DiscoverLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]struct{})
	var important, other []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		link, ok := normalizeLink(base, href)
		if !ok {
			return
		}
		if _, dup := seen[link]; dup {
			return
		}
		seen[link] = struct{}{}

		p := pathOf(link)
		switch {
		case isImportantPath(p):
			important = append(important, link)
		case pathDepth(p) <= maxPathDepth:
			other = append(other, link)
		}
	})

	ranked := append(important, other...)
	if len(ranked) > MaxPages-1 {
		ranked = ranked[:MaxPages-1]
	}
	return ranked
}

// normalizeLink resolves href against the site origin and returns the
// cleaned absolute URL, or ok=false when the link leaves the crawl set.
func normalizeLink(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "javascript:") {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	if !sameHost(base.Hostname(), resolved.Hostname()) {
		return "", false
	}

	if ext := strings.ToLower(path.Ext(resolved.Path)); ext != "" {
		if _, skip := skippedExtensions[ext]; skip {
			return "", false
		}
	}

	resolved.Fragment = ""
	resolved.RawQuery = ""

	normalized, err := purell.NormalizeURLString(resolved.String(), normalizeFlags)
	if err != nil {
		return "", false
	}

	// the homepage itself is always crawled; don't rediscover it
	if pathOf(normalized) == "" {
		return "", false
	}
	return normalized, true
}

func sameHost(a, b string) bool {
	return strings.TrimPrefix(a, "www.") == strings.TrimPrefix(b, "www.")
}

func pathOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

func isImportantPath(p string) bool {
	for _, prefix := range importantPaths {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

func pathDepth(p string) int {
	p = strings.Trim(p, "/")
	if p == "" {
		return 0
	}
	return len(strings.Split(p, "/"))
}
