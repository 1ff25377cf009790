// Package extract turns fetched documents into the structured content model.
// It has two heading pipelines, a DOM walker for static HTML and a flat-text
// scanner for pre-rendered markdown, which must stay behaviorally equivalent.
package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/score"
)

const (
	// followingScanLimit caps how much sibling text is accumulated under a
	// heading before classification.
	followingScanLimit = 500
	// followingStoreLimit is what ends up on the Heading record.
	followingStoreLimit = 200
)

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// contentSiblings are the element types whose text counts as content
// following a heading.
var contentSiblings = map[string]struct{}{
	"p": {}, "ul": {}, "ol": {}, "div": {}, "span": {}, "li": {},
}

// HeadingsFromDoc walks h1-h6 elements in document order. Each heading's
// following content is accumulated from subsequent sibling elements until
// the next heading or the scan cap, then classified for a direct answer.
func HeadingsFromDoc(doc *goquery.Document) []models.Heading {
	var headings []models.Heading

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text == "" {
			return
		}

		following := followingContent(s)
		headings = append(headings, models.Heading{
			Level:            headingLevels[goquery.NodeName(s)],
			Text:             text,
			HasDirectAnswer:  score.IsDirectAnswer(following),
			FollowingContent: truncate(following, followingStoreLimit),
		})
	})

	return headings
}

func followingContent(heading *goquery.Selection) string {
	var b strings.Builder

	for sib := heading.Next(); sib.Length() > 0; sib = sib.Next() {
		name := goquery.NodeName(sib)
		if _, isHeading := headingLevels[name]; isHeading {
			break
		}
		if _, ok := contentSiblings[name]; !ok {
			continue
		}
		text := normalizeText(sib.Text())
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(text)
		if b.Len() >= followingScanLimit {
			break
		}
	}

	return truncate(b.String(), followingScanLimit)
}

// Title returns the trimmed document title.
func Title(doc *goquery.Document) string {
	return normalizeText(doc.Find("title").First().Text())
}

// MetaDescription returns the meta description, falling back to the
// Open Graph description.
func MetaDescription(doc *goquery.Document) string {
	desc := strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	if desc == "" {
		desc = strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
	}
	return desc
}

// FirstH1 returns the first h1's text.
func FirstH1(doc *goquery.Document) string {
	return normalizeText(doc.Find("h1").First().Text())
}

// BodyText returns the page's readable text with script, style and noscript
// content stripped. The document itself is left untouched so that schema
// blocks and SPA markers remain visible to later passes.
func BodyText(doc *goquery.Document) string {
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	clone := body.Clone()
	clone.Find("script, style, noscript").Remove()
	return normalizeText(clone.Text())
}

// ParagraphCount counts non-empty paragraph elements.
func ParagraphCount(doc *goquery.Document) int {
	count := 0
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) != "" {
			count++
		}
	})
	return count
}

// normalizeText collapses runs of whitespace into single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}
