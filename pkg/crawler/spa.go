package crawler

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/extract"
	"github.com/aireadyhq/crawler/pkg/score"
)

// SPA heuristic thresholds. Fuzzy by nature; kept as named constants so
// they can be tuned without hunting through logic.
const (
	spaMarkerWordLimit = 100
	spaBareWordLimit   = 50
)

// spaRootMarkers are framework mount points that betray a client-rendered
// app when the static HTML carries little text.
var spaRootMarkers = []string{
	"#root", "#app", "#__next", "#__nuxt",
	"[ng-version]", "app-root", `script[type="module"]`,
}

// DetectSPA decides whether the fetched HTML is an under-rendered client
// app: a framework marker with under 100 words, or under 50 words with no
// headings at all.
func DetectSPA(doc *goquery.Document, wordCount, headingCount int) (bool, string) {
	if wordCount < spaMarkerWordLimit {
		for _, marker := range spaRootMarkers {
			if doc.Find(marker).Length() > 0 {
				return true, fmt.Sprintf("framework marker %q with %d words of static content", marker, wordCount)
			}
		}
	}
	if wordCount < spaBareWordLimit && headingCount == 0 {
		return true, fmt.Sprintf("only %d words and no headings in static HTML", wordCount)
	}
	return false, ""
}

// renderFallback re-analyzes an under-rendered page through the rendering
// proxy. On success the text-derived fields are rebuilt; the structured-data
// list from the static HTML is always preserved since the proxy output
// carries no script tags. On failure the sparse static record stands.
func (a *Analyzer) renderFallback(ctx context.Context, record *models.PageRecord, keywords []string) *models.SPADetection {
	detection := &models.SPADetection{Detected: true}

	text, err := a.renderer.RenderText(ctx, record.URL)
	if err != nil {
		a.logger.Warn("render fallback failed, keeping static extraction", "url", record.URL, "error", err)
		return detection
	}

	rendered := extract.FromText(text)
	record.Headings = rendered.Headings
	record.BlufAnalysis = score.Bluf(rendered.Headings)
	record.ContentStats = models.ContentStats{
		WordCount:         rendered.WordCount,
		ParagraphCount:    rendered.ParagraphCount,
		AvgSentenceLength: score.AvgSentenceLength(rendered.Text),
		ReadabilityScore:  score.Readability(rendered.Text),
	}
	record.KeywordAnalysis = extract.Keywords(
		rendered.Text, record.Title, record.MetaDescription, firstH1Text(rendered.Headings), keywords)
	if lang := extract.DetectLanguage(rendered.Text); lang != "" {
		record.Meta.Language = lang
	}

	detection.UsedJinaFallback = true
	return detection
}

func firstH1Text(headings []models.Heading) string {
	for _, h := range headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}
