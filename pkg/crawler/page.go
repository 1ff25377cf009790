// Package crawler orchestrates the multi-page crawl: per-page analysis,
// SPA detection with rendering fallback, link discovery and site-level
// aggregation.
package crawler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/extract"
	"github.com/aireadyhq/crawler/pkg/fetcher"
	"github.com/aireadyhq/crawler/pkg/score"
)

// Analyzer builds one PageRecord per fetched page.
type Analyzer struct {
	fetcher  *fetcher.Fetcher
	renderer *fetcher.Renderer
	logger   *slog.Logger
}

func NewAnalyzer(f *fetcher.Fetcher, r *fetcher.Renderer, logger *slog.Logger) *Analyzer {
	return &Analyzer{fetcher: f, renderer: r, logger: logger}
}

// AnalyzePage fetches and analyzes a single sub-page. A failed fetch is a
// silent drop: the page contributes no record and the crawl moves on.
func (a *Analyzer) AnalyzePage(ctx context.Context, pageURL string, keywords []string) *models.PageRecord {
	page, err := a.fetcher.GetPage(ctx, pageURL)
	if err != nil {
		a.logger.Warn("sub-page fetch failed, dropping from crawl", "url", pageURL, "error", err)
		return nil
	}
	return a.BuildPageRecord(page, keywords)
}

// BuildPageRecord runs the full extraction pipeline over a fetched document:
// headings, structured data, content stats, technical signals, keyword
// placement, BLUF scoring and metadata enrichment.
func (a *Analyzer) BuildPageRecord(page *fetcher.Page, keywords []string) *models.PageRecord {
	doc := page.Doc

	title := extract.Title(doc)
	metaDescription := extract.MetaDescription(doc)
	h1 := extract.FirstH1(doc)

	// schema comes off the raw document before anything touches script tags
	schemas := extract.SchemaFromDoc(doc)
	headings := extract.HeadingsFromDoc(doc)
	bodyText := extract.BodyText(doc)

	stats := models.ContentStats{
		WordCount:         wordCount(bodyText),
		ParagraphCount:    extract.ParagraphCount(doc),
		AvgSentenceLength: score.AvgSentenceLength(bodyText),
		ReadabilityScore:  score.Readability(bodyText),
	}

	return &models.PageRecord{
		URL:              page.URL,
		Title:            title,
		MetaDescription:  metaDescription,
		Headings:         headings,
		SchemaMarkup:     schemas,
		ContentStats:     stats,
		TechnicalSignals: extract.Signals(doc, page.URL, page.LoadTime),
		BlufAnalysis:     score.Bluf(headings),
		KeywordAnalysis:  extract.Keywords(bodyText, title, metaDescription, h1, keywords),
		Meta:             extract.Enrich(page.URL, page.HTML, bodyText),
	}
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
