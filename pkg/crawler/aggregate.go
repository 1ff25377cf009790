package crawler

import (
	"math"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/score"
)

// thinContentWords flags pages unlikely to be worth citing.
const thinContentWords = 100

// Aggregate folds all successful page records into one site-level result.
// pages[0] is always the homepage and supplies the base fields; every
// aggregate is order-independent across the rest.
func Aggregate(pages []*models.PageRecord) *models.SiteCrawlResult {
	home := pages[0]

	result := &models.SiteCrawlResult{
		URL:              home.URL,
		Title:            home.Title,
		MetaDescription:  home.MetaDescription,
		PagesAnalyzed:    len(pages),
		Headings:         home.Headings,
		TechnicalSignals: home.TechnicalSignals,
	}

	var (
		allHeadings     []models.Heading
		readabilitySum  float64
		sentenceLenSum  float64
		densitySum      float64
		seenSchemaTypes = make(map[string]struct{})
	)

	for _, p := range pages {
		result.ContentStats.WordCount += p.ContentStats.WordCount
		result.ContentStats.ParagraphCount += p.ContentStats.ParagraphCount
		readabilitySum += p.ContentStats.ReadabilityScore
		sentenceLenSum += p.ContentStats.AvgSentenceLength

		allHeadings = append(allHeadings, p.Headings...)

		// schema types dedupe site-wide, first occurrence wins
		for _, s := range p.SchemaMarkup {
			if _, seen := seenSchemaTypes[s.Type]; seen {
				continue
			}
			seenSchemaTypes[s.Type] = struct{}{}
			result.SchemaMarkup = append(result.SchemaMarkup, s)
		}

		if len(p.SchemaMarkup) > 0 {
			result.PagesWithSchema++
		}
		if p.MetaDescription != "" {
			result.PagesWithMeta++
		}

		result.KeywordAnalysis.TitleContainsKeyword = result.KeywordAnalysis.TitleContainsKeyword || p.KeywordAnalysis.TitleContainsKeyword
		result.KeywordAnalysis.H1ContainsKeyword = result.KeywordAnalysis.H1ContainsKeyword || p.KeywordAnalysis.H1ContainsKeyword
		result.KeywordAnalysis.MetaContainsKeyword = result.KeywordAnalysis.MetaContainsKeyword || p.KeywordAnalysis.MetaContainsKeyword
		result.KeywordAnalysis.KeywordOccurrences += p.KeywordAnalysis.KeywordOccurrences
		densitySum += p.KeywordAnalysis.KeywordDensity

		result.Pages = append(result.Pages, pageSummary(p))
	}

	n := float64(len(pages))
	result.ContentStats.ReadabilityScore = readabilitySum / n
	result.ContentStats.AvgSentenceLength = sentenceLenSum / n
	result.KeywordAnalysis.KeywordDensity = math.Round(densitySum/n*100) / 100

	result.BlufAnalysis = score.Bluf(allHeadings)

	return result
}

func pageSummary(p *models.PageRecord) models.PageSummary {
	summary := models.PageSummary{
		URL:           p.URL,
		Title:         p.Title,
		WordCount:     p.ContentStats.WordCount,
		HeadingsCount: len(p.Headings),
		SchemaCount:   len(p.SchemaMarkup),
		Issues:        []string{},
	}

	if p.Title == "" {
		summary.Issues = append(summary.Issues, "missing title")
	}
	if p.MetaDescription == "" {
		summary.Issues = append(summary.Issues, "missing meta description")
	}
	if len(p.Headings) == 0 {
		summary.Issues = append(summary.Issues, "no headings")
	}
	if len(p.SchemaMarkup) == 0 {
		summary.Issues = append(summary.Issues, "no structured data")
	}
	if p.ContentStats.WordCount < thinContentWords {
		summary.Issues = append(summary.Issues, "thin content")
	}

	return summary
}
