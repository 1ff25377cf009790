package models

// PageSummary is the per-page line item inside a SiteCrawlResult.
type PageSummary struct {
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	WordCount     int      `json:"wordCount"`
	HeadingsCount int      `json:"headingsCount"`
	SchemaCount   int      `json:"schemaCount"`
	Issues        []string `json:"issues"`
}

// SPADetection is the diagnostic block attached to a crawl result when the
// homepage looked like an under-rendered client-side app.
type SPADetection struct {
	Detected         bool   `json:"detected"`
	Reason           string `json:"reason,omitempty"`
	UsedJinaFallback bool   `json:"usedJinaFallback"`
}

// SiteCrawlResult is the homepage record's shape with scalar fields replaced
// by cross-page aggregates, plus the page summaries and the AI-readiness
// verdict. One per crawl request; not persisted by the crawl path itself.
type SiteCrawlResult struct {
	URL              string              `json:"url"`
	Title            string              `json:"title"`
	MetaDescription  string              `json:"metaDescription"`
	PagesAnalyzed    int                 `json:"pagesAnalyzed"`
	Headings         []Heading           `json:"headings"`
	SchemaMarkup     []SchemaRecord      `json:"schemaMarkup"`
	ContentStats     ContentStats        `json:"contentStats"`
	TechnicalSignals TechnicalSignals    `json:"technicalSignals"`
	BlufAnalysis     BlufAnalysis        `json:"blufAnalysis"`
	KeywordAnalysis  KeywordAnalysis     `json:"keywordAnalysis"`
	PagesWithSchema  int                 `json:"pagesWithSchema"`
	PagesWithMeta    int                 `json:"pagesWithMeta"`
	Pages            []PageSummary       `json:"pages"`
	SPADetection     *SPADetection       `json:"spaDetection,omitempty"`
	AIReadiness      AIReadinessAnalysis `json:"aiReadiness"`
}
