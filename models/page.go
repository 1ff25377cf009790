package models

// Heading is a single h1-h6 heading in document order, annotated with the
// text that immediately follows it and whether that text leads with an
// answer. Immutable once created.
type Heading struct {
	Level            int    `json:"level"`
	Text             string `json:"text"`
	HasDirectAnswer  bool   `json:"hasDirectAnswer"`
	FollowingContent string `json:"followingContent,omitempty"`
}

// SchemaRecord is one structured-data entity found on a page.
type SchemaRecord struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// ContentStats holds derived text metrics for a page. At the site level the
// same shape carries cross-page aggregates (summed counts, averaged scores).
type ContentStats struct {
	WordCount         int     `json:"wordCount"`
	ParagraphCount    int     `json:"paragraphCount"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	ReadabilityScore  float64 `json:"readabilityScore"`
}

// TechnicalSignals are simple presence checks per page.
type TechnicalSignals struct {
	HasCanonical   bool  `json:"hasCanonical"`
	HasOpenGraph   bool  `json:"hasOpenGraph"`
	HasTwitterCard bool  `json:"hasTwitterCard"`
	LoadTimeMs     int64 `json:"loadTimeMs"`
	MobileViewport bool  `json:"mobileViewport"`
	HasHTTPS       bool  `json:"hasHttps"`
}

// PageMeta carries optional enrichment extracted from the page: article
// metadata via go-readability and the detected content language. All fields
// may be empty when enrichment fails; nothing downstream depends on them.
type PageMeta struct {
	Author        string `json:"author,omitempty"`
	SiteName      string `json:"siteName,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty"`
	Favicon       string `json:"favicon,omitempty"`
	Image         string `json:"image,omitempty"`
	Language      string `json:"language,omitempty"`
}

// PageRecord is the full analysis of one successfully fetched page. Created
// once per page; the SPA rendering fallback rebuilds parts of the homepage
// record before it is published, after which it is never mutated.
type PageRecord struct {
	URL              string           `json:"url"`
	Title            string           `json:"title"`
	MetaDescription  string           `json:"metaDescription"`
	Headings         []Heading        `json:"headings"`
	SchemaMarkup     []SchemaRecord   `json:"schemaMarkup"`
	ContentStats     ContentStats     `json:"contentStats"`
	TechnicalSignals TechnicalSignals `json:"technicalSignals"`
	BlufAnalysis     BlufAnalysis     `json:"blufAnalysis"`
	KeywordAnalysis  KeywordAnalysis  `json:"keywordAnalysis"`
	Meta             PageMeta         `json:"meta,omitempty"`
}
