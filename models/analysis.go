package models

// DirectAnswer pairs a heading with the answer text found under it.
type DirectAnswer struct {
	Heading string `json:"heading"`
	Answer  string `json:"answer"`
}

// BlufAnalysis scores how often content leads with the answer ("bottom line
// up front"). Score is 100 * headingsWithDirectAnswers / totalHeadings,
// rounded; 0 when the page has no headings.
type BlufAnalysis struct {
	Score                     int            `json:"score"`
	DirectAnswers             []DirectAnswer `json:"directAnswers"`
	TotalHeadings             int            `json:"totalHeadings"`
	HeadingsWithDirectAnswers int            `json:"headingsWithDirectAnswers"`
}

// KeywordAnalysis reports placement and density of caller-supplied keywords.
// An empty keyword list yields the zero value.
type KeywordAnalysis struct {
	TitleContainsKeyword bool    `json:"titleContainsKeyword"`
	H1ContainsKeyword    bool    `json:"h1ContainsKeyword"`
	MetaContainsKeyword  bool    `json:"metaContainsKeyword"`
	KeywordDensity       float64 `json:"keywordDensity"`
	KeywordOccurrences   int     `json:"keywordOccurrences"`
}
