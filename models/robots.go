package models

// CrawlerStatus is the robots.txt verdict for a single AI crawler.
type CrawlerStatus string

const (
	CrawlerAllowed      CrawlerStatus = "allowed"
	CrawlerBlocked      CrawlerStatus = "blocked"
	CrawlerNotSpecified CrawlerStatus = "not_specified"
)

// AICrawlerRule is the resolved policy for one crawler from the fixed
// catalog. IsSearchCrawler partitions search/citation bots from bots that
// harvest training corpora; the classification is baked into the catalog,
// not inferred.
type AICrawlerRule struct {
	Crawler         string        `json:"crawler"`
	Description     string        `json:"description"`
	Status          CrawlerStatus `json:"status"`
	IsSearchCrawler bool          `json:"isSearchCrawler"`
}

// RobotsTxtAnalysis is the full robots.txt verdict for a site. Crawlers
// always contains one entry per catalog crawler regardless of fetch outcome.
type RobotsTxtAnalysis struct {
	Exists                     bool            `json:"exists"`
	FetchError                 string          `json:"fetchError,omitempty"`
	Crawlers                   []AICrawlerRule `json:"crawlers"`
	HasBlockedSearchCrawlers   bool            `json:"hasBlockedSearchCrawlers"`
	HasBlockedTrainingCrawlers bool            `json:"hasBlockedTrainingCrawlers"`
}
