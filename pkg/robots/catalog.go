// Package robots fetches and evaluates a site's robots.txt against the
// fixed catalog of AI crawlers.
package robots

// CrawlerSpec is one catalog entry. The catalog is data, not code branches:
// adding a crawler is a table change.
type CrawlerSpec struct {
	Name            string
	Description     string
	IsSearchCrawler bool
}

// Catalog is the fixed set of AI crawlers evaluated on every analysis,
// partitioned into search/citation bots and training-corpus bots.
var Catalog = []CrawlerSpec{
	// Search and citation crawlers: these power live AI answers that can
	// cite and send traffic to the site.
	{Name: "OAI-SearchBot", Description: "OpenAI's search crawler, powers ChatGPT search results and citations", IsSearchCrawler: true},
	{Name: "ChatGPT-User", Description: "Fetches pages on behalf of ChatGPT users during live browsing", IsSearchCrawler: true},
	{Name: "PerplexityBot", Description: "Perplexity's crawler for its AI answer engine and source citations", IsSearchCrawler: true},
	{Name: "YouBot", Description: "You.com's crawler for AI-assisted search", IsSearchCrawler: true},

	// Training crawlers: used to build model training corpora.
	{Name: "GPTBot", Description: "OpenAI's crawler for collecting model training data", IsSearchCrawler: false},
	{Name: "Google-Extended", Description: "Opt-out token for Google's Gemini model training", IsSearchCrawler: false},
	{Name: "CCBot", Description: "Common Crawl's bot, source of many public training datasets", IsSearchCrawler: false},
	{Name: "anthropic-ai", Description: "Anthropic's crawler for model training data", IsSearchCrawler: false},
	{Name: "ClaudeBot", Description: "Anthropic's web crawler", IsSearchCrawler: false},
	{Name: "Claude-Web", Description: "Fetches pages on behalf of Claude users", IsSearchCrawler: false},
	{Name: "Bytespider", Description: "ByteDance's crawler feeding its language models", IsSearchCrawler: false},
	{Name: "Diffbot", Description: "Diffbot's structured-extraction crawler", IsSearchCrawler: false},
	{Name: "FacebookBot", Description: "Meta's crawler for model training data", IsSearchCrawler: false},
	{Name: "Meta-ExternalAgent", Description: "Meta's external agent for AI data collection", IsSearchCrawler: false},
	{Name: "Applebot-Extended", Description: "Opt-out token for Apple Intelligence model training", IsSearchCrawler: false},
	{Name: "cohere-ai", Description: "Cohere's crawler for model training data", IsSearchCrawler: false},
}

// HighValueSearchCrawlers are individually checked when grading overall
// readiness: blocking either one cuts the site off from a major AI answer
// engine.
var HighValueSearchCrawlers = []string{"OAI-SearchBot", "PerplexityBot"}
