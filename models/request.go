package models

// CrawlRequest is the caller-facing input: a URL (scheme optional, https
// assumed) and an optional keyword list to score placement against.
type CrawlRequest struct {
	URL      string   `json:"url"`
	Keywords []string `json:"keywords,omitempty"`
}

// CrawlResponse is the caller-facing envelope. Success is false only for a
// malformed URL or an unreachable homepage; every other failure degrades
// into Data instead.
type CrawlResponse struct {
	Success bool             `json:"success"`
	Data    *SiteCrawlResult `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}
