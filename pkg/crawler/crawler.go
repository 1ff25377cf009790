package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/aiready"
	"github.com/aireadyhq/crawler/pkg/robots"
)

// Crawler drives a full site crawl: homepage, SPA fallback, link discovery,
// concurrent sub-page fetches, robots.txt analysis and aggregation.
type Crawler struct {
	analyzer *Analyzer
	robots   *robots.Analyzer
	logger   *slog.Logger
	maxPages int
}

func New(analyzer *Analyzer, robotsAnalyzer *robots.Analyzer, maxPages int, logger *slog.Logger) *Crawler {
	if maxPages <= 0 {
		maxPages = MaxPages
	}
	return &Crawler{
		analyzer: analyzer,
		robots:   robotsAnalyzer,
		logger:   logger,
		maxPages: maxPages,
	}
}

// Crawl runs one crawl request end to end. The only fatal conditions are a
// malformed URL and an unreachable homepage; everything else degrades into
// the result.
func (c *Crawler) Crawl(ctx context.Context, req models.CrawlRequest) (*models.SiteCrawlResult, error) {
	base, err := NormalizeRequestURL(req.URL)
	if err != nil {
		return nil, err
	}
	origin := base.Scheme + "://" + base.Host

	// robots.txt analysis is independent of page content; run it alongside
	// the page crawl
	robotsCh := make(chan models.RobotsTxtAnalysis, 1)
	go func() {
		robotsCh <- c.robots.Analyze(ctx, origin)
	}()

	page, err := c.analyzer.fetcher.GetPage(ctx, base.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch homepage: %w", err)
	}
	c.logger.Info("homepage fetched", "url", page.URL, "status", page.StatusCode, "load_ms", page.LoadTime.Milliseconds())

	home := c.analyzer.BuildPageRecord(page, req.Keywords)

	var spaDetection *models.SPADetection
	if detected, reason := DetectSPA(page.Doc, home.ContentStats.WordCount, len(home.Headings)); detected {
		c.logger.Info("client-rendered page detected, trying render fallback", "url", page.URL, "reason", reason)
		spaDetection = c.analyzer.renderFallback(ctx, home, req.Keywords)
		spaDetection.Reason = reason
	}

	links := DiscoverLinks(page.Doc, base)
	if limit := c.maxPages - 1; len(links) > limit {
		links = links[:limit]
	}
	c.logger.Info("crawl set selected", "url", page.URL, "sub_pages", len(links))

	records := []*models.PageRecord{home}
	records = append(records, c.crawlSubPages(ctx, links, req.Keywords)...)

	result := Aggregate(records)
	result.SPADetection = spaDetection
	result.AIReadiness = aiready.Synthesize(<-robotsCh, result.SchemaMarkup)

	return result, nil
}

// crawlSubPages fetches every prioritized link concurrently. Each fetch
// settles on its own; failures simply contribute no record.
func (c *Crawler) crawlSubPages(ctx context.Context, links []string, keywords []string) []*models.PageRecord {
	settled := make([]*models.PageRecord, len(links))

	var wg sync.WaitGroup
	for i, link := range links {
		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()
			settled[i] = c.analyzer.AnalyzePage(ctx, link, keywords)
		}(i, link)
	}
	wg.Wait()

	var records []*models.PageRecord
	for _, r := range settled {
		if r != nil {
			records = append(records, r)
		}
	}
	return records
}

// NormalizeRequestURL prefixes https:// when the scheme is missing and
// validates the result before any network activity.
func NormalizeRequestURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("url is required")
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid url: unsupported scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("invalid url: missing host")
	}
	return u, nil
}
