// Package commands wires the CLI subcommands to the crawl pipeline.
package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/aireadyhq/crawler/internal/logging"
	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/crawler"
	"github.com/aireadyhq/crawler/pkg/fetcher"
	"github.com/aireadyhq/crawler/pkg/robots"
	"github.com/aireadyhq/crawler/pkg/storage"
)

// CrawlAction runs a full site crawl and prints the result.
func CrawlAction(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	req := models.CrawlRequest{
		URL:      c.String("url"),
		Keywords: splitKeywords(c.String("keywords")),
	}
	if req.URL == "" {
		return fmt.Errorf("no URL provided via --url flag")
	}

	result, err := buildCrawler(cfg, logger).Crawl(c.Context, req)
	if err != nil {
		return err
	}

	if !c.Bool("no-save") {
		if err := persist(cfg, logger, result); err != nil {
			logger.Warn("failed to save crawl to history", "error", err)
		}
	}

	if c.Bool("json") {
		return printJSON(result)
	}
	printSummary(result)
	return nil
}

func setup(c *cli.Context) (*models.Config, *slog.Logger, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if c.Bool("quiet") {
		cfg.Logging.Level = "error"
	}
	return cfg, logging.New(cfg.Logging), nil
}

func buildCrawler(cfg *models.Config, logger *slog.Logger) *crawler.Crawler {
	f := fetcher.NewFetcher(cfg.Crawler.GetPageTimeout(), cfg.Crawler.UserAgent)
	r := fetcher.NewRenderer(cfg.Render.Endpoint, cfg.Render.GetTimeout())
	analyzer := crawler.NewAnalyzer(f, r, logger)
	robotsAnalyzer := robots.NewAnalyzer(cfg.Crawler.GetRobotsTimeout(), logger)
	return crawler.New(analyzer, robotsAnalyzer, cfg.Crawler.MaxPages, logger)
}

func persist(cfg *models.Config, logger *slog.Logger, result *models.SiteCrawlResult) error {
	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.SaveCrawl(result)
	if err != nil {
		return err
	}
	logger.Info("crawl saved", "crawl_id", id, "db", db.Path())
	return nil
}

func splitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var keywords []string
	for _, kw := range strings.Split(s, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSummary(result *models.SiteCrawlResult) {
	fmt.Printf("Crawled %s: %d pages\n", result.URL, result.PagesAnalyzed)
	fmt.Printf("  Words: %d  Readability: %.1f  BLUF score: %d\n",
		result.ContentStats.WordCount, result.ContentStats.ReadabilityScore, result.BlufAnalysis.Score)
	fmt.Printf("  Schema types: %d  Pages with schema: %d/%d\n",
		len(result.SchemaMarkup), result.PagesWithSchema, result.PagesAnalyzed)
	fmt.Printf("  AI readiness: %s\n", result.AIReadiness.OverallStatus)
	for _, issue := range result.AIReadiness.Issues {
		fmt.Printf("    - %s\n", issue)
	}
	fmt.Println()
	fmt.Printf("%-50s %-8s %-9s %-7s\n", "Page", "Words", "Headings", "Schema")
	fmt.Println(strings.Repeat("-", 78))
	for _, p := range result.Pages {
		fmt.Printf("%-50s %-8d %-9d %-7d\n", truncateCol(p.URL, 50), p.WordCount, p.HeadingsCount, p.SchemaCount)
	}
}

func truncateCol(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
