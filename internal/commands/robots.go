package commands

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/aireadyhq/crawler/pkg/crawler"
	"github.com/aireadyhq/crawler/pkg/robots"
)

// RobotsAction runs only the robots.txt / AI-crawler analysis.
func RobotsAction(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	base, err := crawler.NormalizeRequestURL(c.String("url"))
	if err != nil {
		return err
	}
	origin := base.Scheme + "://" + base.Host

	analyzer := robots.NewAnalyzer(cfg.Crawler.GetRobotsTimeout(), logger)
	analysis := analyzer.Analyze(c.Context, origin)

	if c.Bool("json") {
		return printJSON(analysis)
	}

	if !analysis.Exists {
		fmt.Printf("%s has no reachable robots.txt (%s)\n\n", origin, analysis.FetchError)
	} else {
		fmt.Printf("robots.txt for %s\n\n", origin)
	}

	fmt.Printf("%-22s %-15s %-8s\n", "Crawler", "Status", "Type")
	fmt.Println(strings.Repeat("-", 50))
	for _, rule := range analysis.Crawlers {
		kind := "training"
		if rule.IsSearchCrawler {
			kind = "search"
		}
		fmt.Printf("%-22s %-15s %-8s\n", rule.Crawler, rule.Status, kind)
	}

	if analysis.HasBlockedSearchCrawlers {
		fmt.Println("\nWARNING: search/citation crawlers are blocked; the site cannot appear in AI answers.")
	}
	return nil
}
