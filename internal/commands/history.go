package commands

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/aireadyhq/crawler/pkg/storage"
)

// HistoryAction lists stored crawls, newest first.
func HistoryAction(c *cli.Context) error {
	cfg, _, err := setup(c)
	if err != nil {
		return err
	}

	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	crawls, err := db.ListCrawls(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(crawls) == 0 {
		fmt.Println("No crawls recorded yet")
		return nil
	}

	fmt.Printf("%-6s %-20s %-35s %-6s %-9s %-7s %-8s\n",
		"ID", "Created", "URL", "Pages", "Status", "Words", "Read.")
	fmt.Println(strings.Repeat("-", 96))
	for _, cr := range crawls {
		fmt.Printf("%-6d %-20s %-35s %-6d %-9s %-7d %-8.1f\n",
			cr.CrawlID,
			cr.CreatedAt.Format("2006-01-02 15:04:05"),
			truncateCol(cr.URL, 35),
			cr.PagesAnalyzed,
			cr.OverallStatus,
			cr.WordCount,
			cr.Readability,
		)
	}
	fmt.Printf("\nTotal: %d crawls\n", len(crawls))
	return nil
}
