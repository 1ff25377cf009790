package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/aireadyhq/crawler/internal/commands"
)

func main() {
	app := &cli.App{
		Name:  "aiready",
		Usage: "crawl a website and analyze how ready it is for AI crawlers and answer engines",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to config file"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		},
		Commands: []*cli.Command{
			{
				Name:   "crawl",
				Usage:  "crawl a site and print the full analysis",
				Action: commands.CrawlAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "site URL (https assumed when scheme is omitted)", Required: true},
					&cli.StringFlag{Name: "keywords", Usage: "comma-separated keywords to score placement against"},
					&cli.BoolFlag{Name: "json", Usage: "print the raw result as JSON"},
					&cli.BoolFlag{Name: "no-save", Usage: "skip writing the crawl to the history database"},
				},
			},
			{
				Name:   "robots",
				Usage:  "analyze only the site's robots.txt against the AI crawler catalog",
				Action: commands.RobotsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "site URL", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "print the raw analysis as JSON"},
				},
			},
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: commands.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address (overrides config)"},
					&cli.BoolFlag{Name: "no-save", Usage: "do not persist crawls"},
				},
			},
			{
				Name:   "history",
				Usage:  "list stored crawls",
				Action: commands.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum number of crawls to list"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
