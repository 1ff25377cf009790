package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/aireadyhq/crawler/internal/server"
	"github.com/aireadyhq/crawler/pkg/storage"
)

// ServeAction starts the HTTP API.
func ServeAction(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	var store *storage.DB
	if !c.Bool("no-save") {
		store, err = storage.Open(cfg.Storage.Path)
		if err != nil {
			logger.Warn("history database unavailable, crawls will not be saved", "error", err)
		} else {
			defer store.Close()
		}
	}

	addr := cfg.Server.Addr
	if c.IsSet("addr") {
		addr = c.String("addr")
	}

	srv := server.New(buildCrawler(cfg, logger), store, logger)
	return srv.Run(addr)
}
