// Package storage keeps a local history of completed crawls in SQLite.
// The crawl path itself never touches it; the CLI and HTTP server save and
// list results through here.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const DefaultDBPath = "aiready.db"

type DB struct {
	*sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS crawls (
	crawl_id       INTEGER PRIMARY KEY AUTOINCREMENT,
	url            TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	pages_analyzed INTEGER NOT NULL,
	overall_status TEXT NOT NULL,
	word_count     INTEGER NOT NULL,
	readability    REAL NOT NULL,
	result_json    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_crawls_url ON crawls(url);
CREATE INDEX IF NOT EXISTS idx_crawls_created_at ON crawls(created_at);
`

// Open opens or creates the history database at path, initializing the
// schema when needed.
func Open(path string) (*DB, error) {
	if path == "" {
		path = DefaultDBPath
	}

	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.InitSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

func openDB(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return sqlDB, nil
}

// InitSchema creates the tables when they don't exist yet.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}
