package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aireadyhq/crawler/models"
)

// CrawlRow is one stored crawl, summary columns plus the full result.
type CrawlRow struct {
	CrawlID       int64
	URL           string
	CreatedAt     time.Time
	PagesAnalyzed int
	OverallStatus string
	WordCount     int
	Readability   float64
}

// SaveCrawl stores a completed crawl result and returns its row ID.
func (db *DB) SaveCrawl(result *models.SiteCrawlResult) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal result: %w", err)
	}

	res, err := db.Exec(`
		INSERT INTO crawls (url, pages_analyzed, overall_status, word_count, readability, result_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		result.URL,
		result.PagesAnalyzed,
		string(result.AIReadiness.OverallStatus),
		result.ContentStats.WordCount,
		result.ContentStats.ReadabilityScore,
		string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert crawl: %w", err)
	}
	return res.LastInsertId()
}

// ListCrawls returns the most recent crawls, newest first.
func (db *DB) ListCrawls(limit int) ([]CrawlRow, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT crawl_id, url, created_at, pages_analyzed, overall_status, word_count, readability
		FROM crawls
		ORDER BY created_at DESC, crawl_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list crawls: %w", err)
	}
	defer rows.Close()

	var crawls []CrawlRow
	for rows.Next() {
		var c CrawlRow
		if err := rows.Scan(&c.CrawlID, &c.URL, &c.CreatedAt, &c.PagesAnalyzed, &c.OverallStatus, &c.WordCount, &c.Readability); err != nil {
			return nil, fmt.Errorf("failed to scan crawl row: %w", err)
		}
		crawls = append(crawls, c)
	}
	return crawls, rows.Err()
}

// GetCrawl loads a stored result by ID.
func (db *DB) GetCrawl(crawlID int64) (*models.SiteCrawlResult, error) {
	var payload string
	err := db.QueryRow(`SELECT result_json FROM crawls WHERE crawl_id = ?`, crawlID).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("failed to load crawl %d: %w", crawlID, err)
	}

	var result models.SiteCrawlResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal crawl %d: %w", crawlID, err)
	}
	return &result, nil
}
