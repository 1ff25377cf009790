package robots

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aireadyhq/crawler/models"
)

// Analyzer fetches {origin}/robots.txt and resolves a verdict for every
// catalog crawler. It never fails: a missing or unreachable robots.txt
// yields exists=false with every crawler not_specified.
type Analyzer struct {
	client *http.Client
	logger *slog.Logger
}

func NewAnalyzer(timeout time.Duration, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Analyze fetches and evaluates the robots.txt for the given origin
// (scheme://host).
func (a *Analyzer) Analyze(ctx context.Context, origin string) models.RobotsTxtAnalysis {
	body, err := a.fetch(ctx, strings.TrimRight(origin, "/")+"/robots.txt")
	if err != nil {
		a.logger.Warn("robots.txt not available", "origin", origin, "error", err)
		return unspecifiedAnalysis(err)
	}

	rules := parseRules(body)
	analysis := models.RobotsTxtAnalysis{Exists: true}

	for _, spec := range Catalog {
		status := resolve(rules, spec.Name)
		analysis.Crawlers = append(analysis.Crawlers, models.AICrawlerRule{
			Crawler:         spec.Name,
			Description:     spec.Description,
			Status:          status,
			IsSearchCrawler: spec.IsSearchCrawler,
		})
		if status == models.CrawlerBlocked {
			if spec.IsSearchCrawler {
				analysis.HasBlockedSearchCrawlers = true
			} else {
				analysis.HasBlockedTrainingCrawlers = true
			}
		}
	}

	return analysis
}

func (a *Analyzer) fetch(ctx context.Context, robotsURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// agentRules tracks whether a user-agent section blanket-disallows or
// blanket-allows the root path.
type agentRules struct {
	disallowAll bool
	allowAll    bool
}

// parseRules walks robots.txt line by line, case-insensitively. Consecutive
// user-agent lines form one group sharing the rules that follow.
func parseRules(body string) map[string]*agentRules {
	rules := make(map[string]*agentRules)
	var current []string
	lastWasAgent := false

	for _, rawLine := range strings.Split(body, "\n") {
		line := strings.TrimSpace(rawLine)
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		directive, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		directive = strings.ToLower(strings.TrimSpace(directive))
		value = strings.TrimSpace(value)

		switch directive {
		case "user-agent":
			agent := strings.ToLower(value)
			if lastWasAgent {
				current = append(current, agent)
			} else {
				current = []string{agent}
			}
			if _, ok := rules[agent]; !ok {
				rules[agent] = &agentRules{}
			}
			lastWasAgent = true

		case "disallow":
			lastWasAgent = false
			if value == "/" || value == "" {
				for _, agent := range current {
					rules[agent].disallowAll = true
				}
			}

		case "allow":
			lastWasAgent = false
			if value == "/" {
				for _, agent := range current {
					rules[agent].allowAll = true
				}
			}

		default:
			lastWasAgent = false
		}
	}

	return rules
}

// resolve applies the fallback chain: crawler-specific rules win over
// wildcard rules; a disallow without an accompanying allow blocks; anything
// else is not specified.
func resolve(rules map[string]*agentRules, crawler string) models.CrawlerStatus {
	for _, key := range []string{strings.ToLower(crawler), "*"} {
		section, ok := rules[key]
		if !ok {
			continue
		}
		if section.disallowAll && !section.allowAll {
			return models.CrawlerBlocked
		}
		if section.allowAll {
			return models.CrawlerAllowed
		}
	}
	return models.CrawlerNotSpecified
}

func unspecifiedAnalysis(err error) models.RobotsTxtAnalysis {
	analysis := models.RobotsTxtAnalysis{
		Exists:     false,
		FetchError: err.Error(),
	}
	for _, spec := range Catalog {
		analysis.Crawlers = append(analysis.Crawlers, models.AICrawlerRule{
			Crawler:         spec.Name,
			Description:     spec.Description,
			Status:          models.CrawlerNotSpecified,
			IsSearchCrawler: spec.IsSearchCrawler,
		})
	}
	return analysis
}
