// Package aiready grades how prepared a site is for AI crawlers and answer
// engines, combining robots.txt verdicts with structured-data presence.
package aiready

import (
	"fmt"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/robots"
)

// ecommerceSchemaTypes indicate a shopping site; presence of any of them
// gates the merchant platform recommendation.
var ecommerceSchemaTypes = map[string]struct{}{
	"Product":        {},
	"Offer":          {},
	"AggregateOffer": {},
	"ItemList":       {},
	"ShoppingCart":   {},
}

// Synthesize builds the overall AI-readiness verdict. Status starts good,
// escalates to warning for a missing robots.txt or a detected shop, and to
// critical when any search/citation crawler is blocked. Every trigger
// appends its issue string even when a worse severity already won.
func Synthesize(robotsTxt models.RobotsTxtAnalysis, schemas []models.SchemaRecord) models.AIReadinessAnalysis {
	analysis := models.AIReadinessAnalysis{
		RobotsTxt:     robotsTxt,
		IsEcommerce:   detectEcommerce(schemas),
		OverallStatus: models.StatusGood,
		Issues:        []string{},
	}
	analysis.PlatformRecommendations = recommendations(analysis.IsEcommerce)

	blockedSearch := blockedSearchCrawlers(robotsTxt)
	if len(blockedSearch) > 0 {
		analysis.OverallStatus = models.StatusCritical
		for _, name := range blockedSearch {
			analysis.Issues = append(analysis.Issues,
				fmt.Sprintf("robots.txt blocks %s, removing the site from AI-powered search results", name))
		}
	}

	for _, name := range robots.HighValueSearchCrawlers {
		if isBlocked(robotsTxt, name) {
			analysis.OverallStatus = models.StatusCritical
			analysis.Issues = append(analysis.Issues,
				fmt.Sprintf("%s is individually blocked; this crawler drives citations in a major AI answer engine", name))
		}
	}

	if !robotsTxt.Exists {
		if analysis.OverallStatus == models.StatusGood {
			analysis.OverallStatus = models.StatusWarning
		}
		analysis.Issues = append(analysis.Issues,
			"no robots.txt found; AI crawlers receive no guidance about this site")
	}

	if analysis.IsEcommerce {
		if analysis.OverallStatus == models.StatusGood {
			analysis.OverallStatus = models.StatusWarning
		}
		analysis.Issues = append(analysis.Issues,
			"e-commerce schema detected; product data should be registered with merchant platforms for AI shopping surfaces")
	}

	return analysis
}

func detectEcommerce(schemas []models.SchemaRecord) bool {
	for _, s := range schemas {
		if _, ok := ecommerceSchemaTypes[s.Type]; ok {
			return true
		}
	}
	return false
}

func blockedSearchCrawlers(robotsTxt models.RobotsTxtAnalysis) []string {
	var blocked []string
	for _, c := range robotsTxt.Crawlers {
		if c.IsSearchCrawler && c.Status == models.CrawlerBlocked {
			blocked = append(blocked, c.Crawler)
		}
	}
	return blocked
}

func isBlocked(robotsTxt models.RobotsTxtAnalysis, crawler string) bool {
	for _, c := range robotsTxt.Crawlers {
		if c.Crawler == crawler {
			return c.Status == models.CrawlerBlocked
		}
	}
	return false
}

func recommendations(isEcommerce bool) []models.PlatformRecommendation {
	recs := []models.PlatformRecommendation{
		{
			Platform:    "Bing Webmaster Tools",
			URL:         "https://www.bing.com/webmasters",
			Description: "Bing's index powers several AI assistants' web answers",
			Applicable:  true,
			Reason:      "indexing here feeds AI chat products that browse via Bing",
		},
		{
			Platform:    "Google Search Console",
			URL:         "https://search.google.com/search-console",
			Description: "Google's index backs AI Overviews and Gemini grounding",
			Applicable:  true,
			Reason:      "baseline visibility for every AI search surface",
		},
		{
			Platform:    "Google Merchant Center",
			URL:         "https://merchants.google.com",
			Description: "Product feeds surface in AI shopping experiences",
			Applicable:  isEcommerce,
			Reason:      reasonForMerchant(isEcommerce),
		},
	}
	return recs
}

func reasonForMerchant(isEcommerce bool) string {
	if isEcommerce {
		return "product schema found on the site"
	}
	return "no e-commerce schema detected"
}
