package extract

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/aireadyhq/crawler/models"
)

// Enrich pulls article metadata out of the raw HTML via go-readability and
// attaches the detected content language. Enrichment is best-effort: any
// failure returns whatever was gathered so far.
func Enrich(pageURL, html, bodyText string) models.PageMeta {
	meta := models.PageMeta{
		Language: DetectLanguage(bodyText),
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return meta
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return meta
	}

	meta.Author = article.Byline
	meta.SiteName = article.SiteName
	meta.Excerpt = article.Excerpt
	meta.Favicon = article.Favicon
	meta.Image = article.Image
	if article.PublishedTime != nil {
		meta.PublishedTime = article.PublishedTime.Format("2006-01-02")
	}

	return meta
}
