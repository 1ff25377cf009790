package extract

import (
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/aireadyhq/crawler/models"
)

// Signals collects the page's technical presence checks: canonical tag,
// social-preview tags, mobile viewport and transport security.
func Signals(doc *goquery.Document, pageURL string, loadTime time.Duration) models.TechnicalSignals {
	signals := models.TechnicalSignals{
		HasCanonical:   doc.Find(`link[rel="canonical"]`).Length() > 0,
		HasOpenGraph:   doc.Find(`meta[property^="og:"]`).Length() > 0,
		HasTwitterCard: doc.Find(`meta[name^="twitter:"]`).Length() > 0,
		MobileViewport: doc.Find(`meta[name="viewport"]`).Length() > 0,
		LoadTimeMs:     loadTime.Milliseconds(),
	}

	if u, err := url.Parse(pageURL); err == nil {
		signals.HasHTTPS = u.Scheme == "https"
	}
	return signals
}
