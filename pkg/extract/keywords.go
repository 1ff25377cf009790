package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/aireadyhq/crawler/models"
)

// Keywords scores keyword placement and density against the caller-supplied
// list. Membership checks are case-insensitive and OR across keywords; an
// empty list yields the zero value.
func Keywords(bodyText, title, metaDescription, h1 string, keywords []string) models.KeywordAnalysis {
	var analysis models.KeywordAnalysis

	lowerTitle := strings.ToLower(title)
	lowerMeta := strings.ToLower(metaDescription)
	lowerH1 := strings.ToLower(h1)

	totalWords := len(strings.Fields(bodyText))

	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		lower := strings.ToLower(kw)

		if strings.Contains(lowerTitle, lower) {
			analysis.TitleContainsKeyword = true
		}
		if strings.Contains(lowerH1, lower) {
			analysis.H1ContainsKeyword = true
		}
		if strings.Contains(lowerMeta, lower) {
			analysis.MetaContainsKeyword = true
		}

		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(kw))
		if err != nil {
			continue
		}
		analysis.KeywordOccurrences += len(re.FindAllStringIndex(bodyText, -1))
	}

	if totalWords > 0 && analysis.KeywordOccurrences > 0 {
		density := 100 * float64(analysis.KeywordOccurrences) / float64(totalWords)
		analysis.KeywordDensity = math.Round(density*100) / 100
	}

	return analysis
}
