package score

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aireadyhq/crawler/models"
)

// Thresholds for the direct-answer decision. The first-sentence window
// deliberately counts any concise opening statement as citable.
const (
	minAnswerLength  = 20
	minFirstSentence = 30
	maxFirstSentence = 150
)

// directAnswerPatterns signal an assertion or conclusion. Order matters only
// for readability; any match decides.
var directAnswerPatterns = []*regexp.Regexp{
	// "X is a ...", "X refers to the ..." style definitions
	regexp.MustCompile(`(?i)^.{1,80}?\b(is|are|was|were|means|refers to|stands for|consists of|represents)\s+(a|an|the|one|not|to|that)\b`),
	// verdict lead-ins
	regexp.MustCompile(`(?i)^(yes|no|generally|typically|usually|in short|in summary|simply put|the short answer|absolutely)\b`),
	// imperative how-to openers: "To configure X, ..."
	regexp.MustCompile(`(?i)^to\s+\w+[^.!?]*,`),
	// numbered-list lead-in
	regexp.MustCompile(`^\s*1[.)]\s`),
	// enumeration openers
	regexp.MustCompile(`(?i)^(first|second|third|next|then|finally)\b[,:]?\s`),
}

// IsDirectAnswer reports whether a text span (the content following a
// heading) constitutes a leads-with-the-answer statement. Pure and
// deterministic; it drives the BLUF score.
func IsDirectAnswer(text string) bool {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minAnswerLength {
		return false
	}

	for _, re := range directAnswerPatterns {
		if re.MatchString(trimmed) {
			return true
		}
	}

	n := utf8.RuneCountInString(firstSentence(trimmed))
	return n >= minFirstSentence && n <= maxFirstSentence
}

// Bluf computes the BLUF analysis over an extracted heading list.
func Bluf(headings []models.Heading) models.BlufAnalysis {
	analysis := models.BlufAnalysis{
		TotalHeadings: len(headings),
		DirectAnswers: []models.DirectAnswer{},
	}

	for _, h := range headings {
		if !h.HasDirectAnswer {
			continue
		}
		analysis.HeadingsWithDirectAnswers++
		analysis.DirectAnswers = append(analysis.DirectAnswers, models.DirectAnswer{
			Heading: h.Text,
			Answer:  h.FollowingContent,
		})
	}

	if analysis.TotalHeadings > 0 {
		ratio := float64(analysis.HeadingsWithDirectAnswers) / float64(analysis.TotalHeadings)
		analysis.Score = int(math.Round(100 * ratio))
	}
	return analysis
}

func firstSentence(text string) string {
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}
