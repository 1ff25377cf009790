// Package score holds the pure scoring functions shared by both extraction
// pipelines: Flesch reading ease and the direct-answer classifier.
package score

import (
	"strings"
	"unicode"
)

// Flesch Reading Ease formula weights.
const (
	fleschBase           = 206.835
	fleschSentenceWeight = 1.015
	fleschSyllableWeight = 84.6

	// neutralReadability is returned for text too short to score.
	neutralReadability = 50.0
)

// Readability computes a Flesch-Reading-Ease-style score in [0,100], higher
// meaning easier to read. Empty or single-fragment text scores 50.
func Readability(text string) float64 {
	sentences := Sentences(text)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return neutralReadability
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	score := fleschBase -
		fleschSentenceWeight*(float64(len(words))/float64(len(sentences))) -
		fleschSyllableWeight*(float64(syllables)/float64(len(words)))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Sentences splits text on sentence delimiters, dropping empty fragments.
func Sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, strings.TrimSpace(p))
		}
	}
	return sentences
}

// AvgSentenceLength returns the mean word count per sentence.
func AvgSentenceLength(text string) float64 {
	sentences := Sentences(text)
	words := strings.Fields(text)
	if len(sentences) == 0 {
		return 0
	}
	return float64(len(words)) / float64(len(sentences))
}

// CountSyllables estimates the syllable count of a single word with a
// vowel-group heuristic: count vowel-group transitions, drop a silent
// trailing "e", and never report less than one syllable.
func CountSyllables(word string) int {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, word)

	if len(cleaned) <= 3 {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range cleaned {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(cleaned, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
