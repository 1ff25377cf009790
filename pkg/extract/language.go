package extract

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// minLanguageWords is the smallest sample worth running detection on;
// shorter text gives unreliable results.
const minLanguageWords = 10

var languageDetector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Portuguese,
			lingua.Italian,
			lingua.Dutch,
			lingua.Japanese,
		).
		Build()
})

// DetectLanguage returns the ISO-639-1 code of the text's language, or ""
// when the sample is too short or detection is inconclusive.
func DetectLanguage(text string) string {
	if len(strings.Fields(text)) < minLanguageWords {
		return ""
	}

	lang, ok := languageDetector().DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
