package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

const UnknownLanguage = "unknown"

var (
	detector     lingua.LanguageDetector
	detectorOnce sync.Once
)

// DetectLanguage guesses the written language of the given content and
// returns its ISO 639-1 code, or UnknownLanguage when the detector is
// not confident enough.
func DetectLanguage(content string) string {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Japanese,
				lingua.Chinese,
				lingua.Russian,
				lingua.Portuguese,
			).
			Build()
	})

	if language, exists := detector.DetectLanguageOf(content); exists {
		return strings.ToLower(language.IsoCode639_1().String())
	}
	return UnknownLanguage
}
