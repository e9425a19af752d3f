package router

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares raw text for matching: NFC composition, Unicode lowercasing and
// trimming of surrounding whitespace. Composing first keeps "é" typed as e + U+0301
// equal to the precomposed form used in the lexicon.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// A Caser keeps state, so one is built per call.
	lower := cases.Lower(language.Und).String(norm.NFC.String(text))
	return strings.TrimSpace(lower)
}
