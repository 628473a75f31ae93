package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the canonical form used for dictionary keys and lookups.
// Input is composed to NFC and lowercased, so "Éte" written with a combining
// accent and "éte" end up under the same key.
//
// Dictionary ingestion and per-token lookup must both go through Fold.
func Fold(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	// a Caser is stateful and must not be shared between goroutines
	return cases.Lower(language.Und).String(norm.NFC.String(word))
}

// FoldAll folds every element of words, dropping the ones that fold to ""
func FoldAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if f := Fold(w); f != "" {
			out = append(out, f)
		}
	}
	return out
}
