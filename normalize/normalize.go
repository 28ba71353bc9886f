// Package normalize prepares Russian tokens for stemming.
//
// Word trims surrounding whitespace and punctuation, removes stress
// accents, composes the result to NFC and lowercases it. After Word a
// decomposed е + U+0308 reaches the stemmer as ё, and "Молоко," becomes
// "молоко".
//
// Input must be valid UTF-8; invalid or oversized input is returned
// unchanged.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/ru-lang-nlp/internal/rucase"
)

// maxWordBytes is the maximum token size for Word.
// Longer inputs are returned unchanged.
const maxWordBytes = 1 << 10

// Word normalizes a single token.
func Word(word string) string {
	if word == "" || len(word) > maxWordBytes || !utf8.ValidString(word) {
		return word
	}
	word = strings.TrimFunc(word, isEdge)
	word = rucase.StripStress(word)
	word = rucase.ComposeNFC(word)
	return rucase.ToLower(word)
}

// Words normalizes a slice of tokens.
// Returns nil if the input is nil.
func Words(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Word(w)
	}
	return out
}

// isEdge reports runes trimmed from both ends of a token: whitespace,
// punctuation and quote marks such as « » „ “.
func isEdge(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}
