// Package stopwords exposes the Snowball Russian stopword list.
//
// The list is static data embedded in the binary. Lookups are exact and
// expect lowercase input with ё preserved, as in the list itself.
//
// All functions are safe for concurrent use.
package stopwords

import (
	"strings"

	"github.com/az-ai-labs/ru-lang-nlp/data"
)

var (
	list = parse(data.RussianStopwords)
	set  = toSet(list)
)

func parse(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if w := strings.TrimSpace(line); w != "" && !strings.HasPrefix(w, "#") {
			out = append(out, w)
		}
	}
	return out
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether word is a stopword.
func Contains(word string) bool {
	_, ok := set[word]
	return ok
}

// List returns the stopwords in list order. The caller owns the slice.
func List() []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Len returns the number of stopwords.
func Len() int {
	return len(set)
}
