// Package rucase provides Russian case conversion and Unicode composition
// helpers for the stemmer's input.
//
// Russian case mapping is the standard Unicode one (Ё -> ё, not Ё -> е);
// ToLower goes through golang.org/x/text/cases with the Russian tag so
// that final-sigma style special casing never applies to Cyrillic input.
//
// All functions are safe for concurrent use.
package rucase

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower returns s lowercased with Russian case rules.
func ToLower(s string) string {
	if !hasUpper(s) {
		return s
	}
	// A Caser keeps state between calls and must not be shared.
	return cases.Lower(language.Russian).String(s)
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return true
		}
	}
	return false
}

// IsCyrillic reports whether r is a Cyrillic letter.
func IsCyrillic(r rune) bool {
	return unicode.Is(unicode.Cyrillic, r)
}

// IsRussianLower reports whether r is one of the 33 lowercase letters of
// the Russian alphabet.
func IsRussianLower(r rune) bool {
	return (r >= 'а' && r <= 'я') || r == 'ё'
}
