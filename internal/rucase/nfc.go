package rucase

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Stress marks used in dictionaries and learner texts.
const (
	combiningGrave = '\u0300'
	combiningAcute = '\u0301'
)

// hasCombiner reports whether s contains any combining diacritical mark.
func hasCombiner(s string) bool {
	for _, r := range s {
		if r >= 0x0300 && r <= 0x036F {
			return true
		}
	}
	return false
}

// ComposeNFC returns s in Unicode NFC. Decomposed е + U+0308 becomes ё and
// и + U+0306 becomes й. Strings without combining marks are returned as is.
func ComposeNFC(s string) string {
	if !hasCombiner(s) {
		return s
	}
	return norm.NFC.String(s)
}

func isStressMark(r rune) bool {
	return r == combiningAcute || r == combiningGrave
}

// StripStress removes stress accents and returns the result in NFC.
// Letters whose identity depends on a diacritic (ё, й) are kept.
func StripStress(s string) string {
	if !hasCombiner(s) && !hasPrecomposedStress(s) {
		return s
	}
	// Chained transformers carry buffers and must not be shared.
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isStressMark)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// hasPrecomposedStress reports whether s contains ѐ or ѝ, the only
// precomposed Cyrillic letters that decompose to a stress mark.
func hasPrecomposedStress(s string) bool {
	for _, r := range s {
		switch r {
		case '\u0450', '\u045D', '\u0400', '\u040D':
			return true
		}
	}
	return false
}
