// Package stemmer reduces Russian word forms to a stem with the Snowball
// Russian algorithm.
//
// The package provides two API layers:
//
//   - Direct: Stem and Stems run the algorithm on every call.
//
//   - Cached: Cached wraps Stem with a bounded in-memory cache for
//     token streams with many repeated words.
//
// Stemming is a fixed sequence of suffix-removal steps applied to the end of
// the word inside the RV region (everything after the first vowel):
// perfective gerund, else an optional reflexive followed by adjectival,
// verb or noun endings; then a trailing и; then -ость in R2; then tidy-up
// of superlatives, double н and the soft sign. ё is folded to е first.
//
// Input is expected in lowercase; uppercase Cyrillic is left untouched.
// Use normalize.Word to lowercase and compose input first.
//
// All functions are safe for concurrent use by multiple goroutines.
package stemmer

import (
	"sync"
	"unicode/utf8"

	"github.com/az-ai-labs/ru-lang-nlp/internal/snowball"
)

// maxPooledRunes caps the buffer kept in the pool after a call.
const maxPooledRunes = 64

// russian is the per-call state: the rewrite buffer and the region markers.
type russian struct {
	env snowball.Env
	pV  int
	p2  int
}

var statePool = sync.Pool{
	New: func() any { return new(russian) },
}

// Stem returns the stem of a lowercase Russian word.
// Returns the word unchanged if it is empty, is not valid UTF-8 or
// contains no lowercase Cyrillic letter.
func Stem(word string) string {
	if word == "" || !utf8.ValidString(word) || !hasRussianLetter(word) {
		return word
	}
	s := statePool.Get().(*russian)
	s.env.SetCurrent(word)
	s.stem()
	out := s.env.Current()
	if s.env.Len() <= maxPooledRunes {
		statePool.Put(s)
	}
	return out
}

// Stems stems a slice of words.
// Returns nil if the input is nil.
func Stems(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Stem(w)
	}
	return out
}

// hasRussianLetter reports whether s contains a rune in а..я or ё.
// Words without one cannot match any rule.
func hasRussianLetter(s string) bool {
	for _, r := range s {
		if (r >= 'а' && r <= 'я') || r == 'ё' {
			return true
		}
	}
	return false
}

func (s *russian) stem() {
	env := &s.env
	if !s.foldYo() {
		return
	}
	s.markRegions()

	env.LimitBackward = env.Cursor
	env.Cursor = env.Limit
	if env.Cursor < s.pV {
		return
	}
	savedLimit := env.LimitBackward
	env.LimitBackward = s.pV

	v := env.Limit - env.Cursor
	s.step1()
	env.Cursor = env.Limit - v

	v = env.Limit - env.Cursor
	env.Ket = env.Cursor
	if env.EqSB("и") {
		env.Bra = env.Cursor
		if !env.SliceDel() {
			return
		}
	} else {
		env.Cursor = env.Limit - v
	}

	v = env.Limit - env.Cursor
	s.derivational()
	env.Cursor = env.Limit - v

	v = env.Limit - env.Cursor
	s.tidyUp()
	env.Cursor = env.Limit - v

	env.LimitBackward = savedLimit
	env.Cursor = env.LimitBackward
}

// step1 removes the main inflectional ending. A reflexive suffix removed
// here stays removed even if no ending follows it.
func (s *russian) step1() {
	env := &s.env
	v := env.Limit - env.Cursor
	if s.perfectiveGerund() {
		return
	}
	env.Cursor = env.Limit - v

	v = env.Limit - env.Cursor
	if !s.reflexive() {
		env.Cursor = env.Limit - v
	}

	v = env.Limit - env.Cursor
	if s.adjectival() {
		return
	}
	env.Cursor = env.Limit - v
	if s.verb() {
		return
	}
	env.Cursor = env.Limit - v
	s.noun()
}

// foldYo replaces every ё with е.
func (s *russian) foldYo() bool {
	env := &s.env
	start := env.Cursor
	for {
		c := env.Cursor
		if !s.gotoYo() {
			env.Cursor = c
			break
		}
		if !env.SliceFrom("е") {
			return false
		}
	}
	env.Cursor = start
	return true
}

// gotoYo brackets the next ё at or after the cursor and leaves the cursor
// in front of it.
func (s *russian) gotoYo() bool {
	env := &s.env
	for {
		c := env.Cursor
		env.Bra = c
		if env.EqS("ё") {
			env.Ket = env.Cursor
			env.Cursor = c
			return true
		}
		env.Cursor = c
		if env.Cursor >= env.Limit {
			return false
		}
		env.Cursor++
	}
}
