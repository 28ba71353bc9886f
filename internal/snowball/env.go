// Package snowball is a small runtime for Snowball-style stemmers.
//
// An Env holds one word being rewritten: a rune buffer, a cursor, the
// forward and backward limits and a bracketed slice [Bra, Ket) that the
// slice operations replace. Stemmers drive it through grouping tests,
// literal matches and among-table lookups, then read the result back
// with Current.
//
// An Env is owned by a single caller for the duration of one word.
// Among tables and groupings are read-only and may be shared freely.
package snowball

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Env is the mutable state of one stemming run.
//
// Invariant: 0 <= Bra <= Ket <= Limit <= len(current), and
// LimitBackward <= Cursor <= Limit while backward rules execute.
type Env struct {
	current       []rune
	Cursor        int
	Limit         int
	LimitBackward int
	Bra           int
	Ket           int
}

// NewEnv returns an Env positioned at the start of s.
func NewEnv(s string) *Env {
	env := &Env{}
	env.SetCurrent(s)
	return env
}

// SetCurrent loads s into the buffer and resets every position.
// The buffer's backing array is reused when it is large enough.
func (env *Env) SetCurrent(s string) {
	env.current = env.current[:0]
	for _, r := range s {
		env.current = append(env.current, r)
	}
	env.Cursor = 0
	env.Limit = len(env.current)
	env.LimitBackward = 0
	env.Bra = env.Cursor
	env.Ket = env.Limit
}

// Current returns the whole buffer as a string.
func (env *Env) Current() string {
	return string(env.current)
}

// Len returns the buffer length in runes.
func (env *Env) Len() int {
	return len(env.current)
}

// EqS matches s forward at the cursor and advances past it.
// The cursor does not move when s does not match.
func (env *Env) EqS(s string) bool {
	n := utf8.RuneCountInString(s)
	if env.Limit-env.Cursor < n {
		return false
	}
	i := env.Cursor
	for _, r := range s {
		if env.current[i] != r {
			return false
		}
		i++
	}
	env.Cursor += n
	return true
}

// EqSB matches s so that it ends at the cursor and moves the cursor to its
// start. The cursor does not move when s does not match.
func (env *Env) EqSB(s string) bool {
	n := utf8.RuneCountInString(s)
	if env.Cursor-env.LimitBackward < n {
		return false
	}
	i := env.Cursor - n
	for _, r := range s {
		if env.current[i] != r {
			return false
		}
		i++
	}
	env.Cursor -= n
	return true
}

// ReplaceS replaces the runes in [bra, ket) with s and returns the change in
// length. Limit follows the change; a cursor at or after ket shifts with it
// and a cursor strictly inside the replaced range collapses to bra.
func (env *Env) ReplaceS(bra, ket int, s string) int {
	repl := []rune(s)
	adjustment := len(repl) - (ket - bra)
	n := len(env.current)
	if adjustment != 0 {
		if adjustment > 0 {
			env.current = append(env.current, make([]rune, adjustment)...)
		}
		copy(env.current[ket+adjustment:], env.current[ket:n])
		env.current = env.current[:n+adjustment]
	}
	copy(env.current[bra:], repl)

	env.Limit += adjustment
	if env.Cursor >= ket {
		env.Cursor += adjustment
	} else if env.Cursor > bra {
		env.Cursor = bra
	}
	return adjustment
}

// Check reports whether the bracket invariant holds.
// A non-nil result means a rule set the brackets out of order.
func (env *Env) Check() error {
	if env.Bra < 0 || env.Bra > env.Ket || env.Ket > env.Limit || env.Limit > len(env.current) {
		return errors.Errorf("snowball: slice bounds violated: bra=%d ket=%d limit=%d len=%d",
			env.Bra, env.Ket, env.Limit, len(env.current))
	}
	return nil
}

// SliceFrom replaces the bracketed slice with s and re-brackets the
// replacement, so Ket never points past the shortened buffer. It returns
// false and leaves the buffer untouched when the bracket invariant does not
// hold.
func (env *Env) SliceFrom(s string) bool {
	if env.Check() != nil {
		return false
	}
	adjustment := env.ReplaceS(env.Bra, env.Ket, s)
	env.Ket += adjustment
	return true
}

// SliceDel deletes the bracketed slice.
func (env *Env) SliceDel() bool {
	return env.SliceFrom("")
}

// Insert replaces [bra, ket) with s and shifts Bra and Ket when they lie at
// or after the insertion point.
func (env *Env) Insert(bra, ket int, s string) {
	adjustment := env.ReplaceS(bra, ket, s)
	if bra <= env.Bra {
		env.Bra += adjustment
	}
	if bra <= env.Ket {
		env.Ket += adjustment
	}
}

// SliceTo returns a copy of the bracketed slice, or "" when the bracket
// invariant does not hold.
func (env *Env) SliceTo() string {
	if env.Check() != nil {
		return ""
	}
	return string(env.current[env.Bra:env.Ket])
}

// AssignTo returns the buffer up to Limit.
func (env *Env) AssignTo() string {
	return string(env.current[:env.Limit])
}
