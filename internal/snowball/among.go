package snowball

import "github.com/pkg/errors"

// Guard names an extra predicate an among entry must satisfy after its
// literal has matched. The set of guards is closed and owned by the
// stemmer that builds the table; the runtime only dispatches them.
type Guard uint8

// NoGuard marks an entry that matches on its literal alone.
const NoGuard Guard = 0

// GuardFunc evaluates a non-zero guard with the cursor placed just past the
// matched literal. It may move the cursor; the matcher puts it back.
type GuardFunc func(g Guard, env *Env) bool

// Among is one entry of a sorted suffix (or prefix) table.
type Among struct {
	Str    string // literal to match
	Substr int    // index of the next shorter entry that Str ends with (or starts with), -1 if none
	Result int    // tag returned on a match, always > 0
	Guard  Guard  // optional predicate, NoGuard if none

	runes []rune
}

// Table prepares entries for FindAmong and FindAmongB. Entries must already
// be sorted the way the Snowball compiler emits them: by rune sequence for
// forward tables and by reversed rune sequence for backward tables.
// A backlink that does not point at an earlier entry is a defect in the
// static data and panics.
func Table(entries ...Among) []Among {
	t := make([]Among, len(entries))
	for i, e := range entries {
		if e.Substr < -1 || e.Substr >= i {
			panic(errors.Errorf("snowball: entry %d (%q) has backlink %d", i, e.Str, e.Substr))
		}
		if e.Result <= 0 {
			panic(errors.Errorf("snowball: entry %d (%q) has result %d", i, e.Str, e.Result))
		}
		e.runes = []rune(e.Str)
		t[i] = e
	}
	return t
}

// FindAmong finds the longest entry of t that matches forward from the
// cursor and whose guard holds. It leaves the cursor just past the match and
// returns the entry's Result, or returns 0 with the cursor unchanged.
//
// The search is a binary search that remembers how many leading runes are
// already known to agree with the entries at either end of the window, so
// no rune is compared twice on the way down.
func (env *Env) FindAmong(t []Among, check GuardFunc) int {
	if len(t) == 0 {
		return 0
	}
	i, j := 0, len(t)
	c, l := env.Cursor, env.Limit
	commonI, commonJ := 0, 0
	firstKeyInspected := false

	for {
		k := i + (j-i)>>1
		diff := 0
		common := min(commonI, commonJ)
		w := &t[k]
		for i2 := common; i2 < len(w.runes); i2++ {
			if c+common == l {
				diff = -1
				break
			}
			diff = int(env.current[c+common]) - int(w.runes[i2])
			if diff != 0 {
				break
			}
			common++
		}
		if diff < 0 {
			j = k
			commonJ = common
		} else {
			i = k
			commonI = common
		}
		if j-i <= 1 {
			if i > 0 || j == i {
				break
			}
			// t[0] has not been compared yet; go round once more.
			if firstKeyInspected {
				break
			}
			firstKeyInspected = true
		}
	}

	for i >= 0 {
		w := &t[i]
		if commonI >= len(w.runes) {
			env.Cursor = c + len(w.runes)
			if w.Guard == NoGuard {
				return w.Result
			}
			ok := check(w.Guard, env)
			env.Cursor = c + len(w.runes)
			if ok {
				return w.Result
			}
		}
		i = w.Substr
	}
	env.Cursor = c
	return 0
}

// FindAmongB is FindAmong for backward tables: entries are matched so that
// they end at the cursor, which is left at the start of the match.
func (env *Env) FindAmongB(t []Among, check GuardFunc) int {
	if len(t) == 0 {
		return 0
	}
	i, j := 0, len(t)
	c, lb := env.Cursor, env.LimitBackward
	commonI, commonJ := 0, 0
	firstKeyInspected := false

	for {
		k := i + (j-i)>>1
		diff := 0
		common := min(commonI, commonJ)
		w := &t[k]
		for i2 := len(w.runes) - 1 - common; i2 >= 0; i2-- {
			if c-common == lb {
				diff = -1
				break
			}
			diff = int(env.current[c-1-common]) - int(w.runes[i2])
			if diff != 0 {
				break
			}
			common++
		}
		if diff < 0 {
			j = k
			commonJ = common
		} else {
			i = k
			commonI = common
		}
		if j-i <= 1 {
			if i > 0 || j == i || firstKeyInspected {
				break
			}
			firstKeyInspected = true
		}
	}

	for i >= 0 {
		w := &t[i]
		if commonI >= len(w.runes) {
			env.Cursor = c - len(w.runes)
			if w.Guard == NoGuard {
				return w.Result
			}
			ok := check(w.Guard, env)
			env.Cursor = c - len(w.runes)
			if ok {
				return w.Result
			}
		}
		i = w.Substr
	}
	env.Cursor = c
	return 0
}
