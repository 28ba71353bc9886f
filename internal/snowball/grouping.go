package snowball

// Grouping is a character class over the contiguous range [Min, Max],
// stored as a little-endian bit set: rune Min+i is a member when bit i%8
// of Bits[i/8] is set.
type Grouping struct {
	Min  rune
	Max  rune
	Bits []byte
}

// Contains reports whether r is a member of g.
func (g Grouping) Contains(r rune) bool {
	if r < g.Min || r > g.Max {
		return false
	}
	i := r - g.Min
	if int(i>>3) >= len(g.Bits) {
		return false
	}
	return g.Bits[i>>3]&(1<<(i&7)) != 0
}

// InGrouping advances the cursor over one member of g.
func (env *Env) InGrouping(g Grouping) bool {
	if env.Cursor >= env.Limit {
		return false
	}
	if !g.Contains(env.current[env.Cursor]) {
		return false
	}
	env.Cursor++
	return true
}

// InGroupingB moves the cursor back over one member of g.
func (env *Env) InGroupingB(g Grouping) bool {
	if env.Cursor <= env.LimitBackward {
		return false
	}
	if !g.Contains(env.current[env.Cursor-1]) {
		return false
	}
	env.Cursor--
	return true
}

// OutGrouping advances the cursor over one rune that is not in g,
// including runes outside g's range.
func (env *Env) OutGrouping(g Grouping) bool {
	if env.Cursor >= env.Limit {
		return false
	}
	if g.Contains(env.current[env.Cursor]) {
		return false
	}
	env.Cursor++
	return true
}

// OutGroupingB moves the cursor back over one rune that is not in g.
func (env *Env) OutGroupingB(g Grouping) bool {
	if env.Cursor <= env.LimitBackward {
		return false
	}
	if g.Contains(env.current[env.Cursor-1]) {
		return false
	}
	env.Cursor--
	return true
}

// GoPastInGrouping moves forward until it has stepped over a member of g.
// On failure the cursor is left at Limit.
func (env *Env) GoPastInGrouping(g Grouping) bool {
	for {
		if env.InGrouping(g) {
			return true
		}
		if env.Cursor >= env.Limit {
			return false
		}
		env.Cursor++
	}
}

// GoPastOutGrouping moves forward until it has stepped over a non-member of g.
// On failure the cursor is left at Limit.
func (env *Env) GoPastOutGrouping(g Grouping) bool {
	for {
		if env.OutGrouping(g) {
			return true
		}
		if env.Cursor >= env.Limit {
			return false
		}
		env.Cursor++
	}
}
