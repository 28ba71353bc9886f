package stemmer

// markRegions sets pV to the position after the first vowel and p2 to the
// position after the first non-vowel that follows a vowel, a non-vowel and
// another vowel. A region that cannot be found is left at the end of the
// word. The cursor is not moved.
func (s *russian) markRegions() {
	env := &s.env
	s.pV = env.Limit
	s.p2 = env.Limit
	c := env.Cursor
	if env.GoPastInGrouping(vowels) {
		s.pV = env.Cursor
		if env.GoPastOutGrouping(vowels) &&
			env.GoPastInGrouping(vowels) &&
			env.GoPastOutGrouping(vowels) {
			s.p2 = env.Cursor
		}
	}
	env.Cursor = c
}

// inR2 reports whether the cursor lies in R2.
func (s *russian) inR2() bool {
	return s.p2 <= s.env.Cursor
}
