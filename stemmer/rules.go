package stemmer

import "github.com/az-ai-labs/ru-lang-nlp/internal/snowball"

// guardAfterAOrYa requires the matched suffix to follow а or я.
const guardAfterAOrYa snowball.Guard = 1

func checkGuard(g snowball.Guard, env *snowball.Env) bool {
	switch g {
	case guardAfterAOrYa:
		return env.EqSB("а") || env.EqSB("я")
	default:
		return false
	}
}

// deleteSuffix removes the longest entry of t that ends at the cursor and
// returns its result tag, or 0 when nothing was removed.
func (s *russian) deleteSuffix(t []snowball.Among) int {
	env := &s.env
	env.Ket = env.Cursor
	tag := env.FindAmongB(t, checkGuard)
	if tag == 0 {
		return 0
	}
	env.Bra = env.Cursor
	if !env.SliceDel() {
		return 0
	}
	return tag
}

func (s *russian) perfectiveGerund() bool {
	return s.deleteSuffix(perfectiveGerunds) != 0
}

func (s *russian) adjective() bool {
	return s.deleteSuffix(adjectives) != 0
}

// adjectival removes an adjective ending and then, optionally, a participle
// suffix in front of it.
func (s *russian) adjectival() bool {
	if !s.adjective() {
		return false
	}
	env := &s.env
	v := env.Limit - env.Cursor
	if s.deleteSuffix(participles) == 0 {
		env.Cursor = env.Limit - v
	}
	return true
}

func (s *russian) reflexive() bool {
	return s.deleteSuffix(reflexives) != 0
}

func (s *russian) verb() bool {
	return s.deleteSuffix(verbs) != 0
}

func (s *russian) noun() bool {
	return s.deleteSuffix(nouns) != 0
}

// derivational removes -ост/-ость, but only when the suffix starts in R2.
func (s *russian) derivational() bool {
	env := &s.env
	env.Ket = env.Cursor
	if env.FindAmongB(derivationals, checkGuard) == 0 {
		return false
	}
	env.Bra = env.Cursor
	if !s.inR2() {
		return false
	}
	return env.SliceDel()
}

func (s *russian) tidyUp() bool {
	env := &s.env
	env.Ket = env.Cursor
	tag := env.FindAmongB(tidyUps, checkGuard)
	if tag == 0 {
		return false
	}
	env.Bra = env.Cursor
	switch tag {
	case tidySuperlative:
		if !env.SliceDel() {
			return false
		}
		env.Ket = env.Cursor
		if !env.EqSB("н") {
			return false
		}
		env.Bra = env.Cursor
		if !env.EqSB("н") {
			return false
		}
		return env.SliceDel()
	case tidyDoubleN:
		if !env.EqSB("н") {
			return false
		}
		return env.SliceDel()
	case tidySoftSign:
		return env.SliceDel()
	}
	return true
}
