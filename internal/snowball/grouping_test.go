package snowball

import "testing"

// cyrillicVowels mirrors the Russian vowel class: а е и о у ы э ю я.
var cyrillicVowels = Grouping{Min: 'а', Max: 'я', Bits: []byte{33, 65, 8, 232}}

func TestGroupingContains(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'а', true}, {'е', true}, {'и', true}, {'о', true}, {'у', true},
		{'ы', true}, {'э', true}, {'ю', true}, {'я', true},
		{'б', false}, {'й', false}, {'ь', false}, {'ъ', false}, {'щ', false},
		{'ё', false}, // outside the range, folded to е before matching
		{'a', false}, {'А', false}, {0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := cyrillicVowels.Contains(tt.r); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestGroupingShortBits(t *testing.T) {
	g := Grouping{Min: 'a', Max: 'z', Bits: []byte{0xff}}
	if !g.Contains('c') {
		t.Error("Contains('c') = false, want true")
	}
	if g.Contains('y') {
		t.Error("Contains('y') = true for a rune past the bit set")
	}
}

func TestInOutGrouping(t *testing.T) {
	env := NewEnv("мама")

	if env.InGrouping(cyrillicVowels) {
		t.Error("InGrouping at 'м' = true")
	}
	if env.Cursor != 0 {
		t.Errorf("cursor moved to %d on failure", env.Cursor)
	}
	if !env.OutGrouping(cyrillicVowels) || env.Cursor != 1 {
		t.Errorf("OutGrouping at 'м' failed, cursor %d", env.Cursor)
	}
	if !env.InGrouping(cyrillicVowels) || env.Cursor != 2 {
		t.Errorf("InGrouping at 'а' failed, cursor %d", env.Cursor)
	}

	env.Cursor = env.Limit
	if env.InGrouping(cyrillicVowels) || env.OutGrouping(cyrillicVowels) {
		t.Error("forward grouping test succeeded at limit")
	}
	if !env.InGroupingB(cyrillicVowels) || env.Cursor != 3 {
		t.Errorf("InGroupingB at 'а' failed, cursor %d", env.Cursor)
	}
	if env.InGroupingB(cyrillicVowels) {
		t.Error("InGroupingB at 'м' = true")
	}
	if !env.OutGroupingB(cyrillicVowels) || env.Cursor != 2 {
		t.Errorf("OutGroupingB at 'м' failed, cursor %d", env.Cursor)
	}

	env.LimitBackward = 2
	if env.InGroupingB(cyrillicVowels) || env.OutGroupingB(cyrillicVowels) {
		t.Error("backward grouping test crossed LimitBackward")
	}
}

func TestOutGroupingOutsideRange(t *testing.T) {
	env := NewEnv("x1")
	if !env.OutGrouping(cyrillicVowels) || !env.OutGrouping(cyrillicVowels) {
		t.Error("OutGrouping rejected runes outside the grouping range")
	}
	if env.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", env.Cursor)
	}
}

func TestGoPast(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		in     bool
		want   bool
		cursor int
	}{
		{"in: first vowel", "стол", true, true, 3},
		{"in: leading vowel", "окно", true, true, 1},
		{"in: no vowel", "крст", true, false, 4},
		{"out: first consonant", "оазис", false, true, 3},
		{"out: all vowels", "ауэ", false, false, 3},
		{"in: empty", "", true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv(tt.word)
			var got bool
			if tt.in {
				got = env.GoPastInGrouping(cyrillicVowels)
			} else {
				got = env.GoPastOutGrouping(cyrillicVowels)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if env.Cursor != tt.cursor {
				t.Errorf("cursor = %d, want %d", env.Cursor, tt.cursor)
			}
		})
	}
}
