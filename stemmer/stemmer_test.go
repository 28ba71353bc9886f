package stemmer

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/az-ai-labs/ru-lang-nlp/internal/snowball"
)

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		// Perfective gerund
		{"gerund вшись after а", "прочитавшись", "прочита"},
		{"gerund вшись after я", "стоявшись", "стоя"},
		{"gerund ывшись", "вскрывшись", "вскрывш"},
		{"gerund ившись", "знакомившись", "знаком"},
		{"gerund вшись after у not removed", "прыгнувшись", "прыгнувш"},
		{"gerund вши after а", "выбежавши", "выбежа"},
		{"gerund вши after и is kept", "живши", "живш"},

		// Adjectival
		{"adjective ого", "большого", "больш"},
		{"adjective ими", "маленькими", "маленьк"},
		{"participle ющ after а", "читающая", "чита"},
		{"participle вш after а", "делавшими", "дела"},
		{"participle ующ", "играющими", "игра"},
		{"participle нн after а", "сделанный", "сдела"},
		{"participle after consonant is kept", "бегущий", "бегущ"},

		// Reflexive and verb
		{"reflexive only", "стрижется", "стрижет"},
		{"reflexive only ся", "берегся", "берег"},
		{"reflexive then verb", "умывался", "умыва"},
		{"verb ет after у", "борется", "борет"},

		// Noun
		{"noun ья", "деревья", "дерев"},
		{"noun ии", "станции", "станц"},
		{"noun ье", "счастье", "счаст"},
		{"noun а", "дома", "дом"},

		// Derivational
		{"derivational in R2", "откровенность", "откровен"},
		{"derivational before R2", "нежность", "нежност"},
		{"derivational before R2 again", "гордость", "гордост"},

		// Tidy up
		{"superlative ейш", "красивейшими", "красив"},
		{"superlative then нн", "быстрейшего", "быстр"},
		{"double н", "длиннее", "длин"},
		{"soft sign", "мысль", "мысл"},

		// ё
		{"ё initial", "ёлка", "елк"},
		{"ё medial", "зелёный", "зелен"},
		{"ё only change", "всё", "все"},
		{"ё twice", "ёё", "е"},

		// Untouched
		{"no vowel", "крст", "крст"},
		{"short", "раз", "раз"},
		{"single vowel", "а", "а"},
		{"latin", "kot", "kot"},
		{"uppercase", "КОТ", "КОТ"},
		{"mixed case", "Кот", "Кот"},
		{"digits", "2024", "2024"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stem(tt.word); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestStemInvalidUTF8(t *testing.T) {
	tests := []string{
		"\xff",
		"дом\xff",
		"\xd0",
		"чита\xe0\x80ющая",
	}
	for _, word := range tests {
		if got := Stem(word); got != word {
			t.Errorf("Stem(%q) = %q, want input unchanged", word, got)
		}
	}
}

func TestStems(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, []string{}},
		{"words", []string{"большого", "дома", "", "kot"}, []string{"больш", "дом", "", "kot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stems(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Stems(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if (got == nil) != (tt.input == nil) {
				t.Errorf("Stems(%v) nil-ness = %v, want %v", tt.input, got == nil, tt.input == nil)
			}
		})
	}
}

func TestMarkRegions(t *testing.T) {
	tests := []struct {
		word   string
		pV, p2 int
	}{
		{"нежность", 2, 6},
		{"откровенность", 1, 6},
		{"оазис", 1, 5},
		{"крст", 4, 4},
		{"раз", 2, 3},
		{"", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			s := new(russian)
			s.env.SetCurrent(tt.word)
			s.markRegions()
			if s.pV != tt.pV || s.p2 != tt.p2 {
				t.Errorf("markRegions(%q): pV=%d p2=%d, want pV=%d p2=%d", tt.word, s.pV, s.p2, tt.pV, tt.p2)
			}
			if s.env.Cursor != 0 {
				t.Errorf("cursor moved to %d", s.env.Cursor)
			}
		})
	}
}

// runState stems word on a fresh state, bypassing the fast path.
func runState(word string) *russian {
	s := new(russian)
	s.env.SetCurrent(word)
	s.stem()
	return s
}

func TestStemInvariants(t *testing.T) {
	for _, e := range loadGolden(t, goldenFiles[0]) {
		s := runState(e.Word)
		if err := s.env.Check(); err != nil {
			t.Errorf("%q: %v", e.Word, err)
		}
		if s.env.Limit != s.env.Len() {
			t.Errorf("%q: limit %d, buffer length %d", e.Word, s.env.Limit, s.env.Len())
		}
		if s.env.Cursor != 0 || s.env.LimitBackward != 0 {
			t.Errorf("%q: cursor=%d limit_backward=%d after stem, want 0 0",
				e.Word, s.env.Cursor, s.env.LimitBackward)
		}
	}
}

func TestStemLengthBound(t *testing.T) {
	for _, file := range goldenFiles {
		for _, e := range loadGolden(t, file) {
			got := Stem(e.Word)
			if utf8.RuneCountInString(got) > utf8.RuneCountInString(e.Word) || len(got) > len(e.Word) {
				t.Errorf("Stem(%q) = %q is longer than its input", e.Word, got)
			}
		}
	}
}

func TestStemDeterministic(t *testing.T) {
	words := []string{"прочитавшись", "читающая", "откровенность", "ёлка", "быстрейшего"}
	for _, w := range words {
		first := Stem(w)
		for range 3 {
			if got := Stem(w); got != first {
				t.Errorf("Stem(%q) = %q, then %q", w, first, got)
			}
		}
		if got := runState(w).env.Current(); got != first {
			t.Errorf("fresh state stems %q to %q, pooled state to %q", w, got, first)
		}
	}
}

func TestFastPathMatchesFullRun(t *testing.T) {
	words := []string{"kot", "КОТ", "2024", "ДОМА", "hello-world", "Ё", "ЁЛКА"}
	for _, w := range words {
		if hasRussianLetter(w) {
			t.Fatalf("hasRussianLetter(%q) = true", w)
		}
		if got := runState(w).env.Current(); got != w {
			t.Errorf("full run changes %q to %q", w, got)
		}
	}
}

// longestSuffix is a brute-force reference for FindAmongB: the result of
// the longest entry of t that ends word and whose guard holds.
func longestSuffix(t []snowball.Among, word []rune) int {
	best, bestLen := 0, -1
	for _, e := range t {
		r := []rune(e.Str)
		n := len(r)
		if n > len(word) || n <= bestLen || string(word[len(word)-n:]) != e.Str {
			continue
		}
		if e.Guard == guardAfterAOrYa {
			if len(word) == n {
				continue
			}
			if p := word[len(word)-n-1]; p != 'а' && p != 'я' {
				continue
			}
		}
		best, bestLen = e.Result, n
	}
	return best
}

func TestSuffixTablesMatchLongestSuffix(t *testing.T) {
	tables := map[string][]snowball.Among{
		"perfectiveGerunds": perfectiveGerunds,
		"adjectives":        adjectives,
		"participles":       participles,
		"reflexives":        reflexives,
		"verbs":             verbs,
		"nouns":             nouns,
		"derivationals":     derivationals,
		"tidyUps":           tidyUps,
	}
	prefixes := []string{"", "а", "я", "о", "к", "ка", "ян", "ин", "ию"}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			for _, p := range prefixes {
				for _, e := range table {
					for _, tail := range []string{"", "ь", "а"} {
						word := []rune(p + e.Str + tail)
						env := snowball.NewEnv(string(word))
						env.Cursor = env.Limit
						got := env.FindAmongB(table, checkGuard)
						if want := longestSuffix(table, word); got != want {
							t.Errorf("FindAmongB(%q) = %d, want %d", string(word), got, want)
						}
					}
				}
			}
		})
	}
}

func TestGuardedEntries(t *testing.T) {
	for _, table := range [][]snowball.Among{perfectiveGerunds, participles, verbs} {
		for _, e := range table {
			if (e.Guard != snowball.NoGuard) != (e.Result == 1) {
				t.Errorf("entry %q: guard %d with result %d", e.Str, e.Guard, e.Result)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Golden tests
// ---------------------------------------------------------------------------

type goldenEntry struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

var updateGolden = flag.Bool("update", false, "update golden test files")

var goldenFiles = []string{
	"../data/golden/stemmer.json",
	"../data/golden/stemmer_suffixes.json",
}

func loadGolden(t *testing.T, path string) []goldenEntry {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("golden file not found: %v", err)
	}
	var entries []goldenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("parse golden file %s: %v", path, err)
	}
	return entries
}

func TestGolden(t *testing.T) {
	for _, path := range goldenFiles {
		entries := loadGolden(t, path)

		if *updateGolden {
			for i := range entries {
				entries[i].Stem = Stem(entries[i].Word)
			}
			out, _ := json.MarshalIndent(entries, "", "  ")
			if err := os.WriteFile(path, out, 0644); err != nil {
				t.Fatalf("write golden file: %v", err)
			}
			t.Logf("golden file %s updated", path)
			continue
		}

		name := strings.TrimSuffix(path[strings.LastIndex(path, "/")+1:], ".json")
		t.Run(name, func(t *testing.T) {
			for _, e := range entries {
				if got := Stem(e.Word); got != e.Stem {
					t.Errorf("Stem(%q) = %q, want %q", e.Word, got, e.Stem)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Fuzz tests
// ---------------------------------------------------------------------------

func FuzzStem(f *testing.F) {
	f.Add("прочитавшись")
	f.Add("читающая")
	f.Add("ёлка")
	f.Add("")
	f.Add("а")
	f.Add("kot")
	f.Add("дом\xff")
	f.Add("ейшенн")
	f.Fuzz(func(t *testing.T, word string) {
		got := Stem(word)
		if len(got) > len(word) {
			t.Errorf("Stem(%q) = %q grew the input", word, got)
		}
		if utf8.ValidString(word) && !utf8.ValidString(got) {
			t.Errorf("Stem(%q) = %q is not valid UTF-8", word, got)
		}
		if again := Stem(word); again != got {
			t.Errorf("Stem(%q) not deterministic: %q then %q", word, got, again)
		}
		if utf8.ValidString(word) {
			if err := runState(word).env.Check(); err != nil {
				t.Errorf("Stem(%q): %v", word, err)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkStem(b *testing.B) {
	for b.Loop() {
		Stem("прочитавшись")
	}
}

func BenchmarkStemShort(b *testing.B) {
	for b.Loop() {
		Stem("дома")
	}
}

func BenchmarkStemFastPath(b *testing.B) {
	for b.Loop() {
		Stem("kubernetes")
	}
}

func BenchmarkStems(b *testing.B) {
	words := []string{"красивейшими", "читающая", "умывался", "откровенность", "деревья"}
	for b.Loop() {
		Stems(words)
	}
}
