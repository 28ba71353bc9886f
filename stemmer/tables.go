package stemmer

import "github.com/az-ai-labs/ru-lang-nlp/internal/snowball"

// Suffix tables are sorted by reversed rune sequence and matched backward
// from the end of the word. Substr links an entry to the longest shorter
// entry it ends with.
//
// Entries guarded by guardAfterAOrYa only match when the suffix itself is
// preceded by а or я (читавши -> чита, but not живши).

// perfectiveGerunds: -в, -вши, -вшись after а/я; -ив, -ыв and their longer forms anywhere.
var perfectiveGerunds = snowball.Table([]snowball.Among{
	{Str: "в", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ив", Substr: 0, Result: 2},
	{Str: "ыв", Substr: 0, Result: 2},
	{Str: "вши", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ивши", Substr: 3, Result: 2},
	{Str: "ывши", Substr: 3, Result: 2},
	{Str: "вшись", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ившись", Substr: 6, Result: 2},
	{Str: "ывшись", Substr: 6, Result: 2},
}...)

var adjectives = snowball.Table([]snowball.Among{
	{Str: "ее", Substr: -1, Result: 1},
	{Str: "ие", Substr: -1, Result: 1},
	{Str: "ое", Substr: -1, Result: 1},
	{Str: "ые", Substr: -1, Result: 1},
	{Str: "ими", Substr: -1, Result: 1},
	{Str: "ыми", Substr: -1, Result: 1},
	{Str: "ей", Substr: -1, Result: 1},
	{Str: "ий", Substr: -1, Result: 1},
	{Str: "ой", Substr: -1, Result: 1},
	{Str: "ый", Substr: -1, Result: 1},
	{Str: "ем", Substr: -1, Result: 1},
	{Str: "им", Substr: -1, Result: 1},
	{Str: "ом", Substr: -1, Result: 1},
	{Str: "ым", Substr: -1, Result: 1},
	{Str: "его", Substr: -1, Result: 1},
	{Str: "ого", Substr: -1, Result: 1},
	{Str: "ему", Substr: -1, Result: 1},
	{Str: "ому", Substr: -1, Result: 1},
	{Str: "их", Substr: -1, Result: 1},
	{Str: "ых", Substr: -1, Result: 1},
	{Str: "ею", Substr: -1, Result: 1},
	{Str: "ою", Substr: -1, Result: 1},
	{Str: "ую", Substr: -1, Result: 1},
	{Str: "юю", Substr: -1, Result: 1},
	{Str: "ая", Substr: -1, Result: 1},
	{Str: "яя", Substr: -1, Result: 1},
}...)

// participles are tried after an adjective ending has been removed.
var participles = snowball.Table([]snowball.Among{
	{Str: "ем", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "нн", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "вш", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ивш", Substr: 2, Result: 2},
	{Str: "ывш", Substr: 2, Result: 2},
	{Str: "щ", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ющ", Substr: 5, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ующ", Substr: 6, Result: 2},
}...)

var reflexives = snowball.Table([]snowball.Among{
	{Str: "сь", Substr: -1, Result: 1},
	{Str: "ся", Substr: -1, Result: 1},
}...)

var verbs = snowball.Table([]snowball.Among{
	{Str: "ла", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ила", Substr: 0, Result: 2},
	{Str: "ыла", Substr: 0, Result: 2},
	{Str: "на", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ена", Substr: 3, Result: 2},
	{Str: "ете", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ите", Substr: -1, Result: 2},
	{Str: "йте", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ейте", Substr: 7, Result: 2},
	{Str: "уйте", Substr: 7, Result: 2},
	{Str: "ли", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "или", Substr: 10, Result: 2},
	{Str: "ыли", Substr: 10, Result: 2},
	{Str: "й", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ей", Substr: 13, Result: 2},
	{Str: "уй", Substr: 13, Result: 2},
	{Str: "л", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ил", Substr: 16, Result: 2},
	{Str: "ыл", Substr: 16, Result: 2},
	{Str: "ем", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "им", Substr: -1, Result: 2},
	{Str: "ым", Substr: -1, Result: 2},
	{Str: "н", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ен", Substr: 22, Result: 2},
	{Str: "ло", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ило", Substr: 24, Result: 2},
	{Str: "ыло", Substr: 24, Result: 2},
	{Str: "но", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ено", Substr: 27, Result: 2},
	{Str: "нно", Substr: 27, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ет", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ует", Substr: 30, Result: 2},
	{Str: "ит", Substr: -1, Result: 2},
	{Str: "ыт", Substr: -1, Result: 2},
	{Str: "ют", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "уют", Substr: 34, Result: 2},
	{Str: "ят", Substr: -1, Result: 2},
	{Str: "ны", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ены", Substr: 37, Result: 2},
	{Str: "ть", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ить", Substr: 39, Result: 2},
	{Str: "ыть", Substr: 39, Result: 2},
	{Str: "ешь", Substr: -1, Result: 1, Guard: guardAfterAOrYa},
	{Str: "ишь", Substr: -1, Result: 2},
	{Str: "ю", Substr: -1, Result: 2},
	{Str: "ую", Substr: 44, Result: 2},
}...)

var nouns = snowball.Table([]snowball.Among{
	{Str: "а", Substr: -1, Result: 1},
	{Str: "ев", Substr: -1, Result: 1},
	{Str: "ов", Substr: -1, Result: 1},
	{Str: "е", Substr: -1, Result: 1},
	{Str: "ие", Substr: 3, Result: 1},
	{Str: "ье", Substr: 3, Result: 1},
	{Str: "и", Substr: -1, Result: 1},
	{Str: "еи", Substr: 6, Result: 1},
	{Str: "ии", Substr: 6, Result: 1},
	{Str: "ами", Substr: 6, Result: 1},
	{Str: "ями", Substr: 6, Result: 1},
	{Str: "иями", Substr: 10, Result: 1},
	{Str: "й", Substr: -1, Result: 1},
	{Str: "ей", Substr: 12, Result: 1},
	{Str: "ией", Substr: 13, Result: 1},
	{Str: "ий", Substr: 12, Result: 1},
	{Str: "ой", Substr: 12, Result: 1},
	{Str: "ам", Substr: -1, Result: 1},
	{Str: "ем", Substr: -1, Result: 1},
	{Str: "ием", Substr: 18, Result: 1},
	{Str: "ом", Substr: -1, Result: 1},
	{Str: "ям", Substr: -1, Result: 1},
	{Str: "иям", Substr: 21, Result: 1},
	{Str: "о", Substr: -1, Result: 1},
	{Str: "у", Substr: -1, Result: 1},
	{Str: "ах", Substr: -1, Result: 1},
	{Str: "ях", Substr: -1, Result: 1},
	{Str: "иях", Substr: 26, Result: 1},
	{Str: "ы", Substr: -1, Result: 1},
	{Str: "ь", Substr: -1, Result: 1},
	{Str: "ю", Substr: -1, Result: 1},
	{Str: "ию", Substr: 30, Result: 1},
	{Str: "ью", Substr: 30, Result: 1},
	{Str: "я", Substr: -1, Result: 1},
	{Str: "ия", Substr: 33, Result: 1},
	{Str: "ья", Substr: 33, Result: 1},
}...)

var derivationals = snowball.Table([]snowball.Among{
	{Str: "ост", Substr: -1, Result: 1},
	{Str: "ость", Substr: -1, Result: 1},
}...)

// Tidy-up actions.
const (
	tidySuperlative = 1 // drop -ейш(е), then reduce нн to н
	tidyDoubleN     = 2 // reduce нн to н
	tidySoftSign    = 3 // drop a final ь
)

var tidyUps = snowball.Table([]snowball.Among{
	{Str: "ейше", Substr: -1, Result: tidySuperlative},
	{Str: "н", Substr: -1, Result: tidyDoubleN},
	{Str: "ейш", Substr: -1, Result: tidySuperlative},
	{Str: "ь", Substr: -1, Result: tidySoftSign},
}...)

// vowels is the Russian vowel class а е и о у ы э ю я over а..я.
var vowels = snowball.Grouping{Min: 'а', Max: 'я', Bits: []byte{33, 65, 8, 232}}
