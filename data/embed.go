// Package data embeds the static word lists shipped with the module.
package data

import _ "embed"

// RussianStopwords is the Snowball Russian stopword list, one word per line.
//
//go:embed stopwords_ru.txt
var RussianStopwords string
