// Command rustem stems Russian word lists with the stemmer package.
//
// Usage:
//
//	rustem stem [files...]
//	rustem export --lexicon path [files...]
//	rustem lookup --lexicon path words...
//	rustem check [files...]
//	rustem stopwords
//
// Input is one token per line, read from the named files or stdin.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	a := &app{}
	if err := a.rootCmd().Execute(); err != nil {
		if a.log != nil {
			a.log.Error("rustem failed", zap.Error(err))
			_ = a.log.Sync()
		} else {
			fmt.Fprintf(os.Stderr, "rustem: %v\n", err)
		}
		os.Exit(1)
	}
}
