package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/ru-lang-nlp/internal/config"
	"github.com/az-ai-labs/ru-lang-nlp/normalize"
	"github.com/az-ai-labs/ru-lang-nlp/stemmer"
	"github.com/az-ai-labs/ru-lang-nlp/stopwords"
)

const (
	maxLineBytes = 1 << 20
	chunkWords   = 512 // words per worker task
)

// pipelineFlags are the stemming options shared by stem and export.
type pipelineFlags struct {
	normalize     bool
	keepStopwords bool
	cache         bool
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.normalize, "normalize", false, "lowercase and NFC-compose tokens before stemming")
	cmd.Flags().BoolVar(&f.keepStopwords, "keep-stopwords", false, "pass stopwords through unstemmed")
	cmd.Flags().BoolVar(&f.cache, "cache", false, "memoize stems of repeated tokens")
}

// apply overrides cfg with the flags set on cmd.
func (f *pipelineFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("normalize") {
		cfg.Normalize = f.normalize
	}
	if flags.Changed("keep-stopwords") {
		cfg.KeepStopwords = f.keepStopwords
	}
	if flags.Changed("cache") {
		cfg.Cache.Enabled = f.cache
	}
}

type pipeline struct {
	normalize     bool
	keepStopwords bool
	cache         *stemmer.Cached
	log           *zap.Logger
}

func newPipeline(cfg *config.Config, log *zap.Logger) (*pipeline, error) {
	p := &pipeline{
		normalize:     cfg.Normalize,
		keepStopwords: cfg.KeepStopwords,
		log:           log,
	}
	if cfg.Cache.Enabled {
		c, err := stemmer.NewCached(cfg.Cache.MaxEntries)
		if err != nil {
			return nil, err
		}
		p.cache = c
	}
	return p, nil
}

func (p *pipeline) stem(word string) string {
	if p.normalize {
		word = normalize.Word(word)
	}
	if p.keepStopwords && stopwords.Contains(word) {
		return word
	}
	if p.cache != nil {
		return p.cache.Stem(word)
	}
	return stemmer.Stem(word)
}

func (p *pipeline) close() {
	if p.cache == nil {
		return
	}
	p.log.Debug("stem cache", zap.Float64("hit_ratio", p.cache.HitRatio()))
	p.cache.Close()
}

// mapOrdered applies fn to every word on up to workers goroutines. The
// result at index i belongs to words[i].
func mapOrdered(ctx context.Context, words []string, workers int, fn func(string) (string, error)) ([]string, error) {
	out := make([]string, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(words); start += chunkWords {
		if ctx.Err() != nil {
			break
		}
		end := min(start+chunkWords, len(words))
		g.Go(func() error {
			for i := start; i < end; i++ {
				s, err := fn(words[i])
				if err != nil {
					return errors.Wrapf(err, "word %q", words[i])
				}
				out[i] = s
			}
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *pipeline) stemAll(ctx context.Context, words []string, workers int) ([]string, error) {
	return mapOrdered(ctx, words, workers, func(w string) (string, error) {
		return p.stem(w), nil
	})
}

// readTokens returns the non-blank lines of the named files, or of stdin
// when no file is named.
func readTokens(cmd *cobra.Command, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return scanTokens(cmd.InOrStdin(), nil)
	}
	var words []string
	for _, path := range paths {
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		words, err = scanTokens(f, words)
		_ = f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
	}
	return words, nil
}

func scanTokens(r io.Reader, words []string) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	return words, nil
}
