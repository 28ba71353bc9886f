package stemmer

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"
)

// Cached memoizes Stem for hot tokens. Results are always identical to Stem;
// a miss or an admission rejected by the cache policy only costs a
// recomputation.
//
// Cached is safe for concurrent use.
type Cached struct {
	cache *ristretto.Cache[string, string]
}

// NewCached returns a cache holding at most maxEntries stems.
func NewCached(maxEntries int64) (*Cached, error) {
	if maxEntries <= 0 {
		return nil, errors.Errorf("stemmer: cache size must be positive, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		// Ten counters per entry is the ratio the admission policy is tuned for.
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
		Metrics:     true,
		// Cost counts entries, not bytes.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "stemmer: create cache")
	}
	return &Cached{cache: cache}, nil
}

// Stem returns the stem of word, from the cache when possible.
func (c *Cached) Stem(word string) string {
	if stem, ok := c.cache.Get(word); ok {
		return stem
	}
	stem := Stem(word)
	c.cache.Set(word, stem, 1)
	return stem
}

// Stems stems a slice of words through the cache.
// Returns nil if the input is nil.
func (c *Cached) Stems(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = c.Stem(w)
	}
	return out
}

// Wait blocks until pending writes are visible to Stem.
func (c *Cached) Wait() {
	c.cache.Wait()
}

// HitRatio returns the fraction of lookups served from the cache.
func (c *Cached) HitRatio() float64 {
	return c.cache.Metrics.Ratio()
}

// Close releases the cache. The Cached must not be used afterwards.
func (c *Cached) Close() {
	c.cache.Close()
}
