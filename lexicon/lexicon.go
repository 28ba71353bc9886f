// Package lexicon stores word -> stem pairs produced by batch stemming in a
// bbolt file, together with the reverse index stem -> words (the
// conflation class of the stem).
//
// The file layout is two top-level buckets:
//
//	stems    word -> stem
//	classes  stem -> nested bucket of words (empty values)
//
// A Store is safe for concurrent use.
package lexicon

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	stemsBucket   = []byte("stems")
	classesBucket = []byte("classes")
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("lexicon: store is closed")

// Entry is one stored pair.
type Entry struct {
	Word string
	Stem string
}

// Store is a bbolt-backed lexicon.
type Store struct {
	path string
	log  *zap.Logger

	mu sync.RWMutex
	db *bolt.DB
}

// Open opens or creates the lexicon file at path. A nil logger disables
// logging.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "lexicon: create directory %s", dir)
		}
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "lexicon: open %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{stemsBucket, classesBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return errors.Wrapf(err, "create bucket %s", name)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "lexicon: init %s", path)
	}

	s := &Store{path: path, log: logger.With(zap.String("lexicon", path)), db: db}
	n, err := s.Len()
	if err != nil {
		db.Close()
		return nil, err
	}
	s.log.Info("lexicon opened", zap.Int("entries", n))
	return s, nil
}

func validKey(kind, k string) error {
	if k == "" {
		return errors.Errorf("lexicon: empty %s", kind)
	}
	if len(k) > bolt.MaxKeySize {
		return errors.Errorf("lexicon: %s is %d bytes, limit %d", kind, len(k), bolt.MaxKeySize)
	}
	return nil
}

// Put stores the stem of word, replacing any previous stem.
func (s *Store) Put(word, stem string) error {
	return s.PutBatch([]Entry{{Word: word, Stem: stem}})
}

// PutBatch stores entries in one transaction. Nothing is written when an
// entry is invalid.
func (s *Store) PutBatch(entries []Entry) error {
	for _, e := range entries {
		if err := validKey("word", e.Word); err != nil {
			return err
		}
		if err := validKey("stem", e.Stem); err != nil {
			return errors.Wrapf(err, "word %q", e.Word)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrClosed
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		stems := tx.Bucket(stemsBucket)
		classes := tx.Bucket(classesBucket)
		for _, e := range entries {
			word := []byte(e.Word)
			if old := stems.Get(word); old != nil {
				if string(old) == e.Stem {
					continue
				}
				if err := removeFromClass(classes, old, word); err != nil {
					return err
				}
			}
			if err := stems.Put(word, []byte(e.Stem)); err != nil {
				return errors.Wrapf(err, "put %q", e.Word)
			}
			class, err := classes.CreateBucketIfNotExists([]byte(e.Stem))
			if err != nil {
				return errors.Wrapf(err, "class %q", e.Stem)
			}
			if err := class.Put(word, []byte{}); err != nil {
				return errors.Wrapf(err, "class %q: put %q", e.Stem, e.Word)
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "lexicon: write batch")
	}
	s.log.Debug("batch stored", zap.Int("entries", len(entries)))
	return nil
}

// removeFromClass drops word from the class of stem and deletes the class
// once it is empty.
func removeFromClass(classes *bolt.Bucket, stem, word []byte) error {
	class := classes.Bucket(stem)
	if class == nil {
		return nil
	}
	if err := class.Delete(word); err != nil {
		return errors.Wrapf(err, "class %q: delete %q", stem, word)
	}
	if k, _ := class.Cursor().First(); k == nil {
		// stem points into bbolt's page; copy before it is used as a key again.
		if err := classes.DeleteBucket(append([]byte(nil), stem...)); err != nil {
			return errors.Wrapf(err, "delete class %q", stem)
		}
	}
	return nil
}

// Get returns the stored stem of word.
func (s *Store) Get(word string) (string, bool, error) {
	var (
		stem string
		ok   bool
	)
	err := s.view(func(tx *bolt.Tx) error {
		if v := tx.Bucket(stemsBucket).Get([]byte(word)); v != nil {
			stem, ok = string(v), true
		}
		return nil
	})
	return stem, ok, err
}

// Words returns every stored word with the given stem in byte order, or
// nil when the stem is unknown.
func (s *Store) Words(stem string) ([]string, error) {
	var words []string
	err := s.view(func(tx *bolt.Tx) error {
		class := tx.Bucket(classesBucket).Bucket([]byte(stem))
		if class == nil {
			return nil
		}
		return class.ForEach(func(k, _ []byte) error {
			words = append(words, string(k))
			return nil
		})
	})
	return words, err
}

// Len returns the number of stored words.
func (s *Store) Len() (int, error) {
	var n int
	err := s.view(func(tx *bolt.Tx) error {
		n = tx.Bucket(stemsBucket).Stats().KeyN
		return nil
	})
	return n, err
}

// ForEach calls fn for every stored pair in word byte order. Iteration stops
// at the first error, which is returned.
func (s *Store) ForEach(fn func(word, stem string) error) error {
	return s.view(func(tx *bolt.Tx) error {
		return tx.Bucket(stemsBucket).ForEach(func(k, v []byte) error {
			return fn(string(k), string(v))
		})
	})
}

// Clear removes all data from the store.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{stemsBucket, classesBucket} {
			if err := tx.DeleteBucket(name); err != nil {
				return errors.Wrapf(err, "delete bucket %s", name)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return errors.Wrapf(err, "create bucket %s", name)
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "lexicon: clear")
	}
	s.log.Info("lexicon cleared")
	return nil
}

// Close closes the underlying file. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return errors.Wrap(err, "lexicon: close")
	}
	return nil
}

func (s *Store) view(fn func(tx *bolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrClosed
	}
	return s.db.View(fn)
}
