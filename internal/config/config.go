// Package config loads the rustem command configuration from YAML.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the rustem configuration file.
type Config struct {
	// Workers is the number of goroutines stemming in parallel.
	Workers int `yaml:"workers"`
	// Normalize lowercases and NFC-composes tokens before stemming.
	Normalize bool `yaml:"normalize"`
	// KeepStopwords passes stopwords through unstemmed.
	KeepStopwords bool `yaml:"keep_stopwords"`

	Cache struct {
		Enabled    bool  `yaml:"enabled"`
		MaxEntries int64 `yaml:"max_entries"`
	} `yaml:"cache"`

	Lexicon struct {
		Path string `yaml:"path"`
	} `yaml:"lexicon"`

	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
}

// Default returns a usable configuration.
func Default() *Config {
	cfg := &Config{
		Workers: runtime.GOMAXPROCS(0),
	}
	cfg.Cache.MaxEntries = 1 << 16
	cfg.Lexicon.Path = filepath.Join("data", "lexicon.db")
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	if err := cfg.decode(raw); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

func (c *Config) decode(raw []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(err, "decode")
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Cache.MaxEntries < 0 {
		return errors.Errorf("cache.max_entries must not be negative, got %d", c.Cache.MaxEntries)
	}
	if c.Cache.Enabled && c.Cache.MaxEntries == 0 {
		return errors.New("cache.max_entries must be positive when the cache is enabled")
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}
