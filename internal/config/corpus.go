package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvCorpusConfig overrides the corpus config file location when set.
const EnvCorpusConfig = "DISHA_CONFIG"

// Default corpus values used when no config file is present.
const (
	DefaultCorpusBaseURL    = "https://corpus.disha.org"
	DefaultSearchTimeoutSec = 30
	DefaultRateLimitRPS     = 4
)

// SourceKind selects the provider implementation backing a corpus source.
type SourceKind string

const (
	SourceKindAPI      SourceKind = "api"
	SourceKindPlaylist SourceKind = "playlist"
)

// CorpusSource describes one named video source.
type CorpusSource struct {
	Name       string     `yaml:"name"`
	Kind       SourceKind `yaml:"kind"`
	PlaylistID string     `yaml:"playlist_id,omitempty"`
}

// Corpus is the root of the corpus sources configuration, matching disha.yaml.
type Corpus struct {
	BaseURL          string         `yaml:"base_url"`
	SearchTimeoutSec int            `yaml:"search_timeout_seconds"`
	RateLimitRPS     float64        `yaml:"rate_limit_rps"`
	Sources          []CorpusSource `yaml:"sources"`
}

// DefaultCorpus returns the built-in corpus configuration.
func DefaultCorpus() *Corpus {
	return &Corpus{
		BaseURL:          DefaultCorpusBaseURL,
		SearchTimeoutSec: DefaultSearchTimeoutSec,
		RateLimitRPS:     DefaultRateLimitRPS,
	}
}

// LoadCorpus reads the corpus configuration from the DISHA_CONFIG env
// override, then the given path. A missing or unreadable file falls back to
// the built-in defaults; the app must start without a config file.
func LoadCorpus(path string) *Corpus {
	if env := os.Getenv(EnvCorpusConfig); env != "" {
		path = env
	}
	if path == "" {
		path = "disha.yaml"
	}

	c, err := readCorpus(path)
	if err != nil {
		logrus.WithError(err).Debugf("corpus config %s not loaded, using defaults", path)
		return DefaultCorpus()
	}
	return c
}

func readCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultCorpus()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus config: %w", err)
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultCorpusBaseURL
	}
	if c.SearchTimeoutSec <= 0 {
		c.SearchTimeoutSec = DefaultSearchTimeoutSec
	}
	if c.RateLimitRPS <= 0 {
		c.RateLimitRPS = DefaultRateLimitRPS
	}
	return c, nil
}

// SearchTimeout returns the per-invocation search timeout as a duration.
func (c *Corpus) SearchTimeout() time.Duration {
	return time.Duration(c.SearchTimeoutSec) * time.Second
}

// SourceNames returns the configured source names in file order, for the
// source filter options.
func (c *Corpus) SourceNames() []string {
	names := make([]string, 0, len(c.Sources))
	for _, s := range c.Sources {
		names = append(names, s.Name)
	}
	return names
}
