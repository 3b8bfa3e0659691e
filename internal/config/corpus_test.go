package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCorpusMissingFile(t *testing.T) {
	c := LoadCorpus(filepath.Join(t.TempDir(), "absent.yaml"))

	if c.BaseURL != DefaultCorpusBaseURL {
		t.Errorf("Expected default base URL, got %s", c.BaseURL)
	}
	if c.SearchTimeout() != DefaultSearchTimeoutSec*time.Second {
		t.Errorf("Expected default search timeout, got %s", c.SearchTimeout())
	}
	if len(c.Sources) != 0 {
		t.Errorf("Expected no sources by default, got %d", len(c.Sources))
	}
}

func TestLoadCorpusFromFile(t *testing.T) {
	content := `
base_url: https://corpus.example.org
search_timeout_seconds: 10
rate_limit_rps: 2
sources:
  - name: satsang
    kind: api
  - name: archive
    kind: playlist
    playlist_id: PLx123
`
	path := filepath.Join(t.TempDir(), "disha.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	c := LoadCorpus(path)

	if c.BaseURL != "https://corpus.example.org" {
		t.Errorf("Expected configured base URL, got %s", c.BaseURL)
	}
	if c.SearchTimeout() != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %s", c.SearchTimeout())
	}
	if c.RateLimitRPS != 2 {
		t.Errorf("Expected rate limit 2, got %v", c.RateLimitRPS)
	}

	names := c.SourceNames()
	if len(names) != 2 || names[0] != "satsang" || names[1] != "archive" {
		t.Errorf("Expected source names [satsang archive], got %v", names)
	}

	if c.Sources[1].Kind != SourceKindPlaylist || c.Sources[1].PlaylistID != "PLx123" {
		t.Errorf("Expected playlist source with id PLx123, got %+v", c.Sources[1])
	}
}

func TestLoadCorpusMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disha.yaml")
	if err := os.WriteFile(path, []byte("{invalid: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	c := LoadCorpus(path)
	if c.BaseURL != DefaultCorpusBaseURL {
		t.Errorf("Expected defaults on malformed config, got %s", c.BaseURL)
	}
}

func TestLoadCorpusEnvOverride(t *testing.T) {
	content := "base_url: https://override.example.org\n"
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(EnvCorpusConfig, path)

	c := LoadCorpus("ignored.yaml")
	if c.BaseURL != "https://override.example.org" {
		t.Errorf("Expected env override to win, got %s", c.BaseURL)
	}
}
