package platform

import (
	"context"
	"testing"

	"github.com/dishalabs/disha/internal/config"
	"github.com/dishalabs/disha/internal/model"
)

// namedProvider returns a single result carrying its own name, so tests can
// see which provider served the call.
type namedProvider struct {
	name string
}

func (p *namedProvider) Search(_ context.Context, _ model.FilterSet) ([]model.VideoResult, error) {
	return []model.VideoResult{{ID: p.name, Source: p.name}}, nil
}

func TestProviderMuxRouting(t *testing.T) {
	mux := NewProviderMux(&namedProvider{name: "default"})
	mux.Register("archive", &namedProvider{name: "archive"})

	// Known source routes to its provider
	results, err := mux.Search(context.Background(), model.FilterSet{Source: "archive"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 1 || results[0].ID != "archive" {
		t.Errorf("Expected the archive provider to serve the call, got %+v", results)
	}

	// Empty source falls back to the default provider
	results, err = mux.Search(context.Background(), model.DefaultFilterSet())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 1 || results[0].ID != "default" {
		t.Errorf("Expected the default provider to serve the call, got %+v", results)
	}

	// Unknown source also falls back
	results, err = mux.Search(context.Background(), model.FilterSet{Source: "unknown"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 1 || results[0].ID != "default" {
		t.Errorf("Expected the default provider for unknown sources, got %+v", results)
	}
}

func TestBuildProvider(t *testing.T) {
	corpus := &config.Corpus{
		BaseURL:      "https://corpus.example.org",
		RateLimitRPS: 1,
		Sources: []config.CorpusSource{
			{Name: "satsang", Kind: config.SourceKindAPI},
			{Name: "archive", Kind: config.SourceKindPlaylist, PlaylistID: "PLx123"},
		},
	}

	provider := BuildProvider(corpus)

	mux, ok := provider.(*ProviderMux)
	if !ok {
		t.Fatalf("Expected a ProviderMux, got %T", provider)
	}

	if _, ok := mux.bySource["archive"]; !ok {
		t.Error("Expected the playlist source to be registered")
	}
	if _, ok := mux.bySource["satsang"]; ok {
		t.Error("Expected API sources to use the default corpus client")
	}
	if _, ok := mux.fallback.(*CorpusClient); !ok {
		t.Errorf("Expected the corpus client as fallback, got %T", mux.fallback)
	}
}

func TestMatchesYear(t *testing.T) {
	if !matchesYear("Satsang 2021 part 1", "2021") {
		t.Error("Expected title containing the year to match")
	}
	if matchesYear("Satsang part 1", "2021") {
		t.Error("Expected title without the year to not match")
	}
	if !matchesYear("Anything", "") {
		t.Error("Expected empty year filter to match everything")
	}
}
