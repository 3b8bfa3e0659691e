package platform

import (
	"context"

	"github.com/dishalabs/disha/internal/config"
	"github.com/dishalabs/disha/internal/model"
	"github.com/dishalabs/disha/internal/search"
)

// ProviderMux routes a search to the provider registered for the selected
// source, falling back to the default provider when the source filter is
// empty or unknown.
type ProviderMux struct {
	fallback search.Provider
	bySource map[string]search.Provider
}

// NewProviderMux creates a mux with the given default provider.
func NewProviderMux(fallback search.Provider) *ProviderMux {
	return &ProviderMux{
		fallback: fallback,
		bySource: make(map[string]search.Provider),
	}
}

// Register binds a source name to a dedicated provider.
func (m *ProviderMux) Register(source string, p search.Provider) {
	m.bySource[source] = p
}

// Search dispatches to the provider owning the selected source.
func (m *ProviderMux) Search(ctx context.Context, f model.FilterSet) ([]model.VideoResult, error) {
	if p, ok := m.bySource[f.Source]; ok {
		return p.Search(ctx, f)
	}
	return m.fallback.Search(ctx, f)
}

// BuildProvider assembles the provider stack for the given corpus
// configuration: the corpus API client as the default, plus one provider per
// configured playlist source.
func BuildProvider(corpus *config.Corpus) search.Provider {
	mux := NewProviderMux(NewCorpusClient(corpus.BaseURL, corpus.RateLimitRPS))
	for _, src := range corpus.Sources {
		if src.Kind == config.SourceKindPlaylist && src.PlaylistID != "" {
			mux.Register(src.Name, NewPlaylistProvider(src.Name, src.PlaylistID))
		}
	}
	return mux
}
