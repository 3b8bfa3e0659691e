package platform

import (
	"context"
	"fmt"
	"strings"

	"github.com/ytget/ytdlp/v2"

	"github.com/dishalabs/disha/internal/model"
)

// YouTubeVideoURLTemplate builds a watch URL from a video id.
const YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"

// PlaylistProvider serves a corpus source backed by a curated YouTube
// playlist. The playlist feed carries only id and title, so the year filter
// is matched against the title and the language and duration filters pass
// through; the primary API source carries full metadata.
type PlaylistProvider struct {
	source     string
	playlistID string
}

// NewPlaylistProvider creates a provider for one curated playlist source.
func NewPlaylistProvider(source, playlistID string) *PlaylistProvider {
	return &PlaylistProvider{
		source:     source,
		playlistID: playlistID,
	}
}

// Search fetches the playlist items and maps them to video results in feed
// order.
func (p *PlaylistProvider) Search(ctx context.Context, f model.FilterSet) ([]model.VideoResult, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, p.playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	results := make([]model.VideoResult, 0, len(items))
	for _, it := range items {
		if !matchesYear(it.Title, f.Year) {
			continue
		}
		results = append(results, model.VideoResult{
			ID:     it.VideoID,
			Title:  it.Title,
			Source: p.source,
			URL:    fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}

	return results, nil
}

// matchesYear reports whether the title satisfies the year filter. An empty
// filter matches everything.
func matchesYear(title, year string) bool {
	if year == "" {
		return true
	}
	return strings.Contains(title, year)
}
