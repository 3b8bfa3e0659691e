package model

import (
	"fmt"
	"strings"
)

// VideoResult represents one matched video from the corpus. The order of
// results within a search response is provider-defined and must be preserved
// verbatim through pagination.
type VideoResult struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Source       string `json:"source"`
	Language     string `json:"language"`
	DurationSec  int    `json:"duration_sec"` // 0 if unknown
	Year         int    `json:"year,omitempty"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// DurationString returns the duration formatted as hh:mm:ss, or "—" if unknown
func (v VideoResult) DurationString() string {
	if v.DurationSec <= 0 {
		return "—"
	}

	hours := v.DurationSec / 3600
	minutes := (v.DurationSec % 3600) / 60
	seconds := v.DurationSec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title or URL in order of preference
func (v VideoResult) GetDisplayTitle() string {
	if v.Title != "" && !strings.HasPrefix(v.Title, "http") {
		return v.Title
	}
	return v.URL
}
