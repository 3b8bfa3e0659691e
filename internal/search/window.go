package search

import (
	"github.com/dishalabs/disha/internal/model"
)

// Window sizing
const (
	// InitialWindowSize is the number of results exposed after every search
	InitialWindowSize = 10

	// WindowIncrement is how much the window grows per load-more request
	WindowIncrement = 10
)

// Window exposes a growing prefix of a result set to the display layer. The
// visible count is reset whenever a new result set arrives and only ever
// grows between searches; the visible prefix is always clamped to the actual
// result length when sliced.
type Window struct {
	results      []model.VideoResult
	visibleCount int
}

// Reset replaces the result set and restores the initial window size.
func (w *Window) Reset(results []model.VideoResult) {
	w.results = results
	w.visibleCount = InitialWindowSize
}

// Grow increases the visible count by the fixed increment.
func (w *Window) Grow() {
	w.visibleCount += WindowIncrement
}

// HasMore reports whether results beyond the visible prefix exist.
func (w *Window) HasMore() bool {
	return w.visibleCount < len(w.results)
}

// Visible returns the currently exposed prefix, preserving provider order.
func (w *Window) Visible() []model.VideoResult {
	n := min(w.visibleCount, len(w.results))
	if n <= 0 {
		return nil
	}
	return w.results[:n]
}

// VisibleCount returns the current window size counter.
func (w *Window) VisibleCount() int {
	return w.visibleCount
}

// Total returns the full result set length.
func (w *Window) Total() int {
	return len(w.results)
}
