package search

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dishalabs/disha/internal/logger"
	"github.com/dishalabs/disha/internal/model"
)

// DefaultSearchTimeout bounds one provider invocation.
const DefaultSearchTimeout = 30 * time.Second

// Snapshot is one consistent view of the pipeline for the display layer.
type Snapshot struct {
	State   model.SearchState
	Filters model.FilterSet
	Visible []model.VideoResult
	Total   int
	HasMore bool
}

// Controller orchestrates the search pipeline: it reacts to filter changes,
// drives the loading state, resets pagination on new results, and surfaces
// failures. Filter changes both persist and re-search; clearing filters only
// persists — that asymmetry is observable behavior and must hold.
type Controller struct {
	mu      sync.Mutex
	state   model.SearchState
	filters model.FilterSet
	results []model.VideoResult
	window  Window

	store    FilterStore
	provider Provider
	sink     Sink
	timeout  time.Duration

	// seq is the invocation token: only the resolution carrying the latest
	// token may touch results. cancel aborts the superseded invocation.
	seq    uint64
	cancel context.CancelFunc

	onUpdate func() // callback for UI updates
}

// NewController creates a controller with the filter selection restored from
// the store. No search runs until Start.
func NewController(store FilterStore, provider Provider, sink Sink) *Controller {
	return &Controller{
		state:    model.SearchStateIdle,
		filters:  store.Load(),
		store:    store,
		provider: provider,
		sink:     sink,
		timeout:  DefaultSearchTimeout,
	}
}

// SetUpdateCallback sets the callback invoked after every state change.
func (c *Controller) SetUpdateCallback(callback func()) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// SetTimeout sets the per-invocation search timeout.
func (c *Controller) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	c.timeout = timeout
	c.mu.Unlock()
}

// Start runs the mount-time search with the restored filter selection.
func (c *Controller) Start() {
	c.mu.Lock()
	c.beginSearchLocked()
	c.mu.Unlock()

	c.notifyUpdate()
}

// ApplyFilters persists the new filter selection and starts a search with it.
func (c *Controller) ApplyFilters(f model.FilterSet) {
	c.mu.Lock()
	c.filters = f
	c.store.Save(f)
	c.beginSearchLocked()
	c.mu.Unlock()

	c.notifyUpdate()
}

// ClearFilters resets the filter selection to defaults and persists it. It
// deliberately does not trigger a search; displayed results stay as they are
// until the next explicit filter change or mount.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	c.filters = c.store.Clear()
	c.mu.Unlock()

	c.notifyUpdate()
}

// LoadMore grows the visible window. It never re-invokes the provider and
// never changes controller state; it is ignored while a search is in flight
// or when the window is already exhausted.
func (c *Controller) LoadMore() {
	c.mu.Lock()
	if c.state.IsBusy() || !c.window.HasMore() {
		c.mu.Unlock()
		return
	}
	c.window.Grow()
	c.mu.Unlock()

	c.notifyUpdate()
}

// Retry re-attempts the search with the current filter selection.
func (c *Controller) Retry() {
	c.mu.Lock()
	c.beginSearchLocked()
	c.mu.Unlock()

	c.notifyUpdate()
}

// Snapshot returns the current pipeline view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State:   c.state,
		Filters: c.filters,
		Visible: c.window.Visible(),
		Total:   c.window.Total(),
		HasMore: c.window.HasMore(),
	}
}

// Filters returns the current filter selection.
func (c *Controller) Filters() model.FilterSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// beginSearchLocked starts a new invocation for the current filters. The
// caller holds c.mu. Any in-flight invocation is cancelled and its eventual
// resolution discarded by the token guard, so the newest request always wins.
func (c *Controller) beginSearchLocked() {
	c.seq++
	token := c.seq

	if c.cancel != nil {
		c.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	ctx = logger.ContextWithID(ctx, uuid.NewString())
	c.cancel = cancel

	c.state = model.SearchStateLoading

	go c.runSearch(ctx, cancel, token, c.filters)
}

// runSearch performs one provider invocation and resolves it against the
// token guard.
func (c *Controller) runSearch(ctx context.Context, cancel context.CancelFunc, token uint64, f model.FilterSet) {
	defer cancel()
	defer logger.Track(ctx, "search invocation")()

	results, err := c.provider.Search(ctx, f)

	c.mu.Lock()
	if token != c.seq {
		c.mu.Unlock()
		logger.For(ctx).Debug("discarding stale search resolution")
		return
	}

	if err != nil {
		// Keep the last good results and window untouched
		c.state = model.SearchStateFailed
		c.mu.Unlock()

		logger.For(ctx).WithError(err).Error("search failed")
		if c.sink != nil {
			c.sink.Notify(FailureNotification())
		}
		c.notifyUpdate()
		return
	}

	c.results = results
	c.window.Reset(results)
	c.state = model.SearchStateReady
	c.mu.Unlock()

	logger.For(ctx).WithField("total", len(results)).Info("search completed")
	c.notifyUpdate()
}

// notifyUpdate calls the update callback if set. Always called without c.mu
// held so the callback may take snapshots.
func (c *Controller) notifyUpdate() {
	c.mu.Lock()
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback()
	}
}
