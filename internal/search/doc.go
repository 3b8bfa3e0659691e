package search

// Package search implements the core filter-driven search pipeline: the
// controller state machine reacting to filter changes, the pagination window
// over a result set, and the provider/notification contracts. It manages the
// invocation lifecycle, last-write-wins ordering for overlapping searches,
// and failure propagation to the UI.
