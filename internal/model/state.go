package model

// SearchState represents the lifecycle of the search pipeline
type SearchState string

const (
	// SearchStateIdle means no search has been started yet
	SearchStateIdle SearchState = "Idle"

	// SearchStateLoading means a search invocation is in flight
	SearchStateLoading SearchState = "Loading"

	// SearchStateReady means the latest search completed successfully
	SearchStateReady SearchState = "Ready"

	// SearchStateFailed means the latest search failed; prior results are kept
	SearchStateFailed SearchState = "Failed"
)

// String returns the string representation of SearchState
func (s SearchState) String() string {
	return string(s)
}

// IsBusy returns true while a search invocation is in flight
func (s SearchState) IsBusy() bool {
	return s == SearchStateLoading
}

// IsSettled returns true if the state reflects a completed invocation
func (s SearchState) IsSettled() bool {
	return s == SearchStateReady || s == SearchStateFailed
}
