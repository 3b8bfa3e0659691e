package search

import (
	"context"

	"github.com/dishalabs/disha/internal/model"
)

// Provider is the asynchronous query capability over the video corpus. One
// call per invocation; implementations must not mutate the filter set and
// must not retry, cache, or deduplicate — the controller owns coordination.
type Provider interface {
	Search(ctx context.Context, f model.FilterSet) ([]model.VideoResult, error)
}

// FilterStore persists the filter selection. Load never fails; Save is best
// effort.
type FilterStore interface {
	Load() model.FilterSet
	Save(f model.FilterSet)
	Clear() model.FilterSet
}

// Severity classifies a notification for the UI.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is one user-visible message.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Sink receives user-visible notifications from the pipeline.
type Sink interface {
	Notify(n Notification)
}

// Failure message shown when a search invocation fails.
const (
	FailureTitle       = "Search failed"
	FailureDescription = "Unable to fetch results, please try again"
)

// FailureNotification returns the fixed notification for a failed search.
func FailureNotification() Notification {
	return Notification{
		Title:       FailureTitle,
		Description: FailureDescription,
		Severity:    SeverityError,
	}
}
