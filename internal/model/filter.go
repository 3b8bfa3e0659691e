package model

// Duration band values understood by the corpus. An empty band means
// "any duration".
const (
	DurationBandShort  = "short"  // under 10 minutes
	DurationBandMedium = "medium" // 10 to 30 minutes
	DurationBandLong   = "long"   // over 30 minutes
)

// FilterSet is the user-selected search constraint record. Every field is a
// string where the empty string means "unconstrained"; all four fields are
// always present so the persisted JSON never has missing keys.
type FilterSet struct {
	Language     string `json:"language"`
	Source       string `json:"source"`
	DurationBand string `json:"durationBand"`
	Year         string `json:"year"`
}

// DefaultFilterSet returns the unconstrained filter selection.
func DefaultFilterSet() FilterSet {
	return FilterSet{}
}

// Equal reports whether two filter sets are structurally equal.
func (f FilterSet) Equal(other FilterSet) bool {
	return f == other
}

// IsUnconstrained reports whether no filter field is set.
func (f FilterSet) IsUnconstrained() bool {
	return f == FilterSet{}
}
