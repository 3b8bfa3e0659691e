package config

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/dishalabs/disha/internal/model"
)

// FilterSlotKey is the single preferences key holding the JSON-serialized
// filter selection.
const FilterSlotKey = "disha-filters"

// FilterStore persists the current filter selection in the app preferences
// slot. Storage failures never propagate: Load falls back to the default
// filter set and Save is best effort — the in-memory FilterSet owned by the
// controller remains the source of truth either way.
type FilterStore struct {
	prefs fyne.Preferences
}

// NewFilterStore creates a filter store backed by the app's preferences.
func NewFilterStore(app fyne.App) *FilterStore {
	return &FilterStore{prefs: app.Preferences()}
}

// Load returns the persisted filter selection, or the default filter set if
// the slot is absent or malformed. It never fails.
func (s *FilterStore) Load() model.FilterSet {
	f, err := s.read()
	if err != nil {
		logrus.WithError(err).Debug("filter slot unreadable, using defaults")
		return model.DefaultFilterSet()
	}
	return f
}

// read is the fallible half of Load, kept separate so the never-fails
// contract of the public API stays visible.
func (s *FilterStore) read() (model.FilterSet, error) {
	raw := s.prefs.String(FilterSlotKey)
	if raw == "" {
		return model.FilterSet{}, fmt.Errorf("filter slot %q is empty", FilterSlotKey)
	}

	var f model.FilterSet
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return model.FilterSet{}, fmt.Errorf("malformed filter slot: %w", err)
	}
	return f, nil
}

// Save writes the filter selection to the slot. Failures are swallowed.
func (s *FilterStore) Save(f model.FilterSet) {
	data, err := json.Marshal(f)
	if err != nil {
		logrus.WithError(err).Debug("failed to serialize filter set")
		return
	}
	s.prefs.SetString(FilterSlotKey, string(data))
}

// Clear resets the slot to the default filter set, persists it, and returns
// the defaults.
func (s *FilterStore) Clear() model.FilterSet {
	defaults := model.DefaultFilterSet()
	s.Save(defaults)
	return defaults
}
