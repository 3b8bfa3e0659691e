package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/dishalabs/disha/internal/model"
)

func TestLoadWithEmptySlot(t *testing.T) {
	app := test.NewApp()
	store := NewFilterStore(app)

	f := store.Load()
	if !f.Equal(model.DefaultFilterSet()) {
		t.Errorf("Expected default filter set on empty slot, got %+v", f)
	}
}

func TestSaveThenLoad(t *testing.T) {
	app := test.NewApp()
	store := NewFilterStore(app)

	f := model.FilterSet{Language: "hi", Source: "satsang", DurationBand: model.DurationBandMedium, Year: "2022"}
	store.Save(f)

	got := store.Load()
	if !got.Equal(f) {
		t.Errorf("Expected loaded filter set %+v, got %+v", f, got)
	}
}

func TestLoadWithMalformedSlot(t *testing.T) {
	app := test.NewApp()
	store := NewFilterStore(app)

	// Tampered slot must fall back to defaults silently
	app.Preferences().SetString(FilterSlotKey, "{not json")

	f := store.Load()
	if !f.Equal(model.DefaultFilterSet()) {
		t.Errorf("Expected default filter set on malformed slot, got %+v", f)
	}
}

func TestSavePersistsAllKeys(t *testing.T) {
	app := test.NewApp()
	store := NewFilterStore(app)

	store.Save(model.FilterSet{Language: "hi"})

	raw := app.Preferences().String(FilterSlotKey)
	expected := `{"language":"hi","source":"","durationBand":"","year":""}`
	if raw != expected {
		t.Errorf("Expected persisted slot %s, got %s", expected, raw)
	}
}

func TestClear(t *testing.T) {
	app := test.NewApp()
	store := NewFilterStore(app)

	store.Save(model.FilterSet{Language: "en", Year: "2020"})

	f := store.Clear()
	if !f.Equal(model.DefaultFilterSet()) {
		t.Errorf("Expected Clear to return defaults, got %+v", f)
	}

	// Defaults must be persisted, not just returned
	got := store.Load()
	if !got.Equal(model.DefaultFilterSet()) {
		t.Errorf("Expected persisted defaults after Clear, got %+v", got)
	}
}
