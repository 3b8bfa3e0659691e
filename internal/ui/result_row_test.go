package ui

import (
	"testing"

	"github.com/dishalabs/disha/internal/model"
)

func TestFormatResultMeta(t *testing.T) {
	v := model.VideoResult{
		Source:      "Lecture Archive",
		DurationSec: 754,
		Year:        2021,
	}

	got := formatResultMeta(v)
	want := "Lecture Archive · 12:34 · 2021"
	if got != want {
		t.Errorf("Expected meta %q, got %q", want, got)
	}
}

func TestFormatResultMetaOmitsEmptyParts(t *testing.T) {
	v := model.VideoResult{DurationSec: 61}

	got := formatResultMeta(v)
	want := "01:01"
	if got != want {
		t.Errorf("Expected meta %q, got %q", want, got)
	}
}

func TestFormatResultMetaUnknownDuration(t *testing.T) {
	v := model.VideoResult{Source: "Disha Corpus"}

	got := formatResultMeta(v)
	want := "Disha Corpus · —"
	if got != want {
		t.Errorf("Expected meta %q, got %q", want, got)
	}
}

func TestUpdateResultRow(t *testing.T) {
	row := createResultRow()

	updateResultRow(row, model.VideoResult{
		Title:       "Introduction to Ragas",
		Source:      "Community Talks",
		DurationSec: 300,
		Year:        2020,
	})
	// No panic on a template row is the contract; content checks happen via
	// formatResultMeta above.
}
