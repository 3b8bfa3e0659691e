package model

import "testing"

func TestSearchStateString(t *testing.T) {
	tests := []struct {
		state    SearchState
		expected string
	}{
		{SearchStateIdle, "Idle"},
		{SearchStateLoading, "Loading"},
		{SearchStateReady, "Ready"},
		{SearchStateFailed, "Failed"},
	}

	for _, tt := range tests {
		if tt.state.String() != tt.expected {
			t.Errorf("Expected state string %q, got %q", tt.expected, tt.state.String())
		}
	}
}

func TestSearchStateIsBusy(t *testing.T) {
	if !SearchStateLoading.IsBusy() {
		t.Error("Expected Loading to be busy")
	}

	for _, s := range []SearchState{SearchStateIdle, SearchStateReady, SearchStateFailed} {
		if s.IsBusy() {
			t.Errorf("Expected %s to not be busy", s)
		}
	}
}

func TestSearchStateIsSettled(t *testing.T) {
	for _, s := range []SearchState{SearchStateReady, SearchStateFailed} {
		if !s.IsSettled() {
			t.Errorf("Expected %s to be settled", s)
		}
	}

	for _, s := range []SearchState{SearchStateIdle, SearchStateLoading} {
		if s.IsSettled() {
			t.Errorf("Expected %s to not be settled", s)
		}
	}
}
