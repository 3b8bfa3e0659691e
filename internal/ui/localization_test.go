package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText(KeyLoadMore); got != "Load More" {
		t.Errorf("Expected 'Load More', got %q", got)
	}
}

func TestLocalizationSwitchToHindi(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("hi")

	if l.GetCurrentLanguage() != "hi" {
		t.Errorf("Expected language hi, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText(KeyRetry); got != "पुनः प्रयास करें" {
		t.Errorf("Expected Hindi retry label, got %q", got)
	}
}

func TestLocalizationIgnoresUnknownLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("xx")

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected language to stay en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationSystemMapsToEnglish(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("hi")
	l.SetLanguage("system")

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationUnknownKeyFallsBack(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("Expected key itself as fallback, got %q", got)
	}
}

func TestLanguageDisplayName(t *testing.T) {
	if got := LanguageDisplayName("en"); got != "English" {
		t.Errorf("Expected English, got %q", got)
	}

	// Unknown codes pass through untouched
	if got := LanguageDisplayName("???"); got != "???" {
		t.Errorf("Expected pass-through for invalid code, got %q", got)
	}
}
