package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("hi")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "hi" {
		t.Errorf("Expected language 'hi', got %s", retrievedLang)
	}
}

func TestCorpusConfigPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Empty by default: built-in corpus defaults are used
	if path := settings.GetCorpusConfigPath(); path != "" {
		t.Errorf("Expected empty corpus config path by default, got %s", path)
	}

	settings.SetCorpusConfigPath("/etc/disha/disha.yaml")
	if path := settings.GetCorpusConfigPath(); path != "/etc/disha/disha.yaml" {
		t.Errorf("Expected corpus config path to round-trip, got %s", path)
	}
}
