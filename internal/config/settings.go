package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage   = "app_language"
	KeyCorpusPath = "corpus_config_path"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCorpusConfigPath returns the configured corpus sources file path.
// An empty value means the built-in defaults are used.
func (s *Settings) GetCorpusConfigPath() string {
	return s.app.Preferences().String(KeyCorpusPath)
}

// SetCorpusConfigPath sets the corpus sources file path
func (s *Settings) SetCorpusConfigPath(path string) {
	s.app.Preferences().SetString(KeyCorpusPath, path)
}
