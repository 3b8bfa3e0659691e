package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dishalabs/disha/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect  *widget.Select
	corpusPathEntry *widget.Entry

	languageCodes []string
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs after
// the settings have been written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Interface language selection
	languageLabels := sd.localization.GetAvailableLanguages()
	languageOptions := []string{}
	for code, name := range languageLabels {
		sd.languageCodes = append(sd.languageCodes, code)
		languageOptions = append(languageOptions, name)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Corpus config file path
	sd.corpusPathEntry = widget.NewEntry()
	sd.corpusPathEntry.SetPlaceHolder("disha.yaml")

	browseBtn := widget.NewButton("…", sd.onBrowseFile)
	corpusPathRow := container.NewBorder(nil, nil, nil, browseBtn, sd.corpusPathEntry)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyUILanguage)),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyCorpusConfig)),
		corpusPathRow,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onConfirm,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}

	sd.corpusPathEntry.SetText(sd.settings.GetCorpusConfigPath())
}

// onBrowseFile opens a file picker for the corpus config path
func (sd *SettingsDialog) onBrowseFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		sd.corpusPathEntry.SetText(reader.URI().Path())
	}, sd.window)

	fileDialog.Show()
}

// onConfirm handles the save/cancel result of the dialog
func (sd *SettingsDialog) onConfirm(save bool) {
	if !save {
		return
	}

	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 && idx < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[idx])
	}
	sd.settings.SetCorpusConfigPath(sd.corpusPathEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
