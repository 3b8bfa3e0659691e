package ui

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dishalabs/disha/internal/config"
	"github.com/dishalabs/disha/internal/model"
	"github.com/dishalabs/disha/internal/search"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	controller   *search.Controller
	settings     *config.Settings
	localization *Localization
	notifier     *Notifier

	// Filter bar
	languageSelect *widget.Select
	sourceSelect   *widget.Select
	durationSelect *widget.Select
	yearSelect     *widget.Select
	filterLabels   []*widget.Label
	clearBtn       *widget.Button

	// Option values parallel to each select's options; index 0 is "Any"
	languageValues []string
	sourceValues   []string
	durationValues []string
	yearValues     []string

	// Result area
	resultList  *widget.List
	statusLabel *widget.Label
	loadMoreBtn *widget.Button
	retryBtn    *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// visible is the rendered window snapshot backing the result list
	visible []model.VideoResult

	sourceNames []string
	applying    bool // suppresses select callbacks during programmatic updates
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller *search.Controller, notifier *Notifier, sourceNames []string) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		controller:   controller,
		settings:     settings,
		localization: localization,
		notifier:     notifier,
		sourceNames:  sourceNames,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callbacks from the pipeline
	controller.SetUpdateCallback(ui.onPipelineUpdate)
	notifier.attach(ui.onNotification)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create filter bar
	filterBar := ui.createFilterBar()

	// Create notification panel under the filter bar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(filterBar, ui.notificationContainer)

	// Create result list over the visible window snapshot
	ui.resultList = widget.NewList(
		func() int {
			return len(ui.visible)
		},
		func() fyne.CanvasObject { return createResultRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.visible) {
				updateResultRow(obj, ui.visible[id])
			}
		},
	)

	// Create bottom bar: result count plus load-more/retry actions
	ui.statusLabel = widget.NewLabel("")
	ui.loadMoreBtn = widget.NewButton(ui.localization.GetText(KeyLoadMore), ui.onLoadMore)
	ui.loadMoreBtn.Hide()
	ui.retryBtn = widget.NewButton(ui.localization.GetText(KeyRetry), ui.onRetry)
	ui.retryBtn.Hide()

	bottomBar := container.NewBorder(nil, nil, ui.statusLabel, container.NewHBox(ui.retryBtn, ui.loadMoreBtn))

	content := container.NewBorder(
		topCombined,   // top
		bottomBar,     // bottom
		nil,           // left
		nil,           // right
		ui.resultList, // center
	)

	ui.window.SetContent(content)

	// Seed the filter bar from the restored selection
	ui.applyFilterSelection(ui.controller.Filters())

	log.Printf("UI setup completed successfully")
}

// createFilterBar builds the four filter selects plus the clear button
func (ui *RootUI) createFilterBar() fyne.CanvasObject {
	ui.languageValues, ui.languageSelect = ui.newFilterSelect(FilterLanguageCodes, LanguageDisplayName)
	ui.sourceValues, ui.sourceSelect = ui.newFilterSelect(ui.sourceNames, func(v string) string { return v })
	ui.durationValues, ui.durationSelect = ui.newFilterSelect(
		[]string{model.DurationBandShort, model.DurationBandMedium, model.DurationBandLong},
		ui.durationLabel,
	)
	ui.yearValues, ui.yearSelect = ui.newFilterSelect(yearOptions(), func(v string) string { return v })

	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearFilters), ui.onClearFilters)

	ui.filterLabels = []*widget.Label{
		widget.NewLabel(ui.localization.GetText(KeyFilterLanguage)),
		widget.NewLabel(ui.localization.GetText(KeyFilterSource)),
		widget.NewLabel(ui.localization.GetText(KeyFilterDuration)),
		widget.NewLabel(ui.localization.GetText(KeyFilterYear)),
	}

	return container.NewGridWithColumns(5,
		container.NewVBox(ui.filterLabels[0], ui.languageSelect),
		container.NewVBox(ui.filterLabels[1], ui.sourceSelect),
		container.NewVBox(ui.filterLabels[2], ui.durationSelect),
		container.NewVBox(ui.filterLabels[3], ui.yearSelect),
		container.NewVBox(widget.NewLabel(""), ui.clearBtn),
	)
}

// newFilterSelect builds a select whose first option is the localized "Any"
// (empty filter value), followed by the given values rendered by label.
func (ui *RootUI) newFilterSelect(values []string, label func(string) string) ([]string, *widget.Select) {
	withAny := append([]string{""}, values...)

	options := make([]string, 0, len(withAny))
	for _, v := range withAny {
		if v == "" {
			options = append(options, ui.localization.GetText(KeyAnyOption))
			continue
		}
		options = append(options, label(v))
	}

	sel := widget.NewSelect(options, ui.onFilterChanged)
	return withAny, sel
}

// durationLabel returns the localized label for a duration band value
func (ui *RootUI) durationLabel(band string) string {
	switch band {
	case model.DurationBandShort:
		return ui.localization.GetText(KeyDurationShort)
	case model.DurationBandMedium:
		return ui.localization.GetText(KeyDurationMedium)
	case model.DurationBandLong:
		return ui.localization.GetText(KeyDurationLong)
	default:
		return band
	}
}

// yearOptions returns selectable years, newest first
func yearOptions() []string {
	years := make([]string, 0, time.Now().Year()-FirstFilterYear+1)
	for y := time.Now().Year(); y >= FirstFilterYear; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyUILanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles UI language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.clearBtn.SetText(ui.localization.GetText(KeyClearFilters))
	ui.loadMoreBtn.SetText(ui.localization.GetText(KeyLoadMore))
	ui.retryBtn.SetText(ui.localization.GetText(KeyRetry))

	for i, key := range []string{KeyFilterLanguage, KeyFilterSource, KeyFilterDuration, KeyFilterYear} {
		ui.filterLabels[i].SetText(ui.localization.GetText(key))
	}

	// Rebuild select options so the "Any" entry follows the language
	ui.rebuildFilterOptions()
	ui.resultList.Refresh()
}

// rebuildFilterOptions re-renders option labels, keeping current selections
func (ui *RootUI) rebuildFilterOptions() {
	ui.applying = true
	defer func() { ui.applying = false }()

	rebuild := func(sel *widget.Select, values []string, label func(string) string) {
		idx := sel.SelectedIndex()

		options := make([]string, 0, len(values))
		for _, v := range values {
			if v == "" {
				options = append(options, ui.localization.GetText(KeyAnyOption))
				continue
			}
			options = append(options, label(v))
		}
		sel.Options = options

		if idx >= 0 && idx < len(options) {
			sel.SetSelectedIndex(idx)
		}
		sel.Refresh()
	}

	rebuild(ui.languageSelect, ui.languageValues, LanguageDisplayName)
	rebuild(ui.sourceSelect, ui.sourceValues, func(v string) string { return v })
	rebuild(ui.durationSelect, ui.durationValues, ui.durationLabel)
	rebuild(ui.yearSelect, ui.yearValues, func(v string) string { return v })
}

// onFilterChanged handles any filter select change: the new selection is
// persisted and a search starts. Distinct from onClearFilters, which only
// resets filter state.
func (ui *RootUI) onFilterChanged(_ string) {
	if ui.applying {
		return
	}

	f := ui.currentFilterSet()
	log.Printf("Filters changed: %+v", f)
	ui.controller.ApplyFilters(f)
}

// onClearFilters resets the filter selection without searching
func (ui *RootUI) onClearFilters() {
	ui.controller.ClearFilters()
	ui.applyFilterSelection(model.DefaultFilterSet())
}

// onLoadMore grows the visible window
func (ui *RootUI) onLoadMore() {
	ui.controller.LoadMore()
}

// onRetry re-attempts the failed search
func (ui *RootUI) onRetry() {
	ui.controller.Retry()
}

// currentFilterSet reads the filter bar into a FilterSet
func (ui *RootUI) currentFilterSet() model.FilterSet {
	return model.FilterSet{
		Language:     optionValue(ui.languageSelect, ui.languageValues),
		Source:       optionValue(ui.sourceSelect, ui.sourceValues),
		DurationBand: optionValue(ui.durationSelect, ui.durationValues),
		Year:         optionValue(ui.yearSelect, ui.yearValues),
	}
}

// optionValue maps a select's current index back to its filter value
func optionValue(sel *widget.Select, values []string) string {
	idx := sel.SelectedIndex()
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return values[idx]
}

// applyFilterSelection sets the filter bar to the given selection without
// triggering filter-change callbacks
func (ui *RootUI) applyFilterSelection(f model.FilterSet) {
	ui.applying = true
	defer func() { ui.applying = false }()

	setValue := func(sel *widget.Select, values []string, value string) {
		for i, v := range values {
			if v == value {
				sel.SetSelectedIndex(i)
				return
			}
		}
		sel.SetSelectedIndex(0)
	}

	setValue(ui.languageSelect, ui.languageValues, f.Language)
	setValue(ui.sourceSelect, ui.sourceValues, f.Source)
	setValue(ui.durationSelect, ui.durationValues, f.DurationBand)
	setValue(ui.yearSelect, ui.yearValues, f.Year)
}

// onPipelineUpdate re-renders the UI from a fresh pipeline snapshot
func (ui *RootUI) onPipelineUpdate() {
	snap := ui.controller.Snapshot()
	fyne.Do(func() {
		ui.render(snap)
	})
}

// render applies one pipeline snapshot to the widgets
func (ui *RootUI) render(snap search.Snapshot) {
	ui.visible = snap.Visible
	ui.resultList.Refresh()

	switch snap.State {
	case model.SearchStateLoading:
		ui.showNotification(ui.localization.GetText(KeySearching), true)
		ui.statusLabel.SetText(ui.localization.GetText(KeySearching))
	case model.SearchStateReady:
		ui.hideNotification()
		if snap.Total == 0 {
			ui.statusLabel.SetText(ui.localization.GetText(KeyNoResults))
		} else {
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyShowingCount), len(snap.Visible), snap.Total))
		}
	case model.SearchStateFailed:
		// Failure text arrives via the notifier; just stop the spinner and
		// keep the last good results on screen
		ui.notificationSpinner.Hide()
		ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyShowingCount), len(snap.Visible), snap.Total))
	}

	if snap.HasMore && !snap.State.IsBusy() {
		ui.loadMoreBtn.Show()
	} else {
		ui.loadMoreBtn.Hide()
	}

	if snap.State == model.SearchStateFailed {
		ui.retryBtn.Show()
	} else {
		ui.retryBtn.Hide()
	}
}

// onNotification displays a pipeline notification in the panel
func (ui *RootUI) onNotification(n search.Notification) {
	ui.showNotification(n.Title+": "+n.Description, false)
}

// showNotification displays a message in the notification panel under the
// filter bar. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}
