package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	ResultRowMinWidth  float32 = 360
	ResultRowMinHeight float32 = 56

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 260
)

// Filter option ranges
const (
	// FirstFilterYear is the oldest selectable year; the corpus holds
	// nothing older.
	FirstFilterYear = 2009
)

// Language codes offered by the language filter. The corpus carries content
// in these languages; display names come from LanguageDisplayName.
var FilterLanguageCodes = []string{"hi", "en", "sa", "bn", "gu", "mr", "ta", "te"}
