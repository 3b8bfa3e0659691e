package ui

// Package ui contains the Fyne-based desktop user interface for the app.
// It wires the filter bar to the search controller and renders the result
// window, load-more control, notifications, and settings. All UI strings are
// localized via Localization.
