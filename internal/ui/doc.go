package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// A small router swaps between the character list, the search form and the
// not-found page. Views call the API client off the UI goroutine and apply
// results with fyne.Do. All UI strings are localized via i18n.Translator.
