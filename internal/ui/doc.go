package ui

// Package ui contains the Fyne-based desktop user interface: the main
// window with its live-filtering song list, the shared add/edit form
// dialog, bulk import, and settings.
