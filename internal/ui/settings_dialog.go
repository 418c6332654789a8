package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/songbook/songbook/internal/config"
	"github.com/songbook/songbook/internal/store"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	store    *store.Store
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	songsFileEntry *widget.Entry
	autoSaveCheck  *widget.Check
	debugLogCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, st *store.Store, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		store:    st,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.songsFileEntry = widget.NewEntry()
	sd.songsFileEntry.SetPlaceHolder("Songs file path")

	sd.autoSaveCheck = widget.NewCheck("Save after every change", nil)
	sd.debugLogCheck = widget.NewCheck("Debug logging", nil)

	form := container.NewVBox(
		widget.NewLabel("Songs File:"),
		sd.songsFileEntry,
		widget.NewSeparator(),
		sd.autoSaveCheck,
		sd.debugLogCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(450, 280))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.songsFileEntry.SetText(sd.settings.GetSongsFile())
	sd.autoSaveCheck.SetChecked(sd.settings.GetAutoSave())
	sd.debugLogCheck.SetChecked(sd.settings.GetDebugLogging())
}

// onSave persists the dialog values
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	pathChanged := sd.songsFileEntry.Text != sd.settings.GetSongsFile()

	sd.settings.SetSongsFile(sd.songsFileEntry.Text)
	sd.settings.SetAutoSave(sd.autoSaveCheck.Checked)
	sd.settings.SetDebugLogging(sd.debugLogCheck.Checked)

	// Auto-save applies immediately; the file path and log level are read
	// once at startup.
	sd.store.SetAutoSave(sd.autoSaveCheck.Checked)
	if pathChanged {
		dialog.ShowInformation("Settings",
			"The songs file change takes effect after restarting the app", sd.window)
	}
}
