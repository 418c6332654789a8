package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/songbook/songbook/internal/config"
	"github.com/songbook/songbook/internal/store"
)

// RootUI represents the main window: a live-filtering search box over the
// song list, with add/edit/delete controls on top and import/save plus the
// total count at the bottom.
type RootUI struct {
	window   fyne.Window
	store    *store.Store
	settings *config.Settings
	log      *zap.SugaredLogger

	searchEntry *widget.Entry
	songList    *widget.List
	totalLabel  *widget.Label

	// filtered mirrors the current search results; each entry carries the
	// song's real index in the store so edits and deletes address the
	// collection, not the filtered view.
	filtered []store.Match
	selected int // index into filtered, -1 when nothing is selected
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, st *store.Store, log *zap.SugaredLogger) *RootUI {
	ui := &RootUI{
		window:   window,
		store:    st,
		settings: config.NewSettings(app),
		log:      log,
		selected: -1,
	}

	ui.setupUI()
	ui.refreshList()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder("Search by title or number")
	ui.searchEntry.OnChanged = func(string) {
		ui.refreshList()
	}

	addBtn := widget.NewButton("Add", ui.onAdd)
	editBtn := widget.NewButton("Edit", ui.onEdit)
	deleteBtn := widget.NewButton("Delete", ui.onDelete)
	buttons := container.NewHBox(addBtn, editBtn, deleteBtn)

	topPanel := container.NewBorder(nil, nil, widget.NewLabel("Search:"), buttons, ui.searchEntry)

	ui.songList = widget.NewList(
		func() int {
			return len(ui.filtered)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(ui.filtered) {
				return
			}
			obj.(*widget.Label).SetText(ui.filtered[id].Song.DisplayLabel())
		},
	)
	ui.songList.OnSelected = func(id widget.ListItemID) {
		ui.selected = id
	}
	ui.songList.OnUnselected = func(widget.ListItemID) {
		ui.selected = -1
	}

	ui.totalLabel = widget.NewLabel("Total: 0")
	saveBtn := widget.NewButton("Save", ui.onSave)
	importBtn := widget.NewButton("Import from text…", ui.onImport)
	bottomPanel := container.NewBorder(nil, nil, ui.totalLabel, container.NewHBox(importBtn, saveBtn))

	content := container.NewBorder(
		topPanel,    // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		ui.songList, // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)
	saveItem := fyne.NewMenuItem("Save", ui.onSave)
	importItem := fyne.NewMenuItem("Import from text…", ui.onImport)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", saveItem, importItem, fyne.NewMenuItemSeparator(), settingsItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// refreshList re-runs the current search against the store and redraws the
// list and total count.
func (ui *RootUI) refreshList() {
	ui.filtered = ui.store.Find(ui.searchEntry.Text)
	ui.selected = -1
	ui.songList.UnselectAll()
	ui.songList.Refresh()
	ui.totalLabel.SetText(fmt.Sprintf("Total: %d", len(ui.filtered)))
}

// selectedMatch returns the selected song with its store index, or false
// when nothing is selected.
func (ui *RootUI) selectedMatch() (store.Match, bool) {
	if ui.selected < 0 || ui.selected >= len(ui.filtered) {
		return store.Match{}, false
	}
	return ui.filtered[ui.selected], true
}

// onAdd handles the Add button
func (ui *RootUI) onAdd() {
	ShowSongDialog(ui.window, "Add Song", "", "", func(title, number string) {
		if _, err := ui.store.Add(title, number); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.refreshList()
	})
}

// onEdit handles the Edit button
func (ui *RootUI) onEdit() {
	match, ok := ui.selectedMatch()
	if !ok {
		dialog.ShowInformation("Edit", "Select a song to edit", ui.window)
		return
	}

	ShowSongDialog(ui.window, "Edit Song", match.Song.Title, match.Song.Number, func(title, number string) {
		if err := ui.store.Edit(match.Index, title, number); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.refreshList()
	})
}

// onDelete handles the Delete button
func (ui *RootUI) onDelete() {
	match, ok := ui.selectedMatch()
	if !ok {
		dialog.ShowInformation("Delete", "Select a song to delete", ui.window)
		return
	}

	message := fmt.Sprintf("Delete '%s'?", match.Song.Title)
	dialog.ShowConfirm("Delete", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		if _, err := ui.store.Delete(match.Index); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.refreshList()
	}, ui.window)
}

// onImport handles the import-from-text button
func (ui *RootUI) onImport() {
	ShowImportDialog(ui.window, func(text string) {
		report, err := ui.store.ImportBulk(text)
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.refreshList()

		message := fmt.Sprintf("Imported %d songs", report.Added)
		if len(report.Skipped) > 0 {
			message = fmt.Sprintf("%s (%d lines skipped)", message, len(report.Skipped))
		}
		dialog.ShowInformation("Import", message, ui.window)
	})
}

// onSave handles the Save button
func (ui *RootUI) onSave() {
	if err := ui.store.Save(); err != nil {
		ui.log.Errorw("save failed", "error", err)
		dialog.ShowError(err, ui.window)
		return
	}
	message := fmt.Sprintf("Saved %d songs to %s", ui.store.Len(), ui.store.Path())
	dialog.ShowInformation("Save", message, ui.window)
}

// onShowSettings displays the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.store, ui.window).Show()
}
