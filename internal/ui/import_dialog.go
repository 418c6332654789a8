package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowImportDialog displays a multiline paste area for bulk import, one
// song per line in "Title - Number" or plain title form.
func ShowImportDialog(window fyne.Window, onSubmit func(text string)) {
	textEntry := widget.NewMultiLineEntry()
	textEntry.SetPlaceHolder("One song per line, optionally 'Title - Number'")
	textEntry.SetMinRowsVisible(10)

	form := container.NewVBox(
		widget.NewLabel("Paste songs to import:"),
		textEntry,
	)

	d := dialog.NewCustomConfirm(
		"Import from text",
		"Import",
		"Cancel",
		form,
		func(submitted bool) {
			if !submitted || textEntry.Text == "" {
				return
			}
			onSubmit(textEntry.Text)
		},
		window,
	)

	d.Resize(fyne.NewSize(500, 400))
	d.Show()
	window.Canvas().Focus(textEntry)
}
