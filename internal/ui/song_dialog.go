package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowSongDialog displays the shared add/edit form: a title entry, an
// optional number entry, and a Submit button. onSubmit receives the raw
// entry text; validation happens in the store.
func ShowSongDialog(window fyne.Window, title, songTitle, songNumber string, onSubmit func(title, number string)) {
	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder("Song title")
	titleEntry.SetText(songTitle)

	numberEntry := widget.NewEntry()
	numberEntry.SetPlaceHolder("e.g. hymnal number")
	numberEntry.SetText(songNumber)

	form := container.NewVBox(
		widget.NewLabel("Title:"),
		titleEntry,
		widget.NewLabel("Number (optional):"),
		numberEntry,
	)

	d := dialog.NewCustomConfirm(
		title,
		"Submit",
		"Cancel",
		form,
		func(submitted bool) {
			if !submitted {
				return
			}
			onSubmit(titleEntry.Text, numberEntry.Text)
		},
		window,
	)

	d.Resize(fyne.NewSize(400, 200))
	d.Show()
	window.Canvas().Focus(titleEntry)
}
