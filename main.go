package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/songbook/songbook/internal/cli"
	"github.com/songbook/songbook/internal/config"
	"github.com/songbook/songbook/internal/logging"
	"github.com/songbook/songbook/internal/store"
	"github.com/songbook/songbook/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.songbook.songbook"
	AppName = "Songbook"

	WindowWidth  = 600
	WindowHeight = 400
)

func main() {
	// CLI mode: songbook --cli --list | --add "Title" ["Number"] | --remove INDEX
	if len(os.Args) > 1 && os.Args[1] == "--cli" {
		os.Exit(cli.Run(os.Args[2:]))
	}

	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	log := logging.New(settings.GetDebugLogging())

	st := store.New(settings.GetSongsFile(),
		store.WithAutoSave(settings.GetAutoSave()),
		store.WithLogger(log))
	loadErr := st.Load()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, st, log)

	// A failed load surfaces in a dialog; the app keeps running with the
	// collection it has so nothing is silently discarded.
	if loadErr != nil {
		log.Errorw("failed to load songs", "path", st.Path(), "error", loadErr)
		dialog.ShowError(loadErr, myWindow)
	}

	// Show and run
	myWindow.ShowAndRun()
}
