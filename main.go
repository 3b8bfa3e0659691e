package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dishalabs/disha/internal/config"
	"github.com/dishalabs/disha/internal/platform"
	"github.com/dishalabs/disha/internal/search"
	"github.com/dishalabs/disha/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "org.dishalabs.disha"
	AppName = "Disha Video Search"

	WindowWidth  = 960
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	store := config.NewFilterStore(myApp)

	corpus := config.LoadCorpus(settings.GetCorpusConfigPath())

	provider := platform.BuildProvider(corpus)
	notifier := ui.NewNotifier(myApp)

	controller := search.NewController(store, provider, notifier)
	controller.SetTimeout(corpus.SearchTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, notifier, corpus.SourceNames())

	// Run the initial search with the restored filter selection
	controller.Start()

	// Show and run
	myWindow.ShowAndRun()
}
