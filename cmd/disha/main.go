package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dishalabs/disha/internal/config"
	"github.com/dishalabs/disha/internal/platform"
	"github.com/dishalabs/disha/internal/search"
	"github.com/dishalabs/disha/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("org.dishalabs.disha")
	myWindow := myApp.NewWindow("Disha Video Search")
	myWindow.Resize(fyne.NewSize(960, 640))

	settings := config.NewSettings(myApp)
	store := config.NewFilterStore(myApp)
	corpus := config.LoadCorpus(settings.GetCorpusConfigPath())

	notifier := ui.NewNotifier(myApp)
	controller := search.NewController(store, platform.BuildProvider(corpus), notifier)
	controller.SetTimeout(corpus.SearchTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, notifier, corpus.SourceNames())
	controller.Start()

	// Show and run
	myWindow.ShowAndRun()
}
