package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytgrab/ytgrab/internal/config"
	"github.com/ytgrab/ytgrab/internal/download"
	"github.com/ytgrab/ytgrab/internal/fetch"
	"github.com/ytgrab/ytgrab/internal/logging"
	"github.com/ytgrab/ytgrab/internal/platform"
	"github.com/ytgrab/ytgrab/internal/strategy"
	"github.com/ytgrab/ytgrab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytgrab.ytgrab"
	AppName = "ytgrab"

	WindowWidth  = 640
	WindowHeight = 520
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	logger, err := logging.NewSugared(false)
	if err != nil {
		fmt.Printf("failed to build logger: %v\n", err)
		return
	}
	defer logger.Sync()

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warnw("failed to ensure downloads dir", "dir", downloadsDir, "error", err)
	}

	fallback := strategy.NewYtDLP(logger)
	fallback.FFmpegPath = settings.GetFFmpegPath()
	orchestrator := fetch.NewOrchestrator(strategy.NewNative(logger), fallback, logger)

	downloadSvc := download.NewService(orchestrator, downloadsDir, settings.GetMaxParallelDownloads(), logger)

	ui.NewRootUI(myWindow, myApp, downloadSvc)

	myWindow.ShowAndRun()
}
