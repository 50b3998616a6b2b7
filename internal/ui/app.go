package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/config"
	"github.com/ytget/rickmorty/internal/platform"
)

const (
	AppID   = "com.ytget.rickmorty"
	AppName = "Rick and Morty App"
)

// Run starts the desktop application on the list route and blocks until the
// window is closed. defaults seed any setting the user has not saved yet.
func Run(defaults config.Defaults, logger *zap.Logger) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(NewPortalTheme())
	if icon, err := LoadLogoResource(); err == nil {
		a.SetIcon(icon)
	}

	w := a.NewWindow(AppName)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(a, defaults)
	if err := platform.CreateDirectoryIfNotExists(settings.GetExportDirectory()); err != nil {
		logger.Warn("failed to ensure export dir", zap.Error(err))
	}

	root, err := NewRootUI(w, settings, logger, NewAPIFetcher(logger))
	if err != nil {
		return err
	}
	root.Navigate(RouteHome)

	w.ShowAndRun()
	return nil
}
