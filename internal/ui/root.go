package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/config"
	"github.com/ytget/rickmorty/internal/export"
	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/platform"
)

// FetcherFactory builds the API client for a base URL and per-attempt timeout.
type FetcherFactory func(baseURL string, timeout time.Duration) (api.Fetcher, error)

// NewAPIFetcher is the FetcherFactory backed by api.Client.
func NewAPIFetcher(logger *zap.Logger) FetcherFactory {
	return func(baseURL string, timeout time.Duration) (api.Fetcher, error) {
		return api.NewClient(baseURL, api.WithTimeout(timeout), api.WithLogger(logger))
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	translator *i18n.Translator
	logger     *zap.Logger
	newFetcher FetcherFactory
	fetcher    api.Fetcher
	exporter   *export.Exporter
	mobile     *MobileUI
	router     *Router
	reveal     func(string) error
	open       func(string) error
	dispatch   dispatcher

	navTitle      *canvas.Text
	charactersBtn *widget.Button
	searchBtn     *widget.Button
	body          *fyne.Container
}

// NewRootUI creates and initializes the main UI. The caller navigates to the
// first route.
func NewRootUI(window fyne.Window, settings *config.Settings, logger *zap.Logger, newFetcher FetcherFactory) (*RootUI, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if newFetcher == nil {
		newFetcher = NewAPIFetcher(logger)
	}

	translator := i18n.New(settings.GetLanguage())
	ui := &RootUI{
		window:     window,
		settings:   settings,
		translator: translator,
		logger:     logger,
		newFetcher: newFetcher,
		exporter:   export.NewExporter(translator, logger),
		mobile:     NewMobileUI(),
		reveal:     platform.RevealFile,
		open:       platform.OpenFileWithDefaultApp,
		dispatch:   newDispatcher(),
	}
	if err := ui.rebuildFetcher(); err != nil {
		return nil, err
	}

	ui.router = NewRouter(
		[]Route{
			{Path: "", New: ui.newListView},
			{Path: RouteHome, New: ui.newListView},
			{Path: RouteSearch, New: ui.newSearchView},
		},
		Route{Path: "*", New: ui.newNotFoundView},
		ui.mount,
	)

	window.SetTitle(translator.Text(i18n.KeyAppTitle))
	ui.setupUI()
	return ui, nil
}

// Navigate switches the window body to the view for path.
func (ui *RootUI) Navigate(path string) View {
	v := ui.router.Navigate(path)
	ui.logger.Debug("navigated", zap.String("path", ui.router.Current()))
	return v
}

// Router returns the route table
func (ui *RootUI) Router() *Router {
	return ui.router
}

// Translator returns the active translator
func (ui *RootUI) Translator() *i18n.Translator {
	return ui.translator
}

func (ui *RootUI) rebuildFetcher() error {
	baseURL := ui.settings.GetAPIURL()
	fetcher, err := ui.newFetcher(baseURL, ui.settings.GetRequestTimeout())
	if err != nil {
		return fmt.Errorf("create api client for %s: %w", baseURL, err)
	}
	ui.fetcher = fetcher
	ui.logger.Info("api client ready", zap.String("base_url", baseURL))
	return nil
}

func (ui *RootUI) deps() Deps {
	return Deps{
		Fetcher:    ui.fetcher,
		Translator: ui.translator,
		Logger:     ui.logger,
		Mobile:     ui.mobile,
		Navigate:   func(path string) { ui.Navigate(path) },
		dispatch:   ui.dispatch,
	}
}

func (ui *RootUI) newListView() View {
	return NewListView(ui.deps())
}

func (ui *RootUI) newSearchView() View {
	return NewSearchView(ui.deps(), ui.exporter, ui.settings, ui.reveal, ui.open)
}

func (ui *RootUI) newNotFoundView() View {
	return NewNotFoundView(ui.deps())
}

func (ui *RootUI) mount(path string, v View) {
	ui.body.Objects = []fyne.CanvasObject{v.Content()}
	ui.body.Refresh()
	ui.highlightNav(path)
}

func (ui *RootUI) highlightNav(path string) {
	ui.charactersBtn.Importance = widget.LowImportance
	ui.searchBtn.Importance = widget.LowImportance
	switch path {
	case RouteHome:
		ui.charactersBtn.Importance = widget.HighImportance
	case RouteSearch:
		ui.searchBtn.Importance = widget.HighImportance
	}
	ui.charactersBtn.Refresh()
	ui.searchBtn.Refresh()
}

// setupUI creates and arranges the shell around the routed body
func (ui *RootUI) setupUI() {
	ui.createMenu()

	start, _ := ParseHexColor(GradientStartHex)
	end, _ := ParseHexColor(GradientEndHex)
	gradient := canvas.NewHorizontalGradient(start, end)

	ui.navTitle = canvas.NewText(ui.translator.Text(i18n.KeyAppTitle), mustHexColor("#ffffff"))
	ui.navTitle.TextSize = NavTitleSize
	ui.navTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.charactersBtn = widget.NewButton(ui.translator.Text(i18n.KeyNavCharacters), func() { ui.Navigate(RouteHome) })
	ui.searchBtn = widget.NewButton(ui.translator.Text(i18n.KeyNavSearch), func() { ui.Navigate(RouteSearch) })
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	nav := container.NewPadded(container.NewBorder(nil, nil,
		container.NewHBox(ui.navTitle),
		container.NewHBox(ui.charactersBtn, ui.searchBtn, settingsBtn),
	))
	navBar := container.NewStack(gradient, nav)

	ui.body = container.NewStack()
	ui.window.SetContent(container.NewBorder(navBar, nil, nil, nil, ui.body))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	tr := ui.translator

	settingsItem := fyne.NewMenuItem(tr.Text(i18n.KeySettings), ui.onShowSettings)
	quitItem := fyne.NewMenuItem(tr.Text(i18n.KeyQuit), func() { fyne.CurrentApp().Quit() })
	quitItem.IsQuit = true

	viewMenu := fyne.NewMenu(tr.Text(i18n.KeyView),
		fyne.NewMenuItem(tr.Text(i18n.KeyNavCharacters), func() { ui.Navigate(RouteHome) }),
		fyne.NewMenuItem(tr.Text(i18n.KeyNavSearch), func() { ui.Navigate(RouteSearch) }),
	)

	languageMenu := fyne.NewMenu(tr.Text(i18n.KeyLanguage))
	names := i18n.LanguageNames()
	for _, code := range i18n.Languages() {
		item := fyne.NewMenuItem(names[code], func() { ui.onLanguageChange(code) })
		item.Checked = tr.Language() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(tr.Text(i18n.KeyFile), settingsItem, fyne.NewMenuItemSeparator(), quitItem),
		viewMenu,
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.translator.SetLanguage(langCode)
	ui.logger.Info("language changed", zap.String("language", ui.translator.Language()))
	ui.refreshUITexts()
}

// refreshUITexts updates the shell texts and rebuilds the current view
func (ui *RootUI) refreshUITexts() {
	tr := ui.translator
	ui.window.SetTitle(tr.Text(i18n.KeyAppTitle))
	ui.navTitle.Text = tr.Text(i18n.KeyAppTitle)
	ui.navTitle.Refresh()
	ui.charactersBtn.SetText(tr.Text(i18n.KeyNavCharacters))
	ui.searchBtn.SetText(tr.Text(i18n.KeyNavSearch))
	ui.createMenu()
	if ui.router.View() != nil {
		ui.router.Reload()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.translator, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved() {
	ui.translator.SetLanguage(ui.settings.GetLanguage())
	if err := ui.rebuildFetcher(); err != nil {
		ui.logger.Error("keeping previous api client", zap.Error(err))
	}
	ui.refreshUITexts()
}
