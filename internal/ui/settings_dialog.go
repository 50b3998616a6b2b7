package ui

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/rickmorty/internal/config"
	"github.com/ytget/rickmorty/internal/i18n"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 520
	SettingsDialogHeight = 420
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings   *config.Settings
	translator *i18n.Translator
	window     fyne.Window
	dialog     *dialog.ConfirmDialog
	onSaved    func()

	// UI components
	apiURLEntry    *widget.Entry
	exportDirEntry *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
	revealCheck    *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, translator *i18n.Translator, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:   settings,
		translator: translator,
		window:     window,
		onSaved:    onSaved,
	}
	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the dialog in one call
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, translator *i18n.Translator, onSaved func()) {
	NewSettingsDialog(settings, translator, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	tr := sd.translator

	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(sd.settings.Defaults().APIURL)
	sd.apiURLEntry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		return config.ValidateAPIURL(s)
	}

	sd.exportDirEntry = widget.NewEntry()
	browseBtn := widget.NewButton(tr.Text(i18n.KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseBtn, sd.exportDirEntry)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(int(config.MinTimeout/time.Second)) + "-" + strconv.Itoa(int(config.MaxTimeout/time.Second)))

	sd.languageCodes = make(map[string]string)
	names := make([]string, 0)
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	sd.revealCheck = widget.NewCheck(tr.Text(i18n.KeyRevealOnExport), nil)

	form := container.NewVBox(
		widget.NewLabel(tr.Text(i18n.KeyAPIURL)+":"),
		sd.apiURLEntry,

		widget.NewLabel(tr.Text(i18n.KeyTimeoutSeconds)+":"),
		sd.timeoutEntry,

		widget.NewLabel(tr.Text(i18n.KeyExportDir)+":"),
		exportDirRow,
		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(tr.Text(i18n.KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		tr.Text(i18n.KeySettings),
		tr.Text(i18n.KeySave),
		tr.Text(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIURL())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnExport())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// apply stores the form values. Invalid values are skipped and the first
// problem is returned.
func (sd *SettingsDialog) apply() error {
	var firstErr error

	if raw := sd.apiURLEntry.Text; raw != "" {
		if err := sd.settings.SetAPIURL(raw); err != nil {
			firstErr = fmt.Errorf("%s: %w", sd.translator.Text(i18n.KeyInvalidURL), err)
		}
	}

	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	if secs, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetRequestTimeout(time.Duration(secs) * time.Second)
	}

	sd.settings.SetRevealOnExport(sd.revealCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	return firstErr
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}
	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.translator.Text(i18n.KeySettings), sd.translator.Text(i18n.KeySettingsSaved), sd.window)
}
