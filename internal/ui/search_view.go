package ui

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/export"
	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/model"
)

// SearchType selects how the search term is interpreted.
type SearchType string

const (
	SearchByName SearchType = "name"
	SearchByID   SearchType = "id"
)

// ExportSettings is the part of the settings the search view reads when
// exporting a sheet.
type ExportSettings interface {
	GetExportDirectory() string
	GetRevealOnExport() bool
}

// SearchView finds a single character by name or id and exports it as PDF.
type SearchView struct {
	deps     Deps
	exporter *export.Exporter
	settings ExportSettings
	reveal   func(path string) error
	open     func(path string) error

	searchTerm string
	searchType SearchType
	character  *model.Character
	loading    bool
	err        string
	exported   string

	seq int

	entry       *widget.Entry
	typeRadio   *widget.RadioGroup
	searchBtn   *widget.Button
	spinner     *widget.ProgressBarInfinite
	errorText   *widget.Label
	exportText  *widget.Label
	result      *fyne.Container
	downloadBtn *widget.Button
	openBtn     *widget.Button
	content     fyne.CanvasObject
}

// NewSearchView creates the search form. reveal is called with the written
// file when the settings ask for it. open backs the "Open PDF" button shown
// after an export. Either may be nil.
func NewSearchView(deps Deps, exporter *export.Exporter, settings ExportSettings, reveal, open func(string) error) *SearchView {
	deps = deps.withDefaults()
	if exporter == nil {
		exporter = export.NewExporter(deps.Translator, deps.Logger)
	}
	v := &SearchView{
		deps:       deps,
		exporter:   exporter,
		settings:   settings,
		reveal:     reveal,
		open:       open,
		searchType: SearchByName,
	}
	v.createUI()
	v.render()
	return v
}

// Content returns the view body
func (v *SearchView) Content() fyne.CanvasObject {
	return v.content
}

// SetSearchTerm updates the term as if typed into the entry
func (v *SearchView) SetSearchTerm(term string) {
	v.searchTerm = term
	v.entry.SetText(term)
}

// SetSearchType switches between name and id search
func (v *SearchView) SetSearchType(t SearchType) {
	v.searchType = t
	v.typeRadio.SetSelected(v.searchTypeLabel(t))
}

// SearchTerm returns the current term
func (v *SearchView) SearchTerm() string { return v.searchTerm }

// SearchType returns the current mode
func (v *SearchView) SearchType() SearchType { return v.searchType }

// Character returns the found character, nil when none
func (v *SearchView) Character() *model.Character { return v.character }

// Loading reports whether a request is outstanding
func (v *SearchView) Loading() bool { return v.loading }

// Err returns the user-facing error message, empty when none
func (v *SearchView) Err() string { return v.err }

// ExportedPath returns the file written by the last successful export
func (v *SearchView) ExportedPath() string { return v.exported }

// Search runs the lookup for the current term. Blank terms are ignored.
func (v *SearchView) Search() {
	term := strings.TrimSpace(v.searchTerm)
	if term == "" {
		return
	}

	v.seq++
	seq := v.seq
	v.loading = true
	v.err = ""
	v.character = nil
	v.exported = ""
	v.render()

	mode := v.searchType
	logger := v.deps.Logger.With(zap.String("mode", string(mode)), zap.String("term", term))

	if mode == SearchByID {
		id, ok := ParseLeadingInt(term)
		if !ok {
			logger.Debug("search term has no id")
			v.finish(seq, nil, &api.Error{Kind: api.KindNotFound})
			return
		}
		v.deps.dispatch.background(func() {
			ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
			defer cancel()
			c, err := v.deps.Fetcher.GetCharacter(ctx, id)
			if err != nil {
				logger.Warn("search by id failed", zap.Error(err))
				v.deps.dispatch.main(func() { v.finish(seq, nil, err) })
				return
			}
			v.deps.dispatch.main(func() { v.finish(seq, &c, nil) })
		})
		return
	}

	v.deps.dispatch.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		results, err := v.deps.Fetcher.SearchByName(ctx, term)
		if err != nil {
			logger.Warn("search by name failed", zap.Error(err))
			v.deps.dispatch.main(func() { v.finish(seq, nil, err) })
			return
		}
		if len(results) == 0 {
			v.deps.dispatch.main(func() {
				v.finishMessage(seq, v.deps.Translator.Text(i18n.KeyNoMatchByName))
			})
			return
		}
		first := results[0]
		v.deps.dispatch.main(func() { v.finish(seq, &first, nil) })
	})
}

func (v *SearchView) finish(seq int, c *model.Character, err error) {
	if err != nil {
		v.finishMessage(seq, v.deps.Translator.Error(err))
		return
	}
	if seq != v.seq {
		return
	}
	v.loading = false
	v.character = c
	v.render()
}

func (v *SearchView) finishMessage(seq int, msg string) {
	if seq != v.seq {
		return
	}
	v.loading = false
	v.err = msg
	v.render()
}

// DownloadPDF writes the current character's sheet into the export
// directory. Nothing happens when no character is shown.
func (v *SearchView) DownloadPDF() {
	if v.character == nil {
		return
	}
	tr := v.deps.Translator

	dir := ""
	if v.settings != nil {
		dir = v.settings.GetExportDirectory()
	}
	path, err := v.exporter.Save(dir, *v.character)
	if err != nil {
		v.deps.Logger.Error("export failed", zap.Int("character_id", v.character.ID), zap.Error(err))
		v.exported = ""
		v.exportText.SetText(tr.Textf(i18n.KeyExportFailed, err.Error()))
		v.exportText.Show()
		v.openBtn.Hide()
		return
	}

	v.exported = path
	v.exportText.SetText(tr.Textf(i18n.KeyExportSaved, path))
	v.exportText.Show()
	showIf(v.openBtn, v.open != nil)

	if v.reveal != nil && v.settings != nil && v.settings.GetRevealOnExport() {
		if err := v.reveal(path); err != nil {
			v.deps.Logger.Warn("reveal exported file failed", zap.String("path", path), zap.Error(err))
		}
	}
}

// OpenPDF opens the last exported sheet with the default application.
func (v *SearchView) OpenPDF() {
	if v.exported == "" || v.open == nil {
		return
	}
	if err := v.open(v.exported); err != nil {
		v.deps.Logger.Warn("open exported file failed", zap.String("path", v.exported), zap.Error(err))
		v.exportText.SetText(v.deps.Translator.Textf(i18n.KeyOpenFailed, err.Error()))
	}
}

// ParseLeadingInt reads an optionally signed integer prefix, ignoring
// leading whitespace, so "12abc" yields 12. It reports false when there are
// no digits.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (v *SearchView) searchTypeLabel(t SearchType) string {
	if t == SearchByID {
		return v.deps.Translator.Text(i18n.KeySearchByID)
	}
	return v.deps.Translator.Text(i18n.KeySearchByName)
}

func (v *SearchView) createUI() {
	tr := v.deps.Translator

	v.entry = widget.NewEntry()
	v.entry.SetPlaceHolder(tr.Text(i18n.KeySearchPlaceholder))
	v.entry.OnChanged = func(s string) { v.searchTerm = s }
	v.entry.OnSubmitted = func(string) { v.Search() }

	byName := v.searchTypeLabel(SearchByName)
	byID := v.searchTypeLabel(SearchByID)
	v.typeRadio = widget.NewRadioGroup([]string{byName, byID}, func(selected string) {
		if selected == byID {
			v.searchType = SearchByID
		} else {
			v.searchType = SearchByName
		}
	})
	v.typeRadio.Horizontal = true
	v.typeRadio.Required = true
	v.typeRadio.SetSelected(byName)

	v.searchBtn = widget.NewButton(IconSearch+" "+tr.Text(i18n.KeySearch), v.Search)
	v.searchBtn.Importance = widget.HighImportance

	v.spinner = widget.NewProgressBarInfinite()
	v.errorText = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.errorText.Wrapping = fyne.TextWrapWord
	v.exportText = widget.NewLabel("")
	v.exportText.Wrapping = fyne.TextWrapWord

	v.downloadBtn = v.deps.Mobile.CreateMobileButton(IconPDF+" "+tr.Text(i18n.KeyDownloadPDF), v.DownloadPDF)
	v.openBtn = v.deps.Mobile.CreateMobileButton(IconOpen+" "+tr.Text(i18n.KeyOpenPDF), v.OpenPDF)
	v.result = container.NewVBox()

	form := container.NewBorder(nil, nil, nil, v.searchBtn, v.entry)
	pad := v.deps.Mobile.GetMobilePadding()
	v.content = container.NewVScroll(container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), container.NewVBox(
		form,
		v.typeRadio,
		v.spinner,
		v.errorText,
		v.result,
		v.exportText,
		container.NewHBox(v.openBtn),
	)))
}

func (v *SearchView) render() {
	showIf(v.spinner, v.loading)
	if v.loading {
		v.spinner.Start()
	} else {
		v.spinner.Stop()
	}
	enableIf(v.searchBtn, !v.loading)

	v.errorText.SetText(v.err)
	showIf(v.errorText, v.err != "")
	showIf(v.exportText, v.exported != "")
	showIf(v.openBtn, v.exported != "" && v.open != nil)

	v.result.Objects = nil
	if v.character != nil {
		avatar := canvas.NewImageFromResource(AvatarPlaceholder())
		avatar.FillMode = canvas.ImageFillContain
		avatar.SetMinSize(fyne.NewSize(DetailAvatarSize, DetailAvatarSize))
		v.result.Objects = []fyne.CanvasObject{
			newCharacterDetail(*v.character, v.deps.Translator, avatar, v.downloadBtn),
		}
		v.loadAvatar(v.seq, *v.character, avatar)
	}
	v.result.Refresh()
}

func (v *SearchView) loadAvatar(seq int, c model.Character, img *canvas.Image) {
	if c.Image == "" {
		return
	}
	v.deps.dispatch.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), AvatarTimeout)
		defer cancel()
		data, err := v.deps.Fetcher.FetchImage(ctx, c.Image)
		if err != nil {
			v.deps.Logger.Debug("avatar fetch failed", zap.Int("character_id", c.ID), zap.Error(err))
			return
		}
		res := avatarResource(c, data)
		v.deps.dispatch.main(func() {
			if seq != v.seq {
				return
			}
			img.Resource = res
			img.Refresh()
		})
	})
}
