package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/model"
)

// ListView shows every character as a grid of cards. Paging controls are
// present but the collection is a single page.
type ListView struct {
	deps Deps

	characters  []model.Character
	loading     bool
	err         string
	currentPage int
	totalPages  int

	// seq identifies the latest load; older results are dropped.
	seq int

	grid       *fyne.Container
	cards      []*CharacterCard
	loadingBox *fyne.Container
	spinner    *widget.ProgressBarInfinite
	statusText *widget.Label
	errorText  *widget.Label
	retryBtn   *widget.Button
	errorBox   *fyne.Container
	emptyText  *widget.Label
	prevBtn    *widget.Button
	nextBtn    *widget.Button
	pageLabel  *widget.Label
	content    fyne.CanvasObject
}

// NewListView creates the character list
func NewListView(deps Deps) *ListView {
	v := &ListView{
		deps:        deps.withDefaults(),
		currentPage: 1,
		totalPages:  1,
	}
	v.createUI()
	v.render()
	return v
}

// Start loads the first page.
func (v *ListView) Start() {
	v.Load(v.currentPage)
}

// Content returns the view body
func (v *ListView) Content() fyne.CanvasObject {
	return v.content
}

// Characters returns the loaded characters
func (v *ListView) Characters() []model.Character { return v.characters }

// Loading reports whether a request is outstanding
func (v *ListView) Loading() bool { return v.loading }

// Err returns the user-facing error message, empty when none
func (v *ListView) Err() string { return v.err }

// CurrentPage returns the page last loaded successfully
func (v *ListView) CurrentPage() int { return v.currentPage }

// TotalPages returns the page count
func (v *ListView) TotalPages() int { return v.totalPages }

// Load fetches the characters for page.
func (v *ListView) Load(page int) {
	v.seq++
	seq := v.seq
	v.loading = true
	v.err = ""
	v.render()

	tr := v.deps.Translator
	v.deps.dispatch.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()

		characters, err := v.deps.Fetcher.ListCharacters(ctx)
		v.deps.dispatch.main(func() {
			if seq != v.seq {
				return
			}
			v.loading = false
			if err != nil {
				v.err = tr.Error(err)
				v.deps.Logger.Warn("load characters failed", zap.Int("page", page), zap.Error(err))
				v.render()
				return
			}
			v.characters = characters
			v.currentPage = page
			v.totalPages = 1
			v.deps.Logger.Debug("characters loaded", zap.Int("page", page), zap.Int("count", len(characters)))
			v.render()
			v.loadAvatars(seq)
		})
	})
}

// NextPage loads the following page when there is one.
func (v *ListView) NextPage() {
	if v.currentPage < v.totalPages {
		v.Load(v.currentPage + 1)
	}
}

// PreviousPage loads the preceding page when there is one.
func (v *ListView) PreviousPage() {
	if v.currentPage > 1 {
		v.Load(v.currentPage - 1)
	}
}

// Retry reloads the current page.
func (v *ListView) Retry() {
	v.Load(v.currentPage)
}

func (v *ListView) onGesture(g GestureType) {
	switch g {
	case GestureSwipeLeft:
		v.NextPage()
	case GestureSwipeRight:
		v.PreviousPage()
	case GestureSwipeDown:
		v.Retry()
	}
}

func (v *ListView) createUI() {
	tr := v.deps.Translator

	v.spinner = widget.NewProgressBarInfinite()
	v.statusText = widget.NewLabelWithStyle(tr.Text(i18n.KeyLoading), fyne.TextAlignCenter, fyne.TextStyle{})
	loadingBox := container.NewVBox(v.statusText, v.spinner)

	v.errorText = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.errorText.Wrapping = fyne.TextWrapWord
	v.retryBtn = widget.NewButton(tr.Text(i18n.KeyRetry), v.Retry)
	v.retryBtn.Importance = widget.HighImportance
	v.errorBox = container.NewVBox(v.errorText, container.NewCenter(v.retryBtn))

	v.emptyText = widget.NewLabelWithStyle(tr.Text(i18n.KeyNoCharacters), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	v.grid = v.deps.Mobile.NewCardGrid()

	v.prevBtn = widget.NewButton(tr.Text(i18n.KeyPrevious), v.PreviousPage)
	v.nextBtn = widget.NewButton(tr.Text(i18n.KeyNext), v.NextPage)
	v.pageLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	pager := NewSwipeArea(container.NewBorder(nil, nil, v.prevBtn, v.nextBtn, v.pageLabel), v.onGesture)

	top := container.NewVBox(loadingBox, v.errorBox, v.emptyText)
	v.content = container.NewBorder(top, pager, nil, nil, container.NewVScroll(v.grid))

	loadingBox.Hide()
	v.errorBox.Hide()
	v.emptyText.Hide()
	v.loadingBox = loadingBox
}

func (v *ListView) render() {
	tr := v.deps.Translator

	showIf(v.loadingBox, v.loading)
	if v.loading {
		v.spinner.Start()
	} else {
		v.spinner.Stop()
	}

	v.errorText.SetText(v.err)
	showIf(v.errorBox, v.err != "" && !v.loading)
	showIf(v.emptyText, !v.loading && v.err == "" && len(v.characters) == 0)

	v.cards = v.cards[:0]
	objects := make([]fyne.CanvasObject, 0, len(v.characters))
	for _, c := range v.characters {
		card := NewCharacterCard(c, tr)
		v.cards = append(v.cards, card)
		objects = append(objects, card)
	}
	v.grid.Objects = objects
	v.grid.Refresh()

	v.pageLabel.SetText(tr.Textf(i18n.KeyPageOf, v.currentPage, v.totalPages))
	enableIf(v.prevBtn, !v.loading && v.currentPage > 1)
	enableIf(v.nextBtn, !v.loading && v.currentPage < v.totalPages)
}

// loadAvatars fetches card images with bounded concurrency and applies them
// in one pass on the UI goroutine. Failures keep the placeholder.
func (v *ListView) loadAvatars(seq int) {
	cards := append([]*CharacterCard(nil), v.cards...)
	fetcher := v.deps.Fetcher
	logger := v.deps.Logger
	dispatch := v.deps.dispatch

	dispatch.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), AvatarTimeout)
		defer cancel()

		avatars := make([]fyne.Resource, len(cards))
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(AvatarConcurrency)
		for i, card := range cards {
			c := card.Character()
			if c.Image == "" {
				continue
			}
			g.Go(func() error {
				data, err := fetcher.FetchImage(ctx, c.Image)
				if err != nil {
					logger.Debug("avatar fetch failed", zap.Int("character_id", c.ID), zap.Error(err))
					return nil
				}
				avatars[i] = avatarResource(c, data)
				return nil
			})
		}
		_ = g.Wait()

		dispatch.main(func() {
			if seq != v.seq {
				return
			}
			for i, res := range avatars {
				if res != nil {
					cards[i].SetAvatar(res)
				}
			}
		})
	})
}

func showIf(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

func enableIf(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
