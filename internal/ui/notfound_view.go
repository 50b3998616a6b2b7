package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/rickmorty/internal/i18n"
)

// NotFoundView is shown for unknown routes.
type NotFoundView struct {
	deps    Deps
	homeBtn *widget.Button
	content fyne.CanvasObject
}

// NewNotFoundView creates the static not-found page
func NewNotFoundView(deps Deps) *NotFoundView {
	v := &NotFoundView{deps: deps.withDefaults()}
	tr := v.deps.Translator

	title := canvas.NewText(tr.Text(i18n.KeyNotFoundTitle), theme.Color(theme.ColorNamePrimary))
	title.TextSize = NotFoundSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	message := widget.NewLabelWithStyle(IconPortal+" "+tr.Text(i18n.KeyNotFoundMessage), fyne.TextAlignCenter, fyne.TextStyle{})
	message.Wrapping = fyne.TextWrapWord

	v.homeBtn = widget.NewButton(IconHome+" "+tr.Text(i18n.KeyGoHome), v.GoHome)
	v.homeBtn.Importance = widget.HighImportance

	v.content = container.NewCenter(container.NewVBox(title, message, container.NewCenter(v.homeBtn)))
	return v
}

// Content returns the view body
func (v *NotFoundView) Content() fyne.CanvasObject {
	return v.content
}

// GoHome navigates back to the character list.
func (v *NotFoundView) GoHome() {
	v.deps.Navigate(RouteHome)
}
