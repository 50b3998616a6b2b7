package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/model"
)

// StatusColor returns the dot colour for a character status.
func StatusColor(status model.Status) color.Color {
	c, err := ParseHexColor(status.Color())
	if err != nil {
		return mustHexColor(model.ColorUnknown)
	}
	return c
}

// statusDot draws the small coloured circle next to a status.
func statusDot(status model.Status) *canvas.Circle {
	dot := canvas.NewCircle(StatusColor(status))
	dot.Resize(fyne.NewSize(StatusDotSize, StatusDotSize))
	return dot
}

// statusLine builds the "● Alive · Human" row.
func statusLine(c model.Character) fyne.CanvasObject {
	dot := statusDot(c.Status)
	label := widget.NewLabel(c.Status.String() + MiddleDotSeparator + c.Species)
	label.Truncation = fyne.TextTruncateEllipsis
	dotBox := container.NewCenter(container.NewGridWrap(fyne.NewSize(StatusDotSize, StatusDotSize), dot))
	return container.NewBorder(nil, nil, dotBox, nil, label)
}

// CharacterCard is a grid tile for one character.
type CharacterCard struct {
	widget.BaseWidget

	character  model.Character
	translator *i18n.Translator

	avatar        *canvas.Image
	nameLabel     *widget.Label
	locationLabel *widget.Label
	content       fyne.CanvasObject
}

// NewCharacterCard creates a card showing the placeholder avatar until
// SetAvatar is called.
func NewCharacterCard(c model.Character, translator *i18n.Translator) *CharacterCard {
	cc := &CharacterCard{
		character:  c,
		translator: translator,
	}
	cc.ExtendBaseWidget(cc)
	cc.createUI()
	return cc
}

// Character returns the character the card shows
func (cc *CharacterCard) Character() model.Character {
	return cc.character
}

// SetAvatar replaces the placeholder with the downloaded image.
func (cc *CharacterCard) SetAvatar(res fyne.Resource) {
	cc.avatar.Resource = res
	cc.avatar.Refresh()
}

// Avatar returns the current avatar resource
func (cc *CharacterCard) Avatar() fyne.Resource {
	return cc.avatar.Resource
}

func (cc *CharacterCard) createUI() {
	cc.avatar = canvas.NewImageFromResource(AvatarPlaceholder())
	cc.avatar.FillMode = canvas.ImageFillContain
	cc.avatar.SetMinSize(fyne.NewSize(AvatarSize, AvatarSize))

	cc.nameLabel = widget.NewLabel(cc.character.Name)
	cc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	cc.nameLabel.Truncation = fyne.TextTruncateEllipsis

	cc.locationLabel = widget.NewLabel(cc.translator.Text(i18n.KeyFieldLocation) + ": " + cc.character.Location.Name)
	cc.locationLabel.Truncation = fyne.TextTruncateEllipsis

	info := container.NewVBox(cc.nameLabel, statusLine(cc.character), cc.locationLabel)
	cc.content = widget.NewCard("", "", container.NewBorder(nil, info, nil, nil, cc.avatar))
}

// CreateRenderer creates the widget renderer
func (cc *CharacterCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cc.content)
}

// detailRows returns the label/value pairs shown on the search result card.
// Type is listed only when the character has one.
func detailRows(c model.Character, tr *i18n.Translator) [][2]string {
	rows := [][2]string{
		{tr.Text(i18n.KeyFieldID), strconv.Itoa(c.ID)},
		{tr.Text(i18n.KeyFieldStatus), c.Status.String()},
		{tr.Text(i18n.KeyFieldSpecies), c.Species},
		{tr.Text(i18n.KeyFieldGender), c.Gender},
		{tr.Text(i18n.KeyFieldOrigin), c.Origin.Name},
		{tr.Text(i18n.KeyFieldLocation), c.Location.Name},
	}
	if c.HasType() {
		rows = append(rows, [2]string{tr.Text(i18n.KeyFieldType), c.Type})
	}
	return rows
}

// newCharacterDetail builds the full result card used by the search view.
func newCharacterDetail(c model.Character, tr *i18n.Translator, avatar *canvas.Image, actions fyne.CanvasObject) fyne.CanvasObject {
	form := container.New(layout.NewFormLayout())
	for _, row := range detailRows(c, tr) {
		label := widget.NewLabel(row[0] + ":")
		label.TextStyle = fyne.TextStyle{Bold: true}
		value := widget.NewLabel(row[1])
		value.Wrapping = fyne.TextWrapWord
		form.Add(label)
		form.Add(value)
	}
	title := widget.NewLabelWithStyle(c.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	dot := container.NewCenter(container.NewGridWrap(fyne.NewSize(StatusDotSize, StatusDotSize), statusDot(c.Status)))
	header := container.NewBorder(nil, nil, dot, nil, title)
	body := container.NewVBox(header, form, actions)
	return widget.NewCard("", "", container.NewBorder(nil, nil, avatar, nil, body))
}
