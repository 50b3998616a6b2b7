package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/rickmorty/internal/model"
)

const (
	AppIcon = "rickmorty.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// AvatarPlaceholder is shown until a character image has been fetched, and
// in its place when the fetch fails.
func AvatarPlaceholder() fyne.Resource {
	return theme.AccountIcon()
}

// avatarResource wraps downloaded image bytes in a named static resource.
func avatarResource(c model.Character, data []byte) fyne.Resource {
	return fyne.NewStaticResource(fmt.Sprintf("avatar-%d", c.ID), data)
}
