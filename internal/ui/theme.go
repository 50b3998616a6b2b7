package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand colours of the portal gradient used in the navigation bar.
const (
	GradientStartHex = "#667eea"
	GradientEndHex   = "#764ba2"
)

// PortalTheme is a compact theme with the portal-purple primary colour.
type PortalTheme struct{}

// NewPortalTheme creates the application theme
func NewPortalTheme() fyne.Theme {
	return &PortalTheme{}
}

// Color returns theme colors
func (t *PortalTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return mustHexColor("#55cc44")
	case theme.ColorNameError:
		return mustHexColor("#d63d2e")
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return mustHexColor(GradientStartHex)
	case theme.ColorNameHyperlink:
		return mustHexColor(GradientEndHex)
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 22, B: 34, A: 255}
		}
		return color.RGBA{R: 246, G: 246, B: 252, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PortalTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PortalTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *PortalTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseHexColor(hex string) (color.NRGBA, error) {
	c := color.NRGBA{A: 255}
	var err error
	switch len(hex) {
	case 7:
		_, err = fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(hex, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid hex colour %q", hex)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return c, nil
}

func mustHexColor(hex string) color.NRGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
