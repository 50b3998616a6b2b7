package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	isMobile func() bool
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI() *MobileUI {
	return &MobileUI{isMobile: func() bool {
		return fyne.CurrentDevice().IsMobile()
	}}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile()
}

// CardSize returns the character card size for the current device.
// Phones get a single wider column.
func (m *MobileUI) CardSize() fyne.Size {
	if m.IsMobileDevice() {
		return fyne.NewSize(MobileCardWidth, MobileCardHeight)
	}
	return fyne.NewSize(CardWidth, CardHeight)
}

// NewCardGrid creates the wrapping grid the character cards are laid out in.
func (m *MobileUI) NewCardGrid(objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewGridWrap(m.CardSize(), objects...)
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	if m.IsMobileDevice() {
		btn.Importance = widget.HighImportance
	}
	return btn
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20
	}
	return 10
}
