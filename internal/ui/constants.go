package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconHome     = "🏠"
	IconPDF      = "📄"
	IconOpen     = "📂"
	IconPortal   = "🌀"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	CardWidth        float32 = 220
	CardHeight       float32 = 330
	MobileCardWidth  float32 = 300
	MobileCardHeight float32 = 360
	AvatarSize       float32 = 180
	DetailAvatarSize float32 = 240
	StatusDotSize    float32 = 10
	NavTitleSize     float32 = 28
	NotFoundSize     float32 = 96

	WindowWidth  float32 = 1100
	WindowHeight float32 = 760
)

// Request limits
const (
	LoadTimeout       = 45 * time.Second
	AvatarTimeout     = 20 * time.Second
	AvatarConcurrency = 4
)

// Routes
const (
	RouteHome   = "/"
	RouteSearch = "/search"
)
