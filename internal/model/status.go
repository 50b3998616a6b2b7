package model

import "strings"

// Status represents the life status of a character as reported by the API.
type Status string

const (
	// StatusAlive means the character is alive
	StatusAlive Status = "Alive"

	// StatusDead means the character is dead
	StatusDead Status = "Dead"

	// StatusUnknown is used when the API does not know the status
	StatusUnknown Status = "unknown"
)

// Display colours for the status badge.
const (
	ColorAlive   = "#55cc44"
	ColorDead    = "#d63d2e"
	ColorUnknown = "#9e9e9e"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Normalize maps any casing of a known status onto its canonical value.
// Unrecognised values collapse to StatusUnknown.
func (s Status) Normalize() Status {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "alive":
		return StatusAlive
	case "dead":
		return StatusDead
	default:
		return StatusUnknown
	}
}

// Color returns the hex colour used to render the status badge
func (s Status) Color() string {
	return StatusColor(string(s))
}

// StatusColor returns the badge colour for a raw status string.
func StatusColor(status string) string {
	switch Status(status).Normalize() {
	case StatusAlive:
		return ColorAlive
	case StatusDead:
		return ColorDead
	default:
		return ColorUnknown
	}
}
