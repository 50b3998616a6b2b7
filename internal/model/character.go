package model

import (
	"path/filepath"
	"strings"
	"unicode"
)

// PDFExtension is appended to exported character sheets
const PDFExtension = ".pdf"

// Location is a named reference to an origin or current location
type Location struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Character represents a single show character as returned by the API
type Character struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Status   Status   `json:"status"`
	Species  string   `json:"species"`
	Type     string   `json:"type"` // optional sub-type, often empty
	Gender   string   `json:"gender"`
	Origin   Location `json:"origin"`
	Location Location `json:"location"`
	Image    string   `json:"image"`

	// Present on the public API, ignored by the views
	Episode []string `json:"episode,omitempty"`
	URL     string   `json:"url,omitempty"`
	Created string   `json:"created,omitempty"`
}

// HasType reports whether the optional sub-type is set
func (c *Character) HasType() bool {
	return strings.TrimSpace(c.Type) != ""
}

// FileName returns the file name of the exported sheet: the display name
// with every run of whitespace, path separators and characters that are not
// allowed in file names replaced by a single underscore. The result never
// contains a directory component.
func (c *Character) FileName() string {
	var b strings.Builder
	inRun := false
	for _, r := range c.Name {
		if unicode.IsSpace(r) || isUnsafeFileRune(r) {
			if !inRun {
				b.WriteByte('_')
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}

	base := filepath.Base(b.String())
	if base == "." || base == ".." || base == string(filepath.Separator) {
		base = strings.Repeat("_", len(base))
	}
	return base + PDFExtension
}

// isUnsafeFileRune reports runes that are separators or reserved in file
// names on any supported platform.
func isUnsafeFileRune(r rune) bool {
	switch r {
	case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
		return true
	}
	return unicode.IsControl(r)
}

// Page is the paginated envelope used by the public API for collections
type Page struct {
	Info    PageInfo    `json:"info"`
	Results []Character `json:"results"`
}

// PageInfo describes the collection a Page belongs to
type PageInfo struct {
	Count int    `json:"count"`
	Pages int    `json:"pages"`
	Next  string `json:"next"`
	Prev  string `json:"prev"`
}
