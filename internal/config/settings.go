package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/rickmorty/internal/i18n"
)

// Settings keys for Fyne preferences
const (
	KeyAPIURL         = "api_url"
	KeyLanguage       = "app_language"
	KeyExportDir      = "export_directory"
	KeyTimeoutMillis  = "request_timeout_ms"
	KeyRevealOnExport = "reveal_on_export"
)

// Timeout bounds
const (
	MinTimeout = time.Second
	MaxTimeout = 2 * time.Minute
)

// Settings manages application configuration persisted in Fyne preferences.
// Values that were never set fall back to the bootstrap Defaults.
type Settings struct {
	app      fyne.App
	defaults Defaults
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults Defaults) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// Defaults returns the bootstrap configuration
func (s *Settings) Defaults() Defaults {
	return s.defaults
}

// GetAPIURL returns the configured collection endpoint
func (s *Settings) GetAPIURL() string {
	value := s.app.Preferences().String(KeyAPIURL)
	if value == "" {
		return s.defaults.APIURL
	}
	return value
}

// SetAPIURL sets the collection endpoint. Invalid URLs are rejected.
func (s *Settings) SetAPIURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if err := ValidateAPIURL(raw); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyAPIURL, raw)
	return nil
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return s.defaults.Language
	}
	return lang
}

// SetLanguage sets the application language. Unknown codes are ignored.
func (s *Settings) SetLanguage(lang string) {
	if !i18n.IsSupported(lang) {
		return
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetExportDirectory returns the directory PDF sheets are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		return s.defaults.ExportDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetRequestTimeout returns the per-attempt request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	ms := s.app.Preferences().Int(KeyTimeoutMillis)
	if ms <= 0 {
		return s.defaults.Timeout
	}
	return time.Duration(ms) * time.Millisecond
}

// SetRequestTimeout sets the per-attempt request timeout, clamped to bounds
func (s *Settings) SetRequestTimeout(d time.Duration) {
	if d < MinTimeout {
		d = MinTimeout
	}
	if d > MaxTimeout {
		d = MaxTimeout
	}
	s.app.Preferences().SetInt(KeyTimeoutMillis, int(d/time.Millisecond))
}

// GetRevealOnExport returns whether to reveal exported sheets in the file manager
func (s *Settings) GetRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnExport, s.defaults.RevealOnExport)
}

// SetRevealOnExport sets whether to reveal exported sheets
func (s *Settings) SetRevealOnExport(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnExport, reveal)
}

// GetLanguageOptions returns available language options. The system entry
// is labelled in the current language.
func (s *Settings) GetLanguageOptions() map[string]string {
	options := i18n.LanguageNames()
	options[i18n.LangSystem] = i18n.New(s.GetLanguage()).Text(i18n.KeySystemDefault)
	return options
}
