// Package i18n holds the user-facing text of the application in every
// supported language, including the messages rendered for API failures.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Supported languages
const (
	LangSpanish    = "es"
	LangEnglish    = "en"
	LangPortuguese = "pt"
	LangSystem     = "system"

	DefaultLanguage = LangSpanish
)

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyNavCharacters  = "nav_characters"
	KeyNavSearch      = "nav_search"
	KeyFile           = "file"
	KeyView           = "view"
	KeySettings       = "settings"
	KeyLanguage       = "language"
	KeyQuit           = "quit"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyBrowse         = "browse"
	KeySettingsSaved  = "settings_saved"
	KeyAPIURL         = "api_url"
	KeyExportDir      = "export_directory"
	KeyRevealOnExport = "reveal_on_export"
	KeyTimeoutSeconds = "timeout_seconds"
	KeyInvalidURL     = "invalid_url"
	KeySystemDefault  = "system_default"

	KeyLoading      = "loading"
	KeyRetry        = "retry"
	KeyPrevious     = "previous"
	KeyNext         = "next"
	KeyPageOf       = "page_of"
	KeyNoCharacters = "no_characters"

	KeySearchPlaceholder = "search_placeholder"
	KeySearchByName      = "search_by_name"
	KeySearchByID        = "search_by_id"
	KeySearch            = "search"
	KeyDownloadPDF       = "download_pdf"
	KeyNoMatchByName     = "no_match_by_name"
	KeyExportSaved       = "export_saved"
	KeyExportFailed      = "export_failed"
	KeyOpenPDF           = "open_pdf"
	KeyOpenFailed        = "open_failed"

	KeyNotFoundTitle   = "not_found_title"
	KeyNotFoundMessage = "not_found_message"
	KeyGoHome          = "go_home"

	KeyFieldID       = "field_id"
	KeyFieldStatus   = "field_status"
	KeyFieldSpecies  = "field_species"
	KeyFieldType     = "field_type"
	KeyFieldGender   = "field_gender"
	KeyFieldOrigin   = "field_origin"
	KeyFieldLocation = "field_location"

	KeyErrConnection = "err_connection"
	KeyErrNotFound   = "err_not_found"
	KeyErrServer     = "err_server"
	KeyErrStatus     = "err_status"
	KeyErrClient     = "err_client"
	KeyErrUnknown    = "err_unknown"
)

// Localizable is implemented by errors that know which message key describes
// them. Translator.Error renders such errors in the active language.
type Localizable interface {
	MessageKey() string
	MessageArgs() []any
}

// Translator manages UI text translations
type Translator struct {
	mu              sync.RWMutex
	currentLanguage string
}

// New creates a translator for the given language code
func New(lang string) *Translator {
	t := &Translator{currentLanguage: DefaultLanguage}
	t.SetLanguage(lang)
	return t
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (t *Translator) SetLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == LangSystem || lang == "" {
		lang = DefaultLanguage
	}

	if _, exists := texts[lang]; exists {
		t.mu.Lock()
		t.currentLanguage = lang
		t.mu.Unlock()
	}
}

// Language returns the current language code
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentLanguage
}

// Text returns localized text for the given key
func (t *Translator) Text(key string) string {
	return lookup(t.Language(), key)
}

// Textf formats the localized text for key with args
func (t *Translator) Textf(key string, args ...any) string {
	return fmt.Sprintf(t.Text(key), args...)
}

// Error renders err for display. Errors that do not carry a message key fall
// back to the generic unknown-error text.
func (t *Translator) Error(err error) string {
	if err == nil {
		return ""
	}

	var loc Localizable
	if errors.As(err, &loc) {
		return t.Textf(loc.MessageKey(), loc.MessageArgs()...)
	}
	return t.Text(KeyErrUnknown)
}

// Default renders key in the default language. Used where no Translator is
// at hand, for example in error strings.
func Default(key string, args ...any) string {
	return fmt.Sprintf(lookup(DefaultLanguage, key), args...)
}

// IsSupported reports whether lang has a translation table
func IsSupported(lang string) bool {
	if lang == LangSystem {
		return true
	}
	_, ok := texts[lang]
	return ok
}

// Languages returns the supported language codes in a stable order
func Languages() []string {
	codes := make([]string, 0, len(texts))
	for code := range texts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageNames returns map of available languages with their display names
func LanguageNames() map[string]string {
	return map[string]string{
		LangSpanish:    "Español",
		LangEnglish:    "English",
		LangPortuguese: "Português",
	}
}

func lookup(lang, key string) string {
	if table, exists := texts[lang]; exists {
		if text, found := table[key]; found {
			return text
		}
	}

	// Fallback to the default language
	if text, found := texts[DefaultLanguage][key]; found {
		return text
	}

	// Final fallback - return key itself
	return key
}
