package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/rickmorty/internal/i18n"
)

func testDefaults() Defaults {
	return Defaults{
		APIURL:         "http://localhost:8080/api/characters",
		Language:       i18n.LangSpanish,
		ExportDir:      "/tmp/exports",
		Timeout:        10 * time.Second,
		RevealOnExport: true,
	}
}

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testDefaults())

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
	if settings.Defaults().APIURL != testDefaults().APIURL {
		t.Error("Settings should keep the bootstrap defaults")
	}
}

func TestAPIURL(t *testing.T) {
	settings := NewSettings(test.NewApp(), testDefaults())

	if got := settings.GetAPIURL(); got != testDefaults().APIURL {
		t.Errorf("Expected default API URL %s, got %s", testDefaults().APIURL, got)
	}

	custom := "https://rickandmortyapi.com/api/character"
	if err := settings.SetAPIURL(custom); err != nil {
		t.Fatalf("SetAPIURL: %v", err)
	}
	if got := settings.GetAPIURL(); got != custom {
		t.Errorf("Expected API URL %s, got %s", custom, got)
	}

	if err := settings.SetAPIURL("not a url"); err == nil {
		t.Error("Expected invalid URL to be rejected")
	}
	if got := settings.GetAPIURL(); got != custom {
		t.Errorf("Rejected URL must not be stored, got %s", got)
	}
}

func TestExportDirectory(t *testing.T) {
	settings := NewSettings(test.NewApp(), testDefaults())

	if dir := settings.GetExportDirectory(); dir != "/tmp/exports" {
		t.Errorf("Expected default export dir, got %s", dir)
	}

	settings.SetExportDirectory("/custom/sheets")
	if dir := settings.GetExportDirectory(); dir != "/custom/sheets" {
		t.Errorf("Expected /custom/sheets, got %s", dir)
	}

	settings.SetExportDirectory("  ")
	if dir := settings.GetExportDirectory(); dir != "/custom/sheets" {
		t.Errorf("Blank dir must be ignored, got %s", dir)
	}
}

func TestRequestTimeout(t *testing.T) {
	settings := NewSettings(test.NewApp(), testDefaults())

	if got := settings.GetRequestTimeout(); got != 10*time.Second {
		t.Errorf("Expected default timeout 10s, got %s", got)
	}

	settings.SetRequestTimeout(5 * time.Second)
	if got := settings.GetRequestTimeout(); got != 5*time.Second {
		t.Errorf("Expected 5s, got %s", got)
	}

	settings.SetRequestTimeout(time.Millisecond)
	if got := settings.GetRequestTimeout(); got != MinTimeout {
		t.Errorf("Timeout should be clamped to %s, got %s", MinTimeout, got)
	}

	settings.SetRequestTimeout(time.Hour)
	if got := settings.GetRequestTimeout(); got != MaxTimeout {
		t.Errorf("Timeout should be clamped to %s, got %s", MaxTimeout, got)
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp(), testDefaults())

	if lang := settings.GetLanguage(); lang != i18n.LangSpanish {
		t.Errorf("Expected default language es, got %s", lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}

	settings.SetLanguage("xx")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Unknown language must be ignored, got %s", lang)
	}
}

func TestRevealOnExport(t *testing.T) {
	settings := NewSettings(test.NewApp(), testDefaults())

	if !settings.GetRevealOnExport() {
		t.Error("Expected reveal-on-export to default to true")
	}

	settings.SetRevealOnExport(false)
	if settings.GetRevealOnExport() {
		t.Error("Expected reveal-on-export to be false after setting")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	settings := NewSettings(test.NewApp(), testDefaults())

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "es", "en", "pt"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
	if got := options[i18n.LangSystem]; got != "Predeterminado del sistema" {
		t.Errorf("Expected Spanish system label, got %q", got)
	}

	settings.SetLanguage(i18n.LangEnglish)
	if got := settings.GetLanguageOptions()[i18n.LangSystem]; got != "System Default" {
		t.Errorf("Expected English system label, got %q", got)
	}

	settings.SetLanguage(i18n.LangPortuguese)
	if got := settings.GetLanguageOptions()[i18n.LangSystem]; got != "Padrão do sistema" {
		t.Errorf("Expected Portuguese system label, got %q", got)
	}
}
