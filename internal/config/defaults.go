package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/platform"
)

// Environment overrides
const (
	EnvAPIURL    = "RICKMORTY_API_URL"
	EnvLanguage  = "RICKMORTY_LANG"
	EnvExportDir = "RICKMORTY_EXPORT_DIR"
	EnvTimeout   = "RICKMORTY_TIMEOUT"

	// EnvConfigFile names the optional YAML file read by Load's callers.
	EnvConfigFile = "RICKMORTY_CONFIG"
)

// Defaults holds the bootstrap configuration shared by the GUI and the CLI.
type Defaults struct {
	APIURL         string        `yaml:"api_url"`
	Language       string        `yaml:"language"`
	ExportDir      string        `yaml:"export_dir"`
	Timeout        time.Duration `yaml:"timeout"`
	RevealOnExport bool          `yaml:"reveal_on_export"`
}

// BuiltinDefaults returns the configuration used when nothing is overridden
func BuiltinDefaults() Defaults {
	exportDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		exportDir = os.TempDir()
	}
	return Defaults{
		APIURL:         api.DefaultBaseURL,
		Language:       i18n.DefaultLanguage,
		ExportDir:      exportDir,
		Timeout:        api.DefaultTimeout,
		RevealOnExport: true,
	}
}

// Load builds Defaults from the builtin values, the optional YAML file at
// path, and environment overrides, in that order of precedence.
func Load(path string) (Defaults, error) {
	d := BuiltinDefaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// optional
		case err != nil:
			return Defaults{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &d); err != nil {
				return Defaults{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	d.APIURL = getEnv(EnvAPIURL, d.APIURL)
	d.Language = getEnv(EnvLanguage, d.Language)
	d.ExportDir = getEnv(EnvExportDir, d.ExportDir)

	timeout, err := getEnvDuration(EnvTimeout, d.Timeout)
	if err != nil {
		return Defaults{}, err
	}
	d.Timeout = timeout

	if err := d.Validate(); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// Validate checks the values that would otherwise fail later at runtime
func (d Defaults) Validate() error {
	if err := ValidateAPIURL(d.APIURL); err != nil {
		return err
	}
	if !i18n.IsSupported(d.Language) {
		return fmt.Errorf("unsupported language %q", d.Language)
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", d.Timeout)
	}
	if d.ExportDir == "" {
		return fmt.Errorf("export_dir must not be empty")
	}
	return nil
}

// ValidateAPIURL checks that raw is an absolute http(s) URL
func ValidateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid api_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url must start with http:// or https://")
	}
	if u.Host == "" {
		return fmt.Errorf("api_url must include a host")
	}
	return nil
}

// String returns a one-line summary of the configuration
func (d Defaults) String() string {
	return fmt.Sprintf("Defaults{API: %s, Lang: %s, Export: %s, Timeout: %s}", d.APIURL, d.Language, d.ExportDir, d.Timeout)
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

// getEnvDuration retrieves an environment variable as a duration with a default fallback.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		return d, nil
	}
	return defaultVal, nil
}
