package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/config"
	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/logging"
	"github.com/ytget/rickmorty/internal/platform"
	"github.com/ytget/rickmorty/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// cli holds the global flags and the objects built from them before a
// command runs.
type cli struct {
	configPath string
	apiURL     string
	lang       string
	verbose    bool

	logger     *zap.Logger
	defaults   config.Defaults
	translator *i18n.Translator

	// runGUI and openFile are swapped in tests
	runGUI   func(config.Defaults, *zap.Logger) error
	openFile func(string) error
}

func newRootCmd() *cobra.Command {
	return newRootCommand(&cli{runGUI: ui.Run, openFile: platform.OpenFileWithDefaultApp})
}

// newRootCommand builds the command tree around c. A logger already set on c
// is kept.
func newRootCommand(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "rickmorty",
		Short:   "Browse and search Rick and Morty characters",
		Version: version,
		Long: `rickmorty browses the characters exposed by a Rick and Morty REST API.

Run without arguments to open the desktop application. The subcommands
query the same API from the terminal and export character sheets as PDF.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGUI(c.defaults, c.logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", os.Getenv(config.EnvConfigFile), "YAML config file")
	rootCmd.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "Characters endpoint (default "+api.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&c.lang, "lang", "", "Message language: es, en or pt")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(c.listCmd())
	rootCmd.AddCommand(c.getCmd())
	rootCmd.AddCommand(c.searchCmd())
	rootCmd.AddCommand(c.exportCmd())
	return rootCmd
}

// setup builds the logger and resolves configuration: builtin values, the
// YAML file, the environment and finally explicit flags.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if c.logger == nil {
		logger, err := logging.New(c.verbose)
		if err != nil {
			return err
		}
		c.logger = logger
	}

	defaults, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.apiURL != "" {
		if err := config.ValidateAPIURL(c.apiURL); err != nil {
			return err
		}
		defaults.APIURL = c.apiURL
	}
	if c.lang != "" {
		if !i18n.IsSupported(c.lang) {
			return fmt.Errorf("unsupported language %q", c.lang)
		}
		defaults.Language = c.lang
	}

	c.defaults = defaults
	c.translator = i18n.New(defaults.Language)
	c.logger.Debug("configuration resolved", zap.String("config", defaults.String()))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
