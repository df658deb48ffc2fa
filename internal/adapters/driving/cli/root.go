package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textfmt/internal/core/domain"
	"github.com/custodia-labs/textfmt/internal/core/ports/driving"
	"github.com/custodia-labs/textfmt/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var (
	verbose   bool
	configDir string
	langFlag  string
)

// Wiring connects the CLI to adapters constructed by main.
type Wiring struct {
	// OpenSettings opens the settings service backed by configDir.
	// An empty configDir selects the default location.
	OpenSettings func(configDir string) (driving.SettingsService, error)

	// NewFormatter builds a formatter for the given settings.
	NewFormatter func(ctx context.Context, settings *domain.FormatSettings) (driving.TextFormatter, error)

	// Languages lists the languages with a message catalogue. Optional.
	Languages func() []string
}

var wiring Wiring

var rootCmd = &cobra.Command{
	Use:   "textfmt",
	Short: "Normalize text for display",
	Long: `textfmt converts byte counts to human-readable sizes, strips HTML,
replaces newlines, shortens text at word boundaries and resolves
multilang spans down to the active language.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.textfmt)")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "active language code, overrides configuration")
}

// SetWiring installs the adapter constructors used by commands.
func SetWiring(w Wiring) {
	wiring = w
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Cancelling ctx aborts language resolution.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// openSettings returns the settings service.
func openSettings() (driving.SettingsService, error) {
	if wiring.OpenSettings == nil {
		return nil, errors.New("settings service not configured")
	}
	service, err := wiring.OpenSettings(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}
	return service, nil
}

// loadSettings returns stored settings with the --lang override applied.
func loadSettings() (*domain.FormatSettings, error) {
	service, err := openSettings()
	if err != nil {
		return nil, err
	}

	settings, err := service.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if langFlag != "" {
		settings.Language = langFlag
	}
	return settings, nil
}

// loadFormatter builds a formatter from the current settings.
func loadFormatter(ctx context.Context) (driving.TextFormatter, *domain.FormatSettings, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	if wiring.NewFormatter == nil {
		return nil, nil, errors.New("formatter not configured")
	}

	formatter, err := wiring.NewFormatter(ctx, settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build formatter: %w", err)
	}
	return formatter, settings, nil
}
