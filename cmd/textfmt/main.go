// Command textfmt normalizes text for display.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/textfmt/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textfmt/internal/adapters/driven/i18n"
	"github.com/custodia-labs/textfmt/internal/adapters/driven/language"
	"github.com/custodia-labs/textfmt/internal/adapters/driven/renderer"
	"github.com/custodia-labs/textfmt/internal/adapters/driving/cli"
	"github.com/custodia-labs/textfmt/internal/core/domain"
	"github.com/custodia-labs/textfmt/internal/core/ports/driving"
	"github.com/custodia-labs/textfmt/internal/core/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bundle, err := i18n.NewBundle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli.SetVersion(version)
	cli.SetWiring(cli.Wiring{
		OpenSettings: openSettings,
		Languages:    bundle.Languages,
		NewFormatter: func(ctx context.Context, settings *domain.FormatSettings) (driving.TextFormatter, error) {
			return newFormatter(ctx, bundle, settings)
		},
	})

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func openSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

// newFormatter builds a formatter whose translator is bound to the
// language active at startup. settings.Language carries the configured
// value with any --lang override applied.
func newFormatter(
	ctx context.Context,
	bundle *i18n.Bundle,
	settings *domain.FormatSettings,
) (driving.TextFormatter, error) {
	resolver := language.NewResolver(settings.Language)

	code, err := resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve language: %w", err)
	}

	markup, err := renderer.New(settings.Renderer)
	if err != nil {
		return nil, err
	}

	return services.NewFormatter(resolver, bundle.ForLanguage(code), markup), nil
}
