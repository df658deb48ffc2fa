package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textfmt/internal/adapters/driven/i18n"
	"github.com/custodia-labs/textfmt/internal/adapters/driven/language"
	"github.com/custodia-labs/textfmt/internal/adapters/driven/renderer"
	"github.com/custodia-labs/textfmt/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textfmt/internal/core/domain"
	"github.com/custodia-labs/textfmt/internal/core/ports/driving"
	"github.com/custodia-labs/textfmt/internal/core/services"
	"github.com/custodia-labs/textfmt/internal/logger"
)

// setupTestServices wires the CLI to in-memory settings seeded with seed.
// Formatters resolve English when no language is configured, so the
// environment locale never leaks into results.
func setupTestServices(t *testing.T, seed map[string]any) *memory.ConfigStore {
	t.Helper()

	store := memory.NewConfigStoreWith(seed)
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)

	SetWiring(Wiring{
		OpenSettings: func(string) (driving.SettingsService, error) {
			return services.NewSettingsService(store), nil
		},
		Languages: bundle.Languages,
		NewFormatter: func(_ context.Context, settings *domain.FormatSettings) (driving.TextFormatter, error) {
			lang := settings.Language
			if lang == "" {
				lang = "en"
			}
			markup, err := renderer.New(settings.Renderer)
			if err != nil {
				return nil, err
			}
			return services.NewFormatter(language.NewResolver(lang), bundle.ForLanguage(lang), markup), nil
		},
	})

	t.Cleanup(resetRoot)
	return store
}

// resetRoot clears wiring, IO and every flag between tests.
func resetRoot() {
	SetWiring(Wiring{})
	resetFlags(rootCmd)
	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	logger.SetVerbose(false)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command with args and stdin, returning combined output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
