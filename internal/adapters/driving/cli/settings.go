package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage formatting defaults",
	Long: `View and change the defaults stored in the configuration file.

Keys:
  format.language        active language code (empty: detect from LANG)
  format.precision       decimal digits for sizes
  format.renderer        markup renderer: html or strict
  format.clean           format strips markup by default
  format.single_line     cleaning collapses newlines into spaces
  format.shorten_length  format shortens to this length by default`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	language := settings.Language
	if language == "" {
		language = "(detect from environment)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "  Language:       %s\n", language)
	fmt.Fprintf(out, "  Precision:      %d\n", settings.Precision)
	fmt.Fprintf(out, "  Renderer:       %s\n", settings.Renderer.Description())
	fmt.Fprintf(out, "  Clean:          %t\n", settings.Clean)
	fmt.Fprintf(out, "  Single line:    %t\n", settings.SingleLine)
	fmt.Fprintf(out, "  Shorten length: %d\n", settings.ShortenLength)

	if wiring.Languages != nil {
		langs := slices.Sorted(slices.Values(wiring.Languages()))
		fmt.Fprintf(out, "  Catalogues:     %s\n", strings.Join(langs, ", "))
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	service, err := openSettings()
	if err != nil {
		return err
	}

	if err := service.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
	return nil
}
