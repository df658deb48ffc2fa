package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	formatClean      bool
	formatSingleLine bool
	formatLength     int
)

var formatCmd = &cobra.Command{
	Use:   "format [text]",
	Short: "Resolve multilang spans, then optionally clean and shorten",
	Long: `Runs the format pipeline: multilang spans are resolved for the active
language, then markup is stripped when --clean is set, then the result is
shortened when --length is positive. Unset flags fall back to the
format.clean, format.single_line and format.shorten_length settings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

var multilangCmd = &cobra.Command{
	Use:   "multilang [text]",
	Short: "Keep only spans of the active language",
	Long: `Unwraps <span lang="..."> and <lang lang="..."> blocks of the active
language and deletes the blocks of every other language.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMultilang,
}

func init() {
	formatCmd.Flags().BoolVarP(&formatClean, "clean", "c", false, "strip markup after resolving")
	formatCmd.Flags().BoolVarP(&formatSingleLine, "single-line", "s", false, "collapse newlines into spaces when cleaning")
	formatCmd.Flags().IntVarP(&formatLength, "length", "n", 0, "shorten to this many characters (0 disables)")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(multilangCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	formatter, settings, err := loadFormatter(ctx)
	if err != nil {
		return err
	}

	opts := settings.Options()
	flags := cmd.Flags()
	if flags.Changed("clean") {
		opts.Clean = formatClean
	}
	if flags.Changed("single-line") {
		opts.SingleLine = formatSingleLine
	}
	if flags.Changed("length") {
		opts.ShortenLength = formatLength
	}

	result, err := formatter.FormatText(ctx, text, opts)
	if err != nil {
		return fmt.Errorf("format failed: %w", err)
	}

	writeResult(cmd, result)
	return nil
}

func runMultilang(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	formatter, _, err := loadFormatter(ctx)
	if err != nil {
		return err
	}

	result, err := formatter.TreatMultilangTags(ctx, text)
	if err != nil {
		return fmt.Errorf("multilang failed: %w", err)
	}

	writeResult(cmd, result)
	return nil
}
