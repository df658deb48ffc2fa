package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cleanSingleLine bool
	newLinesWith    string
	shortenLength   int
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text]",
	Short: "Strip HTML markup",
	Long: `Removes tags, decodes entities and replaces newlines with "<br />",
or with a single space when --single-line is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

var newLinesCmd = &cobra.Command{
	Use:   "newlines [text]",
	Short: "Replace newlines",
	Long:  `Replaces every CRLF, CR and LF with the --with value.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNewLines,
}

var shortenCmd = &cobra.Command{
	Use:   "shorten [text]",
	Short: "Shorten text at a word boundary",
	Long: `Truncates text longer than --length characters back to the last space
and appends "&hellip;". Shorter text is printed unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShorten,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanSingleLine, "single-line", "s", false, "collapse newlines into spaces")
	newLinesCmd.Flags().StringVarP(&newLinesWith, "with", "w", " ", "replacement for each newline")
	shortenCmd.Flags().IntVarP(&shortenLength, "length", "n", 0, "maximum number of characters")
	_ = shortenCmd.MarkFlagRequired("length")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(newLinesCmd)
	rootCmd.AddCommand(shortenCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	formatter, _, err := loadFormatter(cmd.Context())
	if err != nil {
		return err
	}

	result, err := formatter.CleanTags(text, cleanSingleLine)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	writeResult(cmd, result)
	return nil
}

func runNewLines(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	formatter, _, err := loadFormatter(cmd.Context())
	if err != nil {
		return err
	}

	writeResult(cmd, formatter.ReplaceNewLines(text, newLinesWith))
	return nil
}

func runShorten(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	formatter, _, err := loadFormatter(cmd.Context())
	if err != nil {
		return err
	}

	writeResult(cmd, formatter.ShortenText(text, shortenLength))
	return nil
}
