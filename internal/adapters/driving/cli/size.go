package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textfmt/internal/core/domain"
)

var sizePrecision int

var sizeCmd = &cobra.Command{
	Use:   "size [bytes]",
	Short: "Format a byte count as a human-readable size",
	Long: `Divides the byte count by 1024 until it is below 1024 (up to terabytes)
and prints it with a localized unit label. Negative counts print the
localized "not applicable" string; pass them after "--".`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().IntVarP(&sizePrecision, "precision", "p", domain.DefaultPrecision, "decimal digits to keep")
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, args []string) error {
	bytes, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid byte count %q: %w", args[0], domain.ErrInvalidInput)
	}

	formatter, settings, err := loadFormatter(cmd.Context())
	if err != nil {
		return err
	}

	precision := settings.Precision
	if cmd.Flags().Changed("precision") {
		precision = sizePrecision
	}

	writeResult(cmd, formatter.BytesToSize(bytes, precision))
	return nil
}
