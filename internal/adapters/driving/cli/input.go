package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errNoInput is returned when no text argument is given and stdin is a terminal.
var errNoInput = errors.New("no text given: pass it as an argument or pipe it on stdin")

// readText returns the positional argument, or stdin when there is none.
// A single trailing newline from stdin is dropped.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoInput
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// writeResult prints result on stdout.
func writeResult(cmd *cobra.Command, result string) {
	fmt.Fprintln(cmd.OutOrStdout(), result)
}
