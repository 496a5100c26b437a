package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/b58uuid/b58uuid"
)

var validateCmd = &cobra.Command{
	Use:     "validate <value>",
	Aliases: []string{"val"},
	Short:   "Validate UUID or B58UUID format",
	Long: `Check whether the input is a valid UUID or B58UUID and display the
value in both formats. Exits 0 for valid input and 1 for invalid input.

Examples:
  b58uuid validate 550e8400-e29b-41d4-a716-446655440000
  b58uuid val BWBeN28Vb7cMEx7Ym8AUzs
  b58uuid validate invalid-format   # exit code 1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		value := strings.TrimSpace(args[0])

		info, ok := b58uuid.Validate(value)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s Invalid format\n", errorColor.Sprint("✗"))
			fmt.Fprintf(os.Stderr, "  Value: %s\n", value)
			fmt.Fprintf(os.Stderr, "  Expected: UUID (36 chars) or B58UUID (22 chars)\n")
			os.Exit(1)
		}

		fmt.Printf("%s Valid %s\n", okColor.Sprint("✓"), info.Kind)
		if info.Kind == "B58UUID" {
			fmt.Printf("  B58UUID: %s\n", detailColor.Sprint(info.B58UUID))
			fmt.Printf("  UUID:    %s\n", detailColor.Sprint(info.UUID))
		} else {
			fmt.Printf("  UUID:    %s\n", detailColor.Sprint(info.UUID))
			fmt.Printf("  B58UUID: %s\n", detailColor.Sprint(info.B58UUID))
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
