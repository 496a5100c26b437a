package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "b58uuid",
	Short: "Compact Base58 UUID encoder - convert UUIDs to 22-character format",
	Long: `b58uuid converts standard UUIDs (36 characters) to compact Base58
format (22 characters). This reduces storage size by 39% while keeping
values URL-safe and readable.

The tool supports encoding, decoding, generation, and validation of both
UUID and B58UUID formats. Batch processing reads one value per line from
stdin or a file.

Commands:
  encode      Encode a UUID to B58UUID format (alias: enc)
  decode      Decode a B58UUID to UUID format (alias: dec)
  generate    Generate random B58UUIDs or UUIDs (alias: gen)
  validate    Validate a UUID or B58UUID (alias: val)`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || viper.GetBool("no_color") {
			color.NoColor = true
		}
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output for piping or logging")
}
