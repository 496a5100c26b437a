package main

import (
	"github.com/spf13/cobra"

	"github.com/b58uuid/b58uuid"
)

var decodeFile string

var decodeCmd = &cobra.Command{
	Use:     "decode [b58uuid]",
	Aliases: []string{"dec"},
	Short:   "Decode a B58UUID to standard UUID format",
	Long: `Convert a B58UUID (22 characters) back to standard UUID format
(36 characters). Supports a single B58UUID argument, batch processing from
stdin, or --file input with one B58UUID per line.

Examples:
  b58uuid decode BWBeN28Vb7cMEx7Ym8AUzs
  echo 'BWBeN28Vb7cMEx7Ym8AUzs' | b58uuid dec
  b58uuid decode --file b58uuids.txt`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runConvert(args, decodeFile, b58uuid.Decode)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "read B58UUIDs from file (one per line)")
}
