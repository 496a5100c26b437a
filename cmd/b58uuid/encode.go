package main

import (
	"github.com/spf13/cobra"

	"github.com/b58uuid/b58uuid"
)

var encodeFile string

var encodeCmd = &cobra.Command{
	Use:     "encode [uuid]",
	Aliases: []string{"enc"},
	Short:   "Encode a UUID to B58UUID format",
	Long: `Convert a standard UUID (36 characters) to compact B58UUID format
(22 characters). Supports a single UUID argument, batch processing from
stdin, or --file input with one UUID per line.

Examples:
  b58uuid encode 550e8400-e29b-41d4-a716-446655440000
  echo '550e8400-e29b-41d4-a716-446655440000' | b58uuid enc
  b58uuid encode --file uuids.txt`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runConvert(args, encodeFile, b58uuid.Encode)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVarP(&encodeFile, "file", "f", "", "read UUIDs from file (one per line)")
}
