package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/b58uuid/b58uuid"
)

var (
	generateCount  int
	generateAsUUID bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate random B58UUIDs or UUIDs",
	Long: `Generate one or more random version 4 UUIDs, printed in B58UUID
format by default or in standard UUID format with --uuid.

Examples:
  b58uuid generate              # one B58UUID
  b58uuid gen -n 5              # five B58UUIDs
  b58uuid gen --uuid            # one standard UUID
  b58uuid gen -n 5 --uuid       # five standard UUIDs`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		count := generateCount
		if !cmd.Flags().Changed("count") {
			count = viper.GetInt("generate_count")
		}
		for i := 0; i < count; i++ {
			if generateAsUUID {
				fmt.Println(resultColor.Sprint(b58uuid.GenerateUUID()))
			} else {
				fmt.Println(resultColor.Sprint(b58uuid.Generate()))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of values to generate")
	generateCmd.Flags().BoolVarP(&generateAsUUID, "uuid", "u", false, "output standard UUID format instead of B58UUID")
}
