package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsgen",
	Short: "tsgen generates TypeScript client SDK source files from an API schema",
	Long:  "tsgen generates TypeScript client SDK source files from an API schema",
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
