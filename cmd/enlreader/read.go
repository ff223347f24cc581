package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/library"
)

func init() {
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:   "read <title>",
	Short: "Fetch a paper's metadata and full PDF text by fuzzy title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := library.New(cfg, slog.Default())
		return outputJSON(lib.ReadPaper(args[0]))
	},
}
