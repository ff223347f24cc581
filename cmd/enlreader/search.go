package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/library"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search references by title",
	Long: `Search references whose title contains the query as a
case-insensitive substring. Non-Latin scripts match byte for byte.
An empty query matches every reference.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := library.New(cfg, slog.Default())
		return outputJSON(lib.SearchPapers(args[0]))
	},
}
