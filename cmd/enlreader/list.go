package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/library"
	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/storage"
)

var (
	listOffset int
	listLimit  int
)

func init() {
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Starting index of the page")
	listCmd.Flags().IntVar(&listLimit, "limit", storage.DefaultPageSize, "Number of results per page")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List references with pagination, most recently added first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := library.New(cfg, slog.Default())
		return outputJSON(lib.ListPapers(listOffset, listLimit))
	},
}
