package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/library"
)

func init() {
	rootCmd.AddCommand(refreshCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the .enl.backup snapshot",
	Long: `Re-copy the library file over the snapshot. Only effective with
--use-backup; otherwise the refresh is skipped. Close EndNote before
refreshing, or the copy can fail on the locked library file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := library.New(cfg, slog.Default())
		return outputJSON(lib.RefreshBackup())
	},
}
