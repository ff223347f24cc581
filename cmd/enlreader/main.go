// Package main provides the enlreader entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/config"
	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/snapshot"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var (
	cfgFile    string
	enlFile    string
	dataFolder string
	useBackup  bool
	enableLog  bool
	addr       string

	// cfg is built once in setup and injected into every component.
	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "enlreader",
	Short: "Read-only access to an EndNote reference library",
	Long: `enlreader answers paginated listing, fuzzy title search, and
metadata-plus-full-text queries against an EndNote .enl library.

Running without a subcommand starts the HTTP dispatch layer binding the
four operations: list_papers, search_papers, read_paper, refresh_backup.
The subcommands run the same operations directly and print JSON.

With --use-backup all reads target a .enl.backup snapshot, refreshed once
at startup, so the live EndNote application keeps exclusive access to the
original file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runServe,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	pf.StringVarP(&enlFile, "enl-file", "e", "", "Path to the EndNote .enl file")
	pf.StringVarP(&dataFolder, "data-folder", "d", "", "Path to the EndNote .Data folder")
	pf.BoolVarP(&useBackup, "use-backup", "b", false, "Use a .enl.backup snapshot for all reads")
	pf.BoolVarP(&enableLog, "enable-log", "l", false, "Enable detailed log output")

	rootCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "Listen address for the HTTP dispatch layer")
	rootCmd.Version = Version
}

// setup builds the process configuration with precedence: defaults, YAML
// file, .env and environment variables, then explicit flags.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if enlFile != "" {
		c.LibraryPath = enlFile
	}
	if dataFolder != "" {
		c.DataFolder = dataFolder
	}
	if cmd.Flags().Changed("use-backup") {
		c.UseSnapshot = useBackup
	}
	if cmd.Flags().Changed("enable-log") {
		c.Verbose = enableLog
	}
	if cmd.Flags().Changed("addr") {
		c.Addr = addr
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.LogLevel(),
	}))
	slog.SetDefault(logger)

	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	slog.Debug("configuration loaded",
		"enl_file", cfg.LibraryPath,
		"data_folder", cfg.DataFolder,
		"use_backup", cfg.UseSnapshot,
		"active_path", cfg.ActivePath(),
	)

	// In snapshot mode the snapshot is refreshed once per process start,
	// whichever command runs; a failure is logged and reads target the
	// stale or missing snapshot until a refresh succeeds.
	snapshot.NewManager(cfg, logger).EnsureFresh()
	return nil
}
