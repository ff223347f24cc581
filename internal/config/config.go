// Package config handles service configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// SnapshotSuffix is appended to the library path to derive the
	// snapshot file name, matching the .enl.backup convention.
	SnapshotSuffix = ".backup"

	// PDFDir is the fixed subfolder of the .Data folder that holds
	// attached documents.
	PDFDir = "PDF"

	// DefaultAddr is the default listen address for the HTTP dispatch layer.
	DefaultAddr = ":8601"
)

// Config is the process-wide configuration, built once at startup and
// passed by reference into each component's constructor. It is read-only
// after Load returns and safe for concurrent reads.
type Config struct {
	// LibraryPath is the EndNote .enl database file.
	LibraryPath string `yaml:"enl_file"`

	// DataFolder is the EndNote .Data folder holding the PDF subfolder.
	DataFolder string `yaml:"data_folder"`

	// UseSnapshot directs all reads at a derived snapshot copy of the
	// library instead of the original file, avoiding lock contention
	// with a running EndNote.
	UseSnapshot bool `yaml:"use_snapshot"`

	// Verbose enables diagnostic logging for connection attempts,
	// executed queries, and tool invocations.
	Verbose bool `yaml:"verbose"`

	// Addr is the listen address of the HTTP dispatch layer.
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{Addr: DefaultAddr}
}

// Load builds the configuration with precedence: defaults, then an optional
// YAML file, then environment variables. Flag values are applied on top by
// the caller. A missing file is only an error when its path was given
// explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv overrides configuration values from ENL_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ENL_FILE"); v != "" {
		cfg.LibraryPath = v
	}
	if v := os.Getenv("ENL_DATA_FOLDER"); v != "" {
		cfg.DataFolder = v
	}
	if v := os.Getenv("ENL_USE_SNAPSHOT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseSnapshot = b
		}
	}
	if v := os.Getenv("ENL_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	if v := os.Getenv("ENL_ADDR"); v != "" {
		cfg.Addr = v
	}
}

// Validate checks that the required paths are set.
func (c *Config) Validate() error {
	if c.LibraryPath == "" {
		return fmt.Errorf("enl_file not configured (use --enl-file or ENL_FILE)")
	}
	if c.DataFolder == "" {
		return fmt.Errorf("data_folder not configured (use --data-folder or ENL_DATA_FOLDER)")
	}
	return nil
}

// SnapshotPath returns the derived snapshot file path, placed beside the
// original library with a fixed suffix.
func (c *Config) SnapshotPath() string {
	return c.LibraryPath + SnapshotSuffix
}

// ActivePath returns the database file all read operations should target:
// the snapshot when snapshot mode is enabled, the original otherwise.
// In snapshot mode the returned path may not exist yet; the first read
// fails until a refresh has run.
func (c *Config) ActivePath() string {
	if c.UseSnapshot {
		return c.SnapshotPath()
	}
	return c.LibraryPath
}

// PDFRoot returns the folder under which attachment paths resolve.
func (c *Config) PDFRoot() string {
	return filepath.Join(c.DataFolder, PDFDir)
}

// LogLevel returns the slog level implied by the verbose switch.
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
