package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDerivedPaths(t *testing.T) {
	cfg := Config{
		LibraryPath: "/home/u/My Library.enl",
		DataFolder:  "/home/u/My Library.Data",
	}

	if got, want := cfg.SnapshotPath(), "/home/u/My Library.enl.backup"; got != want {
		t.Errorf("SnapshotPath() = %q, want %q", got, want)
	}
	if got, want := cfg.PDFRoot(), filepath.Join("/home/u/My Library.Data", "PDF"); got != want {
		t.Errorf("PDFRoot() = %q, want %q", got, want)
	}
}

func TestActivePath(t *testing.T) {
	tests := []struct {
		name        string
		useSnapshot bool
		want        string
	}{
		{"original when snapshot disabled", false, "/lib/refs.enl"},
		{"snapshot when enabled", true, "/lib/refs.enl.backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{LibraryPath: "/lib/refs.enl", UseSnapshot: tt.useSnapshot}
			if got := cfg.ActivePath(); got != tt.want {
				t.Errorf("ActivePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yml")
	data := []byte("enl_file: /lib/refs.enl\ndata_folder: /lib/refs.Data\nuse_snapshot: true\nverbose: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		LibraryPath: "/lib/refs.enl",
		DataFolder:  "/lib/refs.Data",
		UseSnapshot: true,
		Verbose:     true,
		Addr:        DefaultAddr,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Load() with missing explicit file should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ENL_FILE", "/env/refs.enl")
	t.Setenv("ENL_DATA_FOLDER", "/env/refs.Data")
	t.Setenv("ENL_USE_SNAPSHOT", "true")
	t.Setenv("ENL_ADDR", ":9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LibraryPath != "/env/refs.enl" {
		t.Errorf("LibraryPath = %q, want env value", cfg.LibraryPath)
	}
	if !cfg.UseSnapshot {
		t.Error("UseSnapshot should be set from env")
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"both paths set", Config{LibraryPath: "a.enl", DataFolder: "a.Data"}, false},
		{"missing library", Config{DataFolder: "a.Data"}, true},
		{"missing data folder", Config{LibraryPath: "a.enl"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
