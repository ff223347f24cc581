package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	r := NewResolver(filepath.Join("/lib", "PDF"))

	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"internal marker stripped", "internal-pdf://papers/kd.pdf", "/lib/PDF/papers/kd.pdf"},
		{"plain relative path", "papers/kd.pdf", "/lib/PDF/papers/kd.pdf"},
		{"surrounding whitespace trimmed", "  internal-pdf://papers/kd.pdf \n", "/lib/PDF/papers/kd.pdf"},
		{"other scheme marker stripped", "file://papers/kd.pdf", "/lib/PDF/papers/kd.pdf"},
		{"bare file name", "kd.pdf", "/lib/PDF/kd.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ResolvePath(tt.stored)
			want := filepath.FromSlash(tt.want)
			if got != want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.stored, got, want)
			}
		})
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.pdf")

	_, err := ExtractText(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ExtractText() error = %v, want ErrNotFound", err)
	}
}

func TestExtractTextUnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := ExtractText(path)
	if err == nil {
		t.Fatal("ExtractText() on a non-PDF file should fail")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("parse failure must be distinct from ErrNotFound")
	}
}
