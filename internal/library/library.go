// Package library composes storage, path resolution, text extraction, and
// snapshot management into the four externally visible operations.
package library

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/config"
	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/pdf"
	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/reference"
	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/snapshot"
	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/storage"
)

// Library is the facade the dispatch layer binds to. Every operation is a
// total function: any input, valid or not, yields a well-formed record.
// Internal failures are logged and mapped to record shapes, never
// propagated.
type Library struct {
	repo     *storage.Repository
	resolver *pdf.Resolver
	snaps    *snapshot.Manager
	logger   *slog.Logger
}

// New wires a library facade from the configuration.
func New(cfg *config.Config, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{
		repo:     storage.NewRepository(cfg, logger),
		resolver: pdf.NewResolver(cfg.PDFRoot()),
		snaps:    snapshot.NewManager(cfg, logger),
		logger:   logger,
	}
}

// ListPapers returns one page of references, most recently added first.
// Connection failure yields an empty list.
func (l *Library) ListPapers(offset, limit int) []reference.Reference {
	l.logger.Debug("tool invoked", "tool", "list_papers", "offset", offset, "limit", limit)

	refs, err := l.repo.ListPage(offset, limit)
	if err != nil {
		l.logger.Warn("list_papers failed", "error", err)
		return []reference.Reference{}
	}
	if refs == nil {
		refs = []reference.Reference{}
	}
	return refs
}

// SearchPapers returns every reference whose title contains the query as a
// case-insensitive substring. Connection failure yields an empty list.
func (l *Library) SearchPapers(query string) []reference.Reference {
	l.logger.Debug("tool invoked", "tool", "search_papers", "query", query)

	refs, err := l.repo.SearchByTitle(query)
	if err != nil {
		l.logger.Warn("search_papers failed", "error", err)
		return []reference.Reference{}
	}
	if refs == nil {
		refs = []reference.Reference{}
	}
	return refs
}

// ReadPaper finds the first reference matching the title, resolves its
// attachment, and returns metadata plus the extracted document text. When
// extraction fails, the text field carries a descriptive message alongside
// the otherwise valid metadata.
func (l *Library) ReadPaper(title string) reference.ReadResult {
	l.logger.Debug("tool invoked", "tool", "read_paper", "title", title)

	ref, err := l.repo.FindFirstByTitle(title)
	if err != nil {
		l.logger.Warn("read_paper failed", "error", err)
		if errors.Is(err, storage.ErrConnection) {
			return reference.ReadResult{Error: "Database connection failed."}
		}
		return reference.ReadResult{Error: fmt.Sprintf("Exception: %v", err)}
	}
	if ref == nil || !ref.HasDocument() {
		return reference.ReadResult{
			Error: fmt.Sprintf("No paper found with title containing '%s' or no PDF attached.", title),
		}
	}

	resolved := l.resolver.ResolvePath(*ref.Filepath)
	l.logger.Debug("attachment resolved", "path", resolved)

	text, err := pdf.ExtractText(resolved)
	switch {
	case errors.Is(err, pdf.ErrNotFound):
		text = fmt.Sprintf("Error: File not found at %s.", resolved)
	case err != nil:
		text = fmt.Sprintf("Error parsing PDF: %v", err)
	}

	return reference.ReadResult{Reference: ref, Text: &text}
}

// RefreshBackup re-copies the library snapshot on demand.
func (l *Library) RefreshBackup() snapshot.Result {
	l.logger.Debug("tool invoked", "tool", "refresh_backup")
	return l.snaps.Refresh()
}
