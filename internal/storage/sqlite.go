// Package storage executes read-only queries against the EndNote library.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/config"
	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/reference"
	_ "modernc.org/sqlite"
)

// DefaultPageSize is the page size used when the caller supplies a
// non-positive limit.
const DefaultPageSize = 10

// ErrConnection marks failures to open or reach the library file, as
// opposed to failures of a query running against a reachable one.
var ErrConnection = errors.New("database connection failed")

// Repository runs the three query shapes against the active library file.
//
// Every operation opens its own read-only connection against the path the
// configuration currently designates and closes it before returning, so no
// connection is ever held across calls or shared between concurrent calls.
type Repository struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRepository creates a repository bound to the given configuration.
func NewRepository(cfg *config.Config, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{cfg: cfg, logger: logger}
}

// open establishes a read-only connection to the active library file.
func (r *Repository) open() (*sql.DB, error) {
	path := r.cfg.ActivePath()
	r.logger.Debug("connecting to library", "path", path)

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: opening library: %v", ErrConnection, err)
	}
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; ping so a missing or locked file surfaces here.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrConnection, path, err)
	}
	return db, nil
}

// selectRefFields returns the field list for reference queries. Older .enl
// schemas lack the keywords column entirely; selecting NULL in its place
// keeps the scan shape constant and the field degrades to nil.
func selectRefFields(hasKeywords bool) string {
	kw := "r.keywords"
	if !hasKeywords {
		kw = "NULL AS keywords"
	}
	return `r.id, r.title, r.author, r.year, r.secondary_title, r.abstract, ` +
		kw + `, f.file_path AS filepath`
}

// hasKeywordsColumn probes the refs table schema for the keywords column.
func hasKeywordsColumn(db *sql.DB) (bool, error) {
	rows, err := db.Query(`PRAGMA table_info(refs)`)
	if err != nil {
		return false, fmt.Errorf("probing refs schema: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return false, err
		}
		if name == "keywords" {
			return true, nil
		}
	}
	return false, rows.Err()
}

// ListPage returns one page of references ordered by id descending, so the
// most recently added entries come first. A negative offset is coerced to 0
// and a non-positive limit to DefaultPageSize.
func (r *Repository) ListPage(offset, limit int) ([]reference.Reference, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	hasKeywords, err := hasKeywordsColumn(db)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + selectRefFields(hasKeywords) + `
		FROM refs r LEFT JOIN file_res f ON r.id = f.refs_id
		ORDER BY r.id DESC LIMIT ? OFFSET ?`
	r.logger.Debug("executing query", "query", "list", "limit", limit, "offset", offset)

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// SearchByTitle returns all references whose title contains the query as a
// substring, ordered by year descending. SQLite's LIKE gives ASCII
// case-insensitivity and plain byte matching for non-Latin scripts. Years
// are TEXT in the store, so null or non-numeric years sort by SQLite's
// default text ordering. An empty query matches every row.
func (r *Repository) SearchByTitle(query string) ([]reference.Reference, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	hasKeywords, err := hasKeywordsColumn(db)
	if err != nil {
		return nil, err
	}

	stmt := `SELECT ` + selectRefFields(hasKeywords) + `
		FROM refs r LEFT JOIN file_res f ON r.id = f.refs_id
		WHERE r.title LIKE ? ORDER BY r.year DESC`
	r.logger.Debug("executing query", "query", "search", "title", query)

	rows, err := db.Query(stmt, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("searching references: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// FindFirstByTitle returns the first reference whose title contains the
// given text, or nil (with no error) when nothing matches. There is no
// secondary ordering guarantee beyond what the query planner yields first.
func (r *Repository) FindFirstByTitle(title string) (*reference.Reference, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	hasKeywords, err := hasKeywordsColumn(db)
	if err != nil {
		return nil, err
	}

	stmt := `SELECT ` + selectRefFields(hasKeywords) + `
		FROM refs r LEFT JOIN file_res f ON r.id = f.refs_id
		WHERE r.title LIKE ? LIMIT 1`
	r.logger.Debug("executing query", "query", "find-first", "title", title)

	row := db.QueryRow(stmt, "%"+title+"%")
	ref, err := scanReference(row)
	if err != nil {
		return nil, fmt.Errorf("finding reference: %w", err)
	}
	return ref, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReference(s scanner) (*reference.Reference, error) {
	var ref reference.Reference
	var title, author, year, journal, abstract, keywords, filepath sql.NullString

	err := s.Scan(&ref.ID, &title, &author, &year, &journal, &abstract, &keywords, &filepath)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	ref.Title = nullable(title)
	ref.Author = nullable(author)
	ref.Year = nullable(year)
	ref.Journal = nullable(journal)
	ref.Abstract = nullable(abstract)
	ref.Keywords = nullable(keywords)
	ref.Filepath = nullable(filepath)

	return &ref, nil
}

func scanReferences(rows *sql.Rows) ([]reference.Reference, error) {
	var refs []reference.Reference
	for rows.Next() {
		ref, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		if ref != nil {
			refs = append(refs, *ref)
		}
	}
	return refs, rows.Err()
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
