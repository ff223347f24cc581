// Package reference defines the core domain types for EndNote library entries.
package reference

// Reference represents one bibliographic entry from the EndNote refs table.
//
// All metadata fields are optional in the store: EndNote keeps them as
// nullable TEXT columns, and year in particular is text rather than numeric
// so values like "in press" survive. Nil means the column was NULL.
type Reference struct {
	// Identity: primary key of the refs table, stable and unique.
	ID int64 `json:"id"`

	// Metadata
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Year     *string `json:"year"`
	Journal  *string `json:"journal"` // secondary_title column in the store
	Abstract *string `json:"abstract"`
	Keywords *string `json:"keywords"` // column absent in older schemas

	// Filepath is the stored attachment path from the file_res table,
	// relative to the .Data folder and possibly carrying an
	// internal-pdf:// style prefix. Nil when no document is attached.
	// A non-nil value does not guarantee the file exists on disk.
	Filepath *string `json:"filepath"`
}

// HasDocument reports whether the reference carries an attachment path.
func (r *Reference) HasDocument() bool {
	return r.Filepath != nil && *r.Filepath != ""
}

// ReadResult is the record shape returned by the read-paper operation:
// either the matched reference's fields plus the extracted document text,
// or a single explanatory error string.
type ReadResult struct {
	*Reference
	Text  *string `json:"text,omitempty"`
	Error string  `json:"error,omitempty"`
}
