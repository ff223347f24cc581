package pdf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNotFound is returned when no file exists at the resolved path.
var ErrNotFound = errors.New("file not found")

// ExtractText extracts the full text of the document at path: every page in
// order, pages that yield no text contributing an empty string, concatenated
// with no added separators. It returns either the complete text or exactly
// one error, never a mixture.
func ExtractText(path string) (text string, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", statErr
	}

	// The parser panics on some malformed files; fold that into the
	// parse-error return.
	defer func() {
		if recovered := recover(); recovered != nil {
			text = ""
			err = fmt.Errorf("%v", recovered)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var builder strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", i, err)
		}
		builder.WriteString(pageText)
	}

	return builder.String(), nil
}
