// Package pdf handles attachment path resolution and text extraction.
package pdf

import (
	"path/filepath"
	"regexp"
	"strings"
)

// schemePrefix matches a leading scheme-like marker such as the
// internal-pdf:// prefix EndNote stores on attachment paths.
var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// Resolver turns stored attachment paths into absolute filesystem paths
// under the library's PDF folder.
type Resolver struct {
	root string
}

// NewResolver creates a resolver rooted at the given PDF folder.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// ResolvePath strips any leading scheme marker and surrounding whitespace
// from a stored attachment path and joins the remainder onto the PDF root.
// Resolution is pure path arithmetic; it never checks that the file exists.
func (r *Resolver) ResolvePath(stored string) string {
	s := strings.TrimSpace(stored)
	s = schemePrefix.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return filepath.Join(r.root, filepath.FromSlash(s))
}
