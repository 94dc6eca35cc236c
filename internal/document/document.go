package document

import (
	"os"
	"strings"
)

// Document is an immutable snapshot of one planning file. Checks read from it
// and never write back, so a single Document can serve any number of runs.
type Document struct {
	Path  string
	Raw   string
	Lines []string

	lowered string
}

// Load reads the planning file at path. A missing file surfaces as the
// *PathError from os.ReadFile so callers can test it with errors.Is.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, string(data)), nil
}

// New builds a Document from already-held text. Tests use this to avoid
// filesystem fixtures.
func New(path, raw string) *Document {
	return &Document{
		Path:    path,
		Raw:     raw,
		Lines:   strings.Split(raw, "\n"),
		lowered: strings.ToLower(raw),
	}
}

// Contains reports whether the document mentions s, case sensitively.
func (d *Document) Contains(s string) bool {
	return strings.Contains(d.Raw, s)
}

// ContainsFold reports whether the document mentions s in any casing.
func (d *Document) ContainsFold(s string) bool {
	return strings.Contains(d.lowered, strings.ToLower(s))
}

// LineOf maps a byte offset in Raw to its 1-based line number. Offsets
// outside the document return 0.
func (d *Document) LineOf(offset int) int {
	if offset < 0 || offset > len(d.Raw) {
		return 0
	}
	return strings.Count(d.Raw[:offset], "\n") + 1
}

// LineText returns the trimmed text of the 1-based line n, or "" when n is
// out of range.
func (d *Document) LineText(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return strings.TrimSpace(d.Lines[n-1])
}
