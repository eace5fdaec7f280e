package testutils

import (
	"testing"

	"github.com/nfrund/folio/internal/filesource"
	"github.com/spf13/afero"
)

// ContentPath is where NewFileSource writes the content document.
const ContentPath = "content/site.yaml"

// NewFileSource writes doc to an in-memory filesystem and opens a file
// content source on it. The filesystem is returned so tests can inspect
// stored submissions.
func NewFileSource(t *testing.T, doc string) (*filesource.Source, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, ContentPath, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write content file: %v", err)
	}
	src, err := filesource.New(fs, ContentPath)
	if err != nil {
		t.Fatalf("failed to open file source: %v", err)
	}
	return src, fs
}
