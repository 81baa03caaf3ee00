package ledger

import (
	"fmt"
	"os"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/pathutil"
)

// Repository defines ledger output persistence.
type Repository interface {
	// WriteAll writes every entry in order, replacing any previous
	// output. All-or-nothing: the file is written exactly once per run.
	WriteAll(entries []Entry) error
}

// FileRepository writes the rendered ledger to a single UTF-8 text
// file.
type FileRepository struct {
	path string
}

// NewFileRepository creates a FileRepository for the given path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the output file path.
func (r *FileRepository) Path() string {
	return r.path
}

// WriteAll renders and writes the entries, overwriting the file.
func (r *FileRepository) WriteAll(entries []Entry) error {
	if err := pathutil.EnsureParentDir(r.path); err != nil {
		return err
	}

	if err := os.WriteFile(r.path, []byte(Format(entries)), 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	return nil
}
