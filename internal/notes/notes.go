// Package notes reads the per-entry notes file shown on the launch screen.
package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the notes file inside an entry directory.
const FileName = "notes.md"

// Load returns the notes text for the entry at entryDir. A missing file is
// an empty note, not an error.
func Load(entryDir string) (string, error) {
	if entryDir == "" {
		return "", errors.New("notes: no entry directory")
	}
	data, err := os.ReadFile(filepath.Join(entryDir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read notes: %w", err)
	}
	return string(data), nil
}

// Save writes the notes text for the entry at entryDir.
func Save(entryDir, text string) error {
	if entryDir == "" {
		return errors.New("notes: no entry directory")
	}
	if err := os.WriteFile(filepath.Join(entryDir, FileName), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}
