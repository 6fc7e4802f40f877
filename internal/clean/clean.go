// Package clean prunes stale files from the launcher's disposable
// directories (logs, download cache) at startup.
package clean

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultMaxAge is how long disposable files are kept before startup
// cleanup removes them.
const DefaultMaxAge = 7 * 24 * time.Hour

// Report summarizes one cleanup run over a single directory.
type Report struct {
	Dir        string
	Removed    int
	FreedBytes int64
	// FreeSpace is the volume's available bytes after cleanup, zero when
	// the platform cannot report it.
	FreeSpace uint64
}

// Dir removes regular files under dir whose modification time is older
// than maxAge. Subdirectories are descended into but never removed
// themselves. A missing directory is not an error; there is simply
// nothing to clean. maxAge <= 0 selects DefaultMaxAge.
func Dir(dir string, maxAge time.Duration) (Report, error) {
	report := Report{Dir: dir}
	if dir == "" {
		return report, errors.New("clean: empty directory path")
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	cutoff := time.Now().Add(-maxAge)

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == dir && errors.Is(walkErr, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return fmt.Errorf("scan %s: %w", path, walkErr)
		}
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		report.Removed++
		report.FreedBytes += info.Size()
		return nil
	})
	if err != nil {
		return report, err
	}

	report.FreeSpace = freeSpace(dir)
	return report, nil
}
