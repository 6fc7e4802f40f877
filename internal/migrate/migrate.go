// Package migrate moves the legacy data directory (~/.qlauncher) to the
// XDG location and leaves a symlink at the old path so existing shortcuts
// keep working. The symlink doubles as the "already migrated" sentinel, so
// the check is safe to run on every launch.
//
// Diagnostics here go straight to stderr. The structured logger cannot be
// used: initializing it resolves (and creates) the target directory, which
// would make the rename fail.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"qlauncher/internal/fileutil"
	"qlauncher/internal/paths"
)

// ErrSentinel marks a migration whose data move succeeded but whose
// legacy-path symlink could not be created. The migration still counts as
// successful; only the compatibility link is missing.
var ErrSentinel = errors.New("create legacy sentinel link")

// Dirs names the two directory roots the guard examines.
type Dirs struct {
	Legacy string
	Target string
}

// ShouldMigrate decides whether the legacy directory must be moved. It is a
// pure function of filesystem state at the moment of the call:
//
//   - no resolvable or existing legacy directory: nothing to migrate
//   - legacy path is already a symlink: migrated on an earlier launch
//   - unresolvable target: cannot proceed safely
//   - target already initialized (config.json present): a fresh install
//     exists independently; moving over it would clobber it
//   - legacy and target identical: no-op
func ShouldMigrate(d Dirs) bool {
	if !Supported {
		return false
	}
	if d.Legacy == "" {
		return false
	}

	info, err := os.Lstat(d.Legacy)
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return false
	}
	if !info.IsDir() {
		return false
	}

	if d.Target == "" {
		fmt.Fprintln(os.Stderr, "migration: failed to resolve new data directory")
		return false
	}
	if _, err := os.Stat(filepath.Join(d.Target, paths.ConfigFileName)); err == nil {
		fmt.Fprintln(os.Stderr, "migration: skipped, target already initialized")
		return false
	}
	if d.Legacy == d.Target {
		fmt.Fprintln(os.Stderr, "migration: skipped, same directory")
		return false
	}
	return true
}

// Run moves the legacy directory to the target path and replaces the legacy
// path with a symlink to the new location. A rename failure aborts with the
// original data untouched. A symlink failure after a successful rename
// returns an error wrapping ErrSentinel; the data itself has moved.
func Run(d Dirs) error {
	fmt.Fprintln(os.Stderr, "migration: moving launcher data to", d.Target)

	if parent := filepath.Dir(d.Target); parent != "." && parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("prepare target parent: %w", err)
		}
	}
	if err := os.Rename(d.Legacy, d.Target); err != nil {
		return fmt.Errorf("move data directory: %w", err)
	}
	if err := fileutil.CreateSymlink(d.Target, d.Legacy); err != nil {
		return fmt.Errorf("%w: %v", ErrSentinel, err)
	}
	fmt.Fprintln(os.Stderr, "migration: successful, launcher files are now in", d.Target)
	return nil
}

// Resolve builds the Dirs pair from the platform path service. Unresolvable
// paths come back empty; ShouldMigrate treats them as "do not migrate".
func Resolve() Dirs {
	var d Dirs
	if legacy, err := paths.LegacyDir(); err == nil {
		d.Legacy = legacy
	}
	if target, err := paths.DataDir(); err == nil {
		d.Target = target
	}
	return d
}
