package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppDirName is the launcher's directory name under the platform data root.
const AppDirName = "QuantumLauncher"

// ConfigFileName is the marker file that signals an initialized data directory.
const ConfigFileName = "config.json"

const legacyDirName = ".qlauncher"

// ErrUnresolvable indicates the data directory location could not be
// determined (typically a missing home directory). Callers continue in a
// degraded "no launcher directory" mode.
var ErrUnresolvable = errors.New("launcher directory unresolvable")

// DataDir resolves the launcher data directory, honoring XDG_DATA_HOME on
// platforms that set it and falling back to ~/.local/share.
func DataDir() (string, error) {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolvable, err)
	}
	return filepath.Join(home, ".local", "share", AppDirName), nil
}

// LegacyDir resolves the pre-migration data directory (~/.qlauncher).
func LegacyDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolvable, err)
	}
	return filepath.Join(home, legacyDirName), nil
}

// LogsDir returns the log directory under dataDir.
func LogsDir(dataDir string) string {
	return filepath.Join(dataDir, "logs")
}

// DownloadCacheDir returns the download cache directory under dataDir.
func DownloadCacheDir(dataDir string) string {
	return filepath.Join(dataDir, "downloads", "cache")
}

// InstancesDir returns the directory holding launcher entries.
func InstancesDir(dataDir string) string {
	return filepath.Join(dataDir, "instances")
}

// ConfigFile returns the path of the launcher configuration file.
func ConfigFile(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// IsNewUser reports whether the data directory has never been initialized.
// The configuration file doubles as the initialization marker.
func IsNewUser(dataDir string) bool {
	if dataDir == "" {
		return true
	}
	_, err := os.Stat(ConfigFile(dataDir))
	return err != nil
}

// Ensure creates the data directory and the subdirectories the launcher
// expects at runtime.
func Ensure(dataDir string) error {
	if dataDir == "" {
		return ErrUnresolvable
	}
	for _, dir := range []string{dataDir, LogsDir(dataDir), DownloadCacheDir(dataDir), InstancesDir(dataDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}
