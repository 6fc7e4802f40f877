//go:build !linux && !freebsd

package migrate

// Supported reports whether symlink-sentinel migration runs on this
// platform. Windows and macOS installs never used the legacy dotted
// directory layout, and symlinks are not a reliable marker there.
const Supported = false
