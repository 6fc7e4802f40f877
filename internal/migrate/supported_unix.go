//go:build linux || freebsd

package migrate

// Supported reports whether symlink-sentinel migration runs on this
// platform.
const Supported = true
