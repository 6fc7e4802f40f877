//go:build linux || freebsd || darwin

package clean

import "golang.org/x/sys/unix"

func freeSpace(dir string) uint64 {
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return 0
	}
	return uint64(stat.Bavail) * uint64(stat.Bsize)
}
