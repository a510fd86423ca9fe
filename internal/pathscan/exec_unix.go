//go:build !windows

package pathscan

import (
	"os"

	"golang.org/x/sys/unix"
)

// isExecutable reports whether the current user may execute path.
func isExecutable(path string, info os.FileInfo) bool {
	if info.Mode().Perm()&0111 == 0 {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
