//go:build !windows

package launcher

import "syscall"

// detachedAttr puts the child in a new session so closing the launcher's
// terminal does not hang it up.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
