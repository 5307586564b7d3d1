//go:build unix

package lineedit

import "syscall"

// umask sets the process umask and returns the previous value.
func umask(mask int) int {
	return syscall.Umask(mask)
}
