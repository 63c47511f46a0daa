//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !zos && !windows

package term

func isTerminal(fd uintptr) bool {
	return false
}
