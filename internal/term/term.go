// Package term tells whether a file descriptor refers to an interactive terminal.
package term

import "os"

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(f.Fd())
}
