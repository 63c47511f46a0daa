//go:build aix || linux || solaris || zos

package term

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TCGETS
