//go:build darwin || freebsd || netbsd || openbsd

package glint

import "golang.org/x/sys/unix"

// BSD-derived systems expose termios through the TIOCGETA/TIOCSETA ioctls.
const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)
