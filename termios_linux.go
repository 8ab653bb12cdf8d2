package glint

import "golang.org/x/sys/unix"

// Linux exposes termios through the TCGETS/TCSETS ioctls.
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)
