//go:build unix

package glint

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// UnixSystem is the production System backed by direct syscalls against
// the controlling terminal device (/dev/tty).
type UnixSystem struct{}

// Ensure UnixSystem implements System.
var _ System = UnixSystem{}

// Open opens /dev/tty for read/write access.
func (UnixSystem) Open() (int, error) {
	fd, err := unix.Open("/dev/tty", unix.O_RDWR, 0)
	if err != nil {
		return -1, fmt.Errorf("open /dev/tty: %w", err)
	}
	return fd, nil
}

// Close closes the file descriptor.
func (UnixSystem) Close(fd int) error {
	return unix.Close(fd)
}

// EnableRaw configures the device for raw I/O and returns the prior
// termios state.
//
// Flags cleared:
//   - Iflag: BRKINT, ICRNL, INPCK, ISTRIP, IXON
//   - Oflag: OPOST
//   - Lflag: ECHO, ICANON, IEXTEN, ISIG
//
// Flags set:
//   - Cflag: CS8
//
// VMIN=1/VTIME=0 makes reads block until at least one byte arrives.
func (UnixSystem) EnableRaw(fd int) (*TermState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}

	prev := *termios

	termios.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Cflag |= unix.CS8
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return nil, fmt.Errorf("set termios: %w", err)
	}

	return &TermState{termios: &prev}, nil
}

// DisableRaw restores the termios state captured by EnableRaw.
func (UnixSystem) DisableRaw(fd int, prev *TermState) error {
	if prev == nil {
		return nil
	}
	termios, ok := prev.termios.(*unix.Termios)
	if !ok {
		return fmt.Errorf("restore termios: state not produced by UnixSystem")
	}
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return fmt.Errorf("restore termios: %w", err)
	}
	return nil
}

// WindowSize queries the kernel for the device dimensions.
func (UnixSystem) WindowSize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// Read reads available bytes from the device.
// EINTR is retried; with VMIN=1 the call blocks until data arrives.
func (UnixSystem) Read(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("read tty: %w", err)
		}
		return n, nil
	}
}

// Write writes p to the device.
func (UnixSystem) Write(fd int, p []byte) (int, error) {
	n, err := unix.Write(fd, p)
	if err != nil {
		return n, fmt.Errorf("write tty: %w", err)
	}
	return n, nil
}

// Poll reports whether the device becomes readable within timeout.
// A negative timeout blocks indefinitely. EINTR is reported as a timeout
// so callers fall through to their finalization path.
func (UnixSystem) Poll(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, fmt.Errorf("poll tty: %w", err)
	}
	return n > 0, nil
}
