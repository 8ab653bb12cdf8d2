package glint

import "time"

// TermState holds a captured terminal configuration for later restoration.
// Its contents are opaque and specific to the System implementation that
// produced it.
type TermState struct {
	termios any
}

// System abstracts the operating-system calls the runtime needs from the
// terminal device. It is the seam that lets the Terminal wrapper, the
// input cycle, and the renderer run against a mock during tests instead
// of a real tty. The implementation is selected once at Terminal
// construction, not per call.
type System interface {
	// Open opens the controlling terminal device and returns its
	// file descriptor.
	Open() (fd int, err error)

	// Close closes the given file descriptor.
	Close(fd int) error

	// EnableRaw puts the device into raw mode and returns the prior
	// configuration so it can be restored later.
	EnableRaw(fd int) (*TermState, error)

	// DisableRaw restores a configuration previously returned by
	// EnableRaw.
	DisableRaw(fd int, prev *TermState) error

	// WindowSize returns the device dimensions (columns, rows).
	WindowSize(fd int) (cols, rows int, err error)

	// Read reads available bytes into p. A return of 0 with a nil error
	// means no data (or EOF).
	Read(fd int, p []byte) (int, error)

	// Write writes p to the device.
	Write(fd int, p []byte) (int, error)

	// Poll reports whether the device becomes readable within timeout.
	Poll(fd int, timeout time.Duration) (bool, error)
}
