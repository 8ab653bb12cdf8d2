package glint

import (
	"fmt"
	"time"
)

// Escape sequences emitted by the Terminal and Renderer
// (ANSI/VT100 subset plus X10 mouse reporting).
const (
	escClear        = "\x1b[2J"
	escCursorHome   = "\x1b[H"
	escHideCursor   = "\x1b[?25l"
	escShowCursor   = "\x1b[?25h"
	escMouseOn      = "\x1b[?1000h"
	escMouseOff     = "\x1b[?1000l"
	escAltScreenOn  = "\x1b[?1049h"
	escAltScreenOff = "\x1b[?1049l"
)

// Terminal owns the terminal device for its lifetime. Construction opens
// the device, captures the prior configuration, enters raw mode, hides
// the cursor, enables mouse reporting, and switches to the alternate
// screen. Close undoes all of that exactly once; call it on every exit
// path (normally via defer).
type Terminal struct {
	sys    System
	logger *Logger
	fd     int
	prev   *TermState
	closed bool
}

// NewTerminal opens the controlling terminal using the production
// UnixSystem backend.
func NewTerminal() (*Terminal, error) {
	return NewTerminalWith(UnixSystem{}, nil)
}

// NewTerminalWith opens a terminal against an explicit System backend
// and optional diagnostic logger. Used directly by tests; Run wires it
// from its options.
//
// If opening the device or entering raw mode fails, only the file
// descriptor is released. Once raw mode is engaged, any later setup
// failure triggers the full Close teardown: the restore writes are
// attempted unconditionally since there is no way to know which of the
// setup writes reached the device.
func NewTerminalWith(sys System, logger *Logger) (*Terminal, error) {
	fd, err := sys.Open()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}

	t := &Terminal{sys: sys, logger: logger, fd: fd}

	prev, err := sys.EnableRaw(fd)
	if err != nil {
		_ = sys.Close(fd)
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	t.prev = prev

	if err := t.setup(); err != nil {
		t.Close()
		return nil, err
	}

	return t, nil
}

// setup runs the post-raw-mode escape sequence writes in order.
func (t *Terminal) setup() error {
	if err := t.HideCursor(); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}
	if err := t.EnableMouse(); err != nil {
		return fmt.Errorf("enable mouse reporting: %w", err)
	}
	if err := t.EnterAltScreen(); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	return nil
}

// Close restores the terminal and releases the device. It runs at most
// once; later calls are no-ops. Individual restoration failures are
// recorded to the diagnostic logger but never escalated: the terminal
// must release what it can regardless.
func (t *Terminal) Close() {
	if t.closed {
		return
	}
	t.closed = true

	if err := t.DisableMouse(); err != nil {
		t.logger.Error("disabling mouse reporting", err)
	}
	if err := t.ExitAltScreen(); err != nil {
		t.logger.Error("leaving alternate screen", err)
	}
	if err := t.ShowCursor(); err != nil {
		t.logger.Error("showing cursor", err)
	}
	if err := t.sys.DisableRaw(t.fd, t.prev); err != nil {
		t.logger.Error("restoring terminal configuration", err)
	}
	if err := t.sys.Close(t.fd); err != nil {
		t.logger.Error("closing terminal device", err)
	}
}

// Size returns the current terminal dimensions (columns, rows).
func (t *Terminal) Size() (width, height int, err error) {
	return t.sys.WindowSize(t.fd)
}

// Read reads raw bytes from the terminal into p.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.sys.Read(t.fd, p)
}

// Write writes raw bytes to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.sys.Write(t.fd, p)
}

// Poll reports whether input becomes available within timeout.
// This is how the input cycle tells a lone Escape press apart from the
// start of a longer escape sequence.
func (t *Terminal) Poll(timeout time.Duration) (bool, error) {
	return t.sys.Poll(t.fd, timeout)
}

// writeString writes a literal escape sequence.
func (t *Terminal) writeString(s string) error {
	_, err := t.sys.Write(t.fd, []byte(s))
	return err
}

// HideCursor makes the cursor invisible.
func (t *Terminal) HideCursor() error {
	return t.writeString(escHideCursor)
}

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() error {
	return t.writeString(escShowCursor)
}

// EnableMouse turns on X10 mouse click/scroll reporting.
func (t *Terminal) EnableMouse() error {
	return t.writeString(escMouseOn)
}

// DisableMouse turns off mouse reporting.
func (t *Terminal) DisableMouse() error {
	return t.writeString(escMouseOff)
}

// EnterAltScreen switches to the alternate screen buffer, preserving the
// user's scrollback.
func (t *Terminal) EnterAltScreen() error {
	return t.writeString(escAltScreenOn)
}

// ExitAltScreen switches back to the main screen buffer.
func (t *Terminal) ExitAltScreen() error {
	return t.writeString(escAltScreenOff)
}

// Clear erases the whole screen and homes the cursor.
func (t *Terminal) Clear() error {
	return t.writeString(escClear + escCursorHome)
}
