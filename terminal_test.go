package glint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Lifecycle(t *testing.T) {
	mock := NewMockSystem()

	term, err := NewTerminalWith(mock, nil)
	require.NoError(t, err)

	_, _, err = term.Size()
	require.NoError(t, err)
	_, err = term.Write([]byte("foo"))
	require.NoError(t, err)
	buf := make([]byte, 10)
	_, err = term.Read(buf)
	require.NoError(t, err)

	term.Close()

	want := []string{
		"open",
		"enable_raw(100)",
		`write(100, "\x1b[?25l")`,
		`write(100, "\x1b[?1000h")`,
		`write(100, "\x1b[?1049h")`,
		"window_size(100)",
		`write(100, "foo")`,
		"read(100)",
		`write(100, "\x1b[?1000l")`,
		`write(100, "\x1b[?1049l")`,
		`write(100, "\x1b[?25h")`,
		"disable_raw(100)",
		"close",
	}
	assert.Equal(t, want, mock.Calls())
}

func TestTerminal_CloseIsIdempotent(t *testing.T) {
	mock := NewMockSystem()
	term, err := NewTerminalWith(mock, nil)
	require.NoError(t, err)

	term.Close()
	callsAfterFirst := len(mock.Calls())
	term.Close()

	assert.Equal(t, callsAfterFirst, len(mock.Calls()), "second Close must be a no-op")
}

func TestTerminal_OpenFailure(t *testing.T) {
	mock := NewMockSystem()
	mock.FailOpen = true

	_, err := NewTerminalWith(mock, nil)
	require.ErrorIs(t, err, ErrMockOpenFailed)

	// Nothing beyond the failed open may have run.
	assert.Equal(t, []string{"open"}, mock.Calls())
}

func TestTerminal_EnableRawFailure(t *testing.T) {
	mock := NewMockSystem()
	mock.FailEnableRaw = true

	_, err := NewTerminalWith(mock, nil)
	require.ErrorIs(t, err, ErrMockEnableRawFailed)

	// The device was opened so it is closed again, but the
	// hide-cursor/mouse/alt-screen steps never ran and are not undone.
	assert.Equal(t, []string{"open", "enable_raw(100)", "close"}, mock.Calls())
	assert.Empty(t, mock.Written())
}

func TestTerminal_SetupWriteFailure(t *testing.T) {
	mock := NewMockSystem()
	mock.FailWrite = true

	_, err := NewTerminalWith(mock, nil)
	require.Error(t, err)

	// Raw mode was engaged, so the failed setup runs the full teardown:
	// every restore write is attempted (there is no way to know which
	// setup writes reached the device), then the termios state is
	// restored and the device closed.
	want := []string{
		"open",
		"enable_raw(100)",
		`write(100, "\x1b[?25l")`,
		`write(100, "\x1b[?1000l")`,
		`write(100, "\x1b[?1049l")`,
		`write(100, "\x1b[?25h")`,
		"disable_raw(100)",
		"close",
	}
	assert.Equal(t, want, mock.Calls())
}

func TestTerminal_TeardownFailureIsLoggedNotEscalated(t *testing.T) {
	logger, err := NewLogger(t.TempDir() + "/debug.log")
	require.NoError(t, err)
	defer logger.Close()

	mock := NewMockSystem()
	term, err := NewTerminalWith(mock, logger)
	require.NoError(t, err)

	// All teardown writes fail from here on; Close must still restore the
	// termios state and close the device.
	mock.FailWrite = true
	term.Close()

	calls := mock.Calls()
	assert.Contains(t, calls, "disable_raw(100)")
	assert.Equal(t, "close", calls[len(calls)-1])
}

func TestTerminal_PollDelegates(t *testing.T) {
	mock := NewMockSystem()
	term, err := NewTerminalWith(mock, nil)
	require.NoError(t, err)
	defer term.Close()

	ready, err := term.Poll(0)
	require.NoError(t, err)
	assert.False(t, ready, "empty input queue must not report ready")

	mock.PushInput([]byte("x"))
	ready, err = term.Poll(0)
	require.NoError(t, err)
	assert.True(t, ready)
}
