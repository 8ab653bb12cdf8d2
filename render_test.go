package glint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer_MinimalUpdates(t *testing.T) {
	mock := NewMockSystem()
	term := newTestTerminal(t, mock)
	mock.ResetWrites()

	r := NewRenderer(3, 3)
	next := NewBuffer(3, 3)
	next.Set(1, 1, 'X', NewStyle().Foreground(Red))

	require.NoError(t, r.Render(term, next))

	out := mock.Written()
	// One changed cell: move to row 2 col 2, red prologue, the symbol.
	require.Equal(t, "\x1b[2;2H\x1b[0;31mX", out)
}

func TestRenderer_IdempotentSecondFlush(t *testing.T) {
	mock := NewMockSystem()
	term := newTestTerminal(t, mock)

	r := NewRenderer(3, 3)
	next := NewBuffer(3, 3)
	next.Set(0, 0, 'A', NewStyle())

	require.NoError(t, r.Render(term, next))
	mock.ResetWrites()

	// Re-rendering the identical buffer must not touch the device.
	require.NoError(t, r.Render(term, next))
	require.Zero(t, mock.WriteCount(), "second render of the same buffer wrote %q", mock.Written())
}

func TestRenderer_ResizeClearsScreen(t *testing.T) {
	mock := NewMockSystem()
	term := newTestTerminal(t, mock)

	r := NewRenderer(2, 2)
	require.NoError(t, r.Render(term, NewBuffer(2, 2)))
	mock.ResetWrites()

	require.NoError(t, r.Render(term, NewBuffer(3, 2)))

	out := mock.Written()
	require.True(t, strings.HasPrefix(out, escClear), "resize flush %q does not start with a clear", out)
	// Full repaint: every cell of the 3x2 buffer appears.
	require.Equal(t, 6, strings.Count(out, "\x1b[0m"), "expected one style prologue per cell")
}

func TestRenderer_ChangesFlushedInRowMajorOrder(t *testing.T) {
	mock := NewMockSystem()
	term := newTestTerminal(t, mock)
	mock.ResetWrites()

	r := NewRenderer(3, 2)
	next := NewBuffer(3, 2)
	next.Set(2, 1, 'B', NewStyle())
	next.Set(0, 0, 'A', NewStyle())

	require.NoError(t, r.Render(term, next))

	out := mock.Written()
	require.Less(t, strings.Index(out, "A"), strings.Index(out, "B"),
		"cell (0,0) must be flushed before cell (2,1): %q", out)
}

func TestRenderer_UTF8SymbolEncoded(t *testing.T) {
	mock := NewMockSystem()
	term := newTestTerminal(t, mock)
	mock.ResetWrites()

	r := NewRenderer(2, 1)
	next := NewBuffer(2, 1)
	next.Set(0, 0, 'é', NewStyle())

	require.NoError(t, r.Render(term, next))
	require.Contains(t, mock.Written(), "é")
}
