package glint

import (
	"strconv"
	"strings"
)

// Renderer flushes buffers to the terminal by diffing each frame against
// the previously flushed one, so unchanged cells cost nothing. Rendering
// the same buffer twice in a row performs zero device writes the second
// time.
type Renderer struct {
	last *Buffer
}

// NewRenderer creates a renderer whose held frame matches a blank
// terminal of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{last: NewBuffer(width, height)}
}

// Render brings the terminal up to date with next. If next's dimensions
// differ from the held frame the screen is cleared first (the diff is a
// full repaint in that case). For each changed cell, in row-major order,
// it emits a cursor move, the cell's style prologue, and the cell's
// symbol. The held frame is replaced by next.
func (r *Renderer) Render(term *Terminal, next *Buffer) error {
	var out strings.Builder

	if r.last == nil || next.Width() != r.last.Width() || next.Height() != r.last.Height() {
		out.WriteString(escClear)
	}

	for _, change := range next.Diff(r.last) {
		// Cursor positioning is 1-indexed: row then column.
		out.WriteString("\x1b[")
		out.WriteString(strconv.Itoa(change.Y + 1))
		out.WriteByte(';')
		out.WriteString(strconv.Itoa(change.X + 1))
		out.WriteByte('H')
		out.WriteString(change.Cell.Style.ANSI())
		out.WriteRune(change.Cell.Rune)
	}

	if out.Len() > 0 {
		if _, err := term.Write([]byte(out.String())); err != nil {
			return err
		}
	}

	r.last = next
	return nil
}
