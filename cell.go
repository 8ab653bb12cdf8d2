package glint

// Cell represents a single character cell in a Buffer: one Unicode scalar
// value plus its visual styling.
type Cell struct {
	Rune  rune
	Style Style
}

// NewCell creates a new Cell.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// DefaultCell returns a blank cell: a space with default styling.
func DefaultCell() Cell {
	return Cell{Rune: ' '}
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style)
}
