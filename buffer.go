package glint

import "fmt"

// Buffer is a 2D grid of cells representing one terminal frame.
// Cells are stored in row-major order; the grid length is always
// width*height. The runtime allocates a fresh Buffer each frame and the
// Renderer diffs it against the previously flushed one.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// CellChange represents a single cell that differs between two buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a buffer of the given size filled with blank cells.
// Negative dimensions are clamped to zero.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	blank := DefaultCell()
	for i := range cells {
		cells[i] = blank
	}

	return &Buffer{width: width, height: height, cells: cells}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Get returns the cell at (x, y).
// Panics if the coordinates are out of bounds: direct cell access is a
// programming contract, unlike the lenient drawing API.
func (b *Buffer) Get(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		panic(fmt.Sprintf("glint: Buffer.Get(%d, %d) out of bounds for %dx%d buffer", x, y, b.width, b.height))
	}
	return b.cells[idx]
}

// Set writes a rune with the given style at (x, y).
// Out-of-bounds writes are silently ignored.
func (b *Buffer) Set(x, y int, r rune, style Style) {
	b.SetCell(x, y, NewCell(r, style))
}

// SetCell writes a cell at (x, y).
// Out-of-bounds writes are silently ignored.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.cells[idx] = c
}

// Diff compares this buffer against other and returns the changes needed
// to turn other into b, in row-major order. Unchanged cells never appear
// in the result. If the dimensions differ, every cell of b is returned
// (full repaint).
func (b *Buffer) Diff(other *Buffer) []CellChange {
	if other == nil || b.width != other.width || b.height != other.height {
		changes := make([]CellChange, 0, len(b.cells))
		for i, cell := range b.cells {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: cell})
		}
		return changes
	}

	var changes []CellChange
	for i, cell := range b.cells {
		if !cell.Equal(other.cells[i]) {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: cell})
		}
	}
	return changes
}
