package glint

// Rect represents a rectangular area of the terminal in cell coordinates.
// Width and Height are extents; Right() and Bottom() are exclusive.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Area returns the total number of cells in the rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// IsEmpty returns true if the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int {
	return r.X
}

// Right returns the exclusive x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y
}

// Bottom returns the exclusive y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains returns true if the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
