package glint

// Widget is anything that can render itself into a given area of a
// drawing surface. Widgets only ever call the Frame API; they have no
// access to the device.
type Widget interface {
	Render(area Rect, f *Frame)
}

// Frame is a high-level drawing surface over a Buffer. It tracks a clip
// rectangle (the origin for all coordinates) and a current style applied
// to every write. Writes landing outside the underlying buffer are
// dropped, never an error.
type Frame struct {
	buf   *Buffer
	area  Rect
	style Style
}

// NewFrame creates a frame covering the whole buffer.
func NewFrame(buf *Buffer) *Frame {
	return &Frame{buf: buf, area: buf.Rect()}
}

// Width returns the width of the frame's area.
func (f *Frame) Width() int {
	return f.area.Width
}

// Height returns the height of the frame's area.
func (f *Frame) Height() int {
	return f.area.Height
}

// Area returns the frame's clip rectangle.
func (f *Frame) Area() Rect {
	return f.area
}

// WriteString writes text starting at (x, y) relative to the frame's
// origin, one cell per rune, using the current style. Runes that land
// outside the buffer are dropped.
func (f *Frame) WriteString(x, y int, text string) {
	i := 0
	for _, r := range text {
		f.buf.Set(f.area.X+x+i, f.area.Y+y, r, f.style)
		i++
	}
}

// SetStyle sets the style used by subsequent writes.
func (f *Frame) SetStyle(style Style) {
	f.style = style
}

// ResetStyle restores the default style.
func (f *Frame) ResetStyle() {
	f.style = Style{}
}

// Style returns the current style.
func (f *Frame) Style() Style {
	return f.style
}

// WithStyle runs fn with the given style, then restores the previous
// style unconditionally.
func (f *Frame) WithStyle(style Style, fn func(*Frame)) {
	prev := f.style
	f.style = style
	defer func() { f.style = prev }()
	fn(f)
}

// RenderArea runs fn on a sub-frame whose origin is area's top-left.
// Coordinates inside fn are translated, not independently clipped:
// drawing is bounded only by the underlying buffer.
func (f *Frame) RenderArea(area Rect, fn func(*Frame)) {
	sub := &Frame{buf: f.buf, area: area, style: f.style}
	fn(sub)
}

// RenderWidget draws a widget into the given area of this frame.
func (f *Frame) RenderWidget(w Widget, area Rect) {
	w.Render(area, f)
}
