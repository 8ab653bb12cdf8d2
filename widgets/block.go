package widgets

import "github.com/grindlemire/glint"

// Borders selects which sides of a Block are drawn.
type Borders uint8

const (
	BordersNone   Borders = 0
	BordersTop    Borders = 1
	BordersRight  Borders = 2
	BordersBottom Borders = 4
	BordersLeft   Borders = 8
	BordersAll            = BordersTop | BordersRight | BordersBottom | BordersLeft
)

// Contains reports whether every side in other is set.
func (b Borders) Contains(other Borders) bool {
	return b&other == other
}

// BorderType selects the character set used to draw borders.
type BorderType int

const (
	// BorderPlain uses thin lines (┌, ─, ┐).
	BorderPlain BorderType = iota
	// BorderRounded uses rounded corners (╭, ─, ╮). This is the default.
	BorderRounded
	// BorderDouble uses double lines (╔, ═, ╗).
	BorderDouble
)

// borderChars holds the glyphs for one border style, in the order
// horizontal, vertical, then corners clockwise from top-left.
type borderChars struct {
	h, v, tl, tr, bl, br rune
}

func (t BorderType) chars() borderChars {
	switch t {
	case BorderPlain:
		return borderChars{h: '─', v: '│', tl: '┌', tr: '┐', bl: '└', br: '┘'}
	case BorderDouble:
		return borderChars{h: '═', v: '║', tl: '╔', tr: '╗', bl: '╚', br: '╝'}
	default:
		return borderChars{h: '─', v: '│', tl: '╭', tr: '╮', bl: '╰', br: '╯'}
	}
}

// Block is a container widget with optional borders, a title, and inner
// padding. Configure it with the chained builder methods, then either
// render it directly or use Inner to place content inside it.
type Block struct {
	title      string
	borders    Borders
	borderType BorderType
	style      glint.Style
	titleStyle glint.Style
	paddingX   int
	paddingY   int
}

// NewBlock returns a block with no borders and rounded corners.
func NewBlock() Block {
	return Block{borderType: BorderRounded}
}

// Title sets the title drawn on the top border.
func (b Block) Title(title string) Block {
	b.title = title
	return b
}

// Borders sets which sides are drawn.
func (b Block) Borders(borders Borders) Block {
	b.borders = borders
	return b
}

// BorderType sets the border character set.
func (b Block) BorderType(t BorderType) Block {
	b.borderType = t
	return b
}

// Style sets the style of the borders.
func (b Block) Style(style glint.Style) Block {
	b.style = style
	return b
}

// TitleStyle sets the style of the title. If never set, the title is
// drawn with the border style.
func (b Block) TitleStyle(style glint.Style) Block {
	b.titleStyle = style
	return b
}

// Padding sets both horizontal and vertical padding.
func (b Block) Padding(padding int) Block {
	b.paddingX = padding
	b.paddingY = padding
	return b
}

// PaddingX sets the horizontal padding.
func (b Block) PaddingX(padding int) Block {
	b.paddingX = padding
	return b
}

// PaddingY sets the vertical padding.
func (b Block) PaddingY(padding int) Block {
	b.paddingY = padding
	return b
}

// Inner returns the area inside the borders and padding, for rendering
// other widgets within the block. Dimensions never go negative.
func (b Block) Inner(area glint.Rect) glint.Rect {
	x, y := area.X, area.Y
	w, h := area.Width, area.Height

	if b.borders.Contains(BordersLeft) {
		x++
		w--
	}
	if b.borders.Contains(BordersTop) {
		y++
		h--
	}
	if b.borders.Contains(BordersRight) {
		w--
	}
	if b.borders.Contains(BordersBottom) {
		h--
	}

	x += b.paddingX
	y += b.paddingY
	w -= b.paddingX * 2
	h -= b.paddingY * 2

	return glint.NewRect(x, y, max(w, 0), max(h, 0))
}

// Render draws the block's borders and title into the given area.
func (b Block) Render(area glint.Rect, f *glint.Frame) {
	if area.IsEmpty() {
		return
	}
	chars := b.borderType.chars()

	f.WithStyle(b.style, func(f *glint.Frame) {
		f.RenderArea(area, func(f *glint.Frame) {
			width, height := f.Width(), f.Height()

			// Sides run edge to edge; corners overwrite the
			// intersections afterwards.
			if b.borders.Contains(BordersTop) {
				for x := 0; x < width; x++ {
					f.WriteString(x, 0, string(chars.h))
				}
			}
			if b.borders.Contains(BordersBottom) {
				for x := 0; x < width; x++ {
					f.WriteString(x, height-1, string(chars.h))
				}
			}
			if b.borders.Contains(BordersLeft) {
				for y := 0; y < height; y++ {
					f.WriteString(0, y, string(chars.v))
				}
			}
			if b.borders.Contains(BordersRight) {
				for y := 0; y < height; y++ {
					f.WriteString(width-1, y, string(chars.v))
				}
			}

			corners := []struct {
				x, y int
				req  Borders
				sym  rune
			}{
				{0, 0, BordersTop | BordersLeft, chars.tl},
				{width - 1, 0, BordersTop | BordersRight, chars.tr},
				{0, height - 1, BordersBottom | BordersLeft, chars.bl},
				{width - 1, height - 1, BordersBottom | BordersRight, chars.br},
			}
			for _, c := range corners {
				if b.borders.Contains(c.req) {
					f.WriteString(c.x, c.y, string(c.sym))
				}
			}

			if b.title != "" {
				style := b.titleStyle
				if style.Equal(glint.Style{}) {
					style = b.style
				}
				f.WithStyle(style, func(f *glint.Frame) {
					f.WriteString(2, 0, " "+b.title+" ")
				})
			}
		})
	})
}
