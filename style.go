package glint

import "strings"

// Attr represents text attributes as a bitfield for efficient
// comparison and storage.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrReversed swaps foreground and background colors.
	AttrReversed
)

// Style combines foreground and background colors with text attributes.
// The zero value is the default style (default colors, no attributes).
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Attr returns a new Style with the given attribute(s) added.
func (s Style) Attr(a Attr) Style {
	s.Attrs |= a
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	return s.Attr(AttrBold)
}

// Italic returns a new Style with the italic attribute set.
func (s Style) Italic() Style {
	return s.Attr(AttrItalic)
}

// Underline returns a new Style with the underline attribute set.
func (s Style) Underline() Style {
	return s.Attr(AttrUnderline)
}

// Reversed returns a new Style with the reverse-video attribute set.
func (s Style) Reversed() Style {
	return s.Attr(AttrReversed)
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	return s.Attr(AttrDim)
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s == other
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// ANSI returns the SGR escape sequence that applies this style.
// The sequence always begins with a reset, followed by the foreground
// code, the background code, and one code per active attribute in the
// order bold, dim, italic, underline, reversed.
func (s Style) ANSI() string {
	codes := make([]string, 0, 4)
	codes = append(codes, "0")

	if fg := s.Fg.fgCode(); fg != "" {
		codes = append(codes, fg)
	}
	if bg := s.Bg.bgCode(); bg != "" {
		codes = append(codes, bg)
	}
	if s.HasAttr(AttrBold) {
		codes = append(codes, "1")
	}
	if s.HasAttr(AttrDim) {
		codes = append(codes, "2")
	}
	if s.HasAttr(AttrItalic) {
		codes = append(codes, "3")
	}
	if s.HasAttr(AttrUnderline) {
		codes = append(codes, "4")
	}
	if s.HasAttr(AttrReversed) {
		codes = append(codes, "7")
	}

	return "\x1b[" + strings.Join(codes, ";") + "m"
}
