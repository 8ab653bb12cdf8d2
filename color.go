package glint

import (
	"errors"
	"strconv"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents no color set. Styles leave the terminal's
	// current color untouched for a default-colored channel.
	ColorDefault ColorType = iota
	// ColorReset explicitly resets a channel to the terminal default
	// (SGR 39 foreground / 49 background).
	ColorReset
	// ColorNamed represents one of the 16 named ANSI colors.
	ColorNamed
	// ColorIndexed represents an ANSI 256 palette color (0-255).
	ColorIndexed
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color. The zero value is the terminal's
// default color (no code emitted).
type Color struct {
	typ ColorType
	// For ColorNamed: r holds the name index (0-15).
	// For ColorIndexed: r holds the palette index.
	// For ColorRGB: r, g, b hold the components.
	r, g, b uint8
}

// The 16 named ANSI colors. The first eight map to SGR 30-37 foreground
// and 40-47 background; the bright variants map to 90-97 and 100-107.
var (
	Black         = named(0)
	Red           = named(1)
	Green         = named(2)
	Yellow        = named(3)
	Blue          = named(4)
	Magenta       = named(5)
	Cyan          = named(6)
	White         = named(7)
	BrightBlack   = named(8)
	BrightRed     = named(9)
	BrightGreen   = named(10)
	BrightYellow  = named(11)
	BrightBlue    = named(12)
	BrightMagenta = named(13)
	BrightCyan    = named(14)
	BrightWhite   = named(15)
)

func named(index uint8) Color {
	return Color{typ: ColorNamed, r: index}
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// ResetColor returns a Color that explicitly resets a channel to the
// terminal default.
func ResetColor() Color {
	return Color{typ: ColorReset}
}

// IndexedColor returns a Color from the ANSI 256 palette.
func IndexedColor(index uint8) Color {
	return Color{typ: ColorIndexed, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// ErrInvalidHexColor is returned by HexColor for malformed input.
var ErrInvalidHexColor = errors.New("invalid hex color: expected 6 hex digits with optional leading #")

// HexColor parses a "#RRGGBB" (or "RRGGBB") string into an RGB Color.
// Any other form, including the short "#RGB" notation, is an error.
func HexColor(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return Color{}, ErrInvalidHexColor
	}
	r, err := parseHexByte(s[0:2])
	if err != nil {
		return Color{}, err
	}
	g, err := parseHexByte(s[2:4])
	if err != nil {
		return Color{}, err
	}
	b, err := parseHexByte(s[4:6])
	if err != nil {
		return Color{}, err
	}
	return RGBColor(r, g, b), nil
}

func parseHexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, ErrInvalidHexColor
	}
	return uint8(v), nil
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("glint: Color.RGB() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Index returns the palette index of an indexed color.
// Panics if the color is not an indexed color.
func (c Color) Index() uint8 {
	if c.typ != ColorIndexed {
		panic("glint: Color.Index() called on non-indexed color")
	}
	return c.r
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// fgCode returns the SGR parameter for this color as a foreground.
// Returns "" for the default color.
func (c Color) fgCode() string {
	switch c.typ {
	case ColorReset:
		return "39"
	case ColorNamed:
		if c.r < 8 {
			return strconv.Itoa(30 + int(c.r))
		}
		return strconv.Itoa(90 + int(c.r-8))
	case ColorIndexed:
		return "38;5;" + strconv.Itoa(int(c.r))
	case ColorRGB:
		return "38;2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
	}
	return ""
}

// bgCode returns the SGR parameter for this color as a background.
// Returns "" for the default color.
func (c Color) bgCode() string {
	switch c.typ {
	case ColorReset:
		return "49"
	case ColorNamed:
		if c.r < 8 {
			return strconv.Itoa(40 + int(c.r))
		}
		return strconv.Itoa(100 + int(c.r-8))
	case ColorIndexed:
		return "48;5;" + strconv.Itoa(int(c.r))
	case ColorRGB:
		return "48;2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
	}
	return ""
}
