package widgets

import (
	"strings"

	"github.com/grindlemire/glint"
)

// Text renders a string in its area, one line per row. Lines past the
// bottom of the area are dropped; overlong lines run to the right edge.
type Text struct {
	content string
	style   glint.Style
}

// NewText returns a text widget with the given content.
func NewText(content string) Text {
	return Text{content: content}
}

// Style sets the style of the text.
func (t Text) Style(style glint.Style) Text {
	t.style = style
	return t
}

// Render draws the text into the given area.
func (t Text) Render(area glint.Rect, f *glint.Frame) {
	if area.IsEmpty() {
		return
	}
	f.WithStyle(t.style, func(f *glint.Frame) {
		f.RenderArea(area, func(f *glint.Frame) {
			for y, line := range strings.Split(t.content, "\n") {
				if y >= f.Height() {
					return
				}
				runes := []rune(line)
				if len(runes) > f.Width() {
					runes = runes[:f.Width()]
				}
				f.WriteString(0, y, string(runes))
			}
		})
	})
}
