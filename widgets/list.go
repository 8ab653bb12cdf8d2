package widgets

import (
	"strings"

	"github.com/grindlemire/glint"
)

// List renders a vertical list of items, one per row, with an optional
// selected item drawn in a highlight style behind a highlight symbol.
type List struct {
	items           []string
	selected        int
	style           glint.Style
	highlightStyle  glint.Style
	highlightSymbol string
}

// NewList returns a list with no selection.
func NewList(items []string) List {
	return List{items: items, selected: -1}
}

// Selected marks the item at index as selected. A negative index (or
// one past the end) clears the selection.
func (l List) Selected(index int) List {
	l.selected = index
	return l
}

// Style sets the style of unselected items.
func (l List) Style(style glint.Style) List {
	l.style = style
	return l
}

// HighlightStyle sets the style of the selected item.
func (l List) HighlightStyle(style glint.Style) List {
	l.highlightStyle = style
	return l
}

// HighlightSymbol sets the prefix drawn before the selected item.
// Unselected items are indented by the same width so the item text
// stays aligned.
func (l List) HighlightSymbol(symbol string) List {
	l.highlightSymbol = symbol
	return l
}

// Render draws the list into the given area. Items past the bottom of
// the area are dropped.
func (l List) Render(area glint.Rect, f *glint.Frame) {
	if area.IsEmpty() {
		return
	}
	indent := strings.Repeat(" ", len([]rune(l.highlightSymbol)))

	f.RenderArea(area, func(f *glint.Frame) {
		for y, item := range l.items {
			if y >= f.Height() {
				return
			}

			line := indent + item
			style := l.style
			if y == l.selected {
				line = l.highlightSymbol + item
				style = l.highlightStyle
			}

			runes := []rune(line)
			if len(runes) > f.Width() {
				runes = runes[:f.Width()]
			}
			f.WithStyle(style, func(f *glint.Frame) {
				f.WriteString(0, y, string(runes))
			})
		}
	})
}
