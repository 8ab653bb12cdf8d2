package widgets

import "github.com/grindlemire/glint"

// Gauge renders a horizontal progress bar filling its area, with an
// optional label drawn centered on the middle row.
type Gauge struct {
	ratio      float64
	label      string
	style      glint.Style
	gaugeStyle glint.Style
}

// NewGauge returns a gauge at the given fill ratio, clamped to [0, 1].
func NewGauge(ratio float64) Gauge {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return Gauge{ratio: ratio}
}

// Label sets the text drawn over the bar.
func (g Gauge) Label(label string) Gauge {
	g.label = label
	return g
}

// Style sets the style of the unfilled portion and the label.
func (g Gauge) Style(style glint.Style) Gauge {
	g.style = style
	return g
}

// GaugeStyle sets the style of the filled portion.
func (g Gauge) GaugeStyle(style glint.Style) Gauge {
	g.gaugeStyle = style
	return g
}

// Render draws the gauge into the given area.
func (g Gauge) Render(area glint.Rect, f *glint.Frame) {
	if area.IsEmpty() {
		return
	}
	f.RenderArea(area, func(f *glint.Frame) {
		width, height := f.Width(), f.Height()
		filled := int(g.ratio * float64(width))

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				style := g.style
				sym := " "
				if x < filled {
					style = g.gaugeStyle
					sym = "█"
				}
				f.WithStyle(style, func(f *glint.Frame) {
					f.WriteString(x, y, sym)
				})
			}
		}

		if g.label != "" {
			runes := []rune(g.label)
			if len(runes) > width {
				runes = runes[:width]
			}
			x := (width - len(runes)) / 2
			f.WithStyle(g.style, func(f *glint.Frame) {
				f.WriteString(x, height/2, string(runes))
			})
		}
	})
}
