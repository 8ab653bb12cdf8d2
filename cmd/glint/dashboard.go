package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/glint"
	"github.com/grindlemire/glint/widgets"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "A multi-pane layout demo with a navigable sidebar",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(&dashboardApp{})
	},
}

type dashboardAction int

const (
	dashNavUp dashboardAction = iota
	dashNavDown
	dashQuit
)

var dashboardPages = []string{"Overview", "Analytics", "Settings"}

type dashboardApp struct {
	selected int
}

func (a *dashboardApp) OnEvent(ev glint.Event) (dashboardAction, bool) {
	key, ok := ev.(glint.KeyEvent)
	if !ok {
		return 0, false
	}
	switch {
	case key.Is(glint.KeyUp) || key.Char() == 'k':
		return dashNavUp, true
	case key.Is(glint.KeyDown) || key.Char() == 'j':
		return dashNavDown, true
	case key.Char() == 'q':
		return dashQuit, true
	}
	return 0, false
}

func (a *dashboardApp) Update(action dashboardAction) glint.Command {
	switch action {
	case dashNavUp:
		if a.selected > 0 {
			a.selected--
		}
	case dashNavDown:
		if a.selected < len(dashboardPages)-1 {
			a.selected++
		}
	case dashQuit:
		return glint.Quit
	}
	return glint.Continue
}

func (a *dashboardApp) Draw(f *glint.Frame) {
	accent := glint.RGBColor(0, 122, 204)
	dim := glint.RGBColor(100, 100, 100)

	areas := glint.NewLayout(glint.Vertical,
		glint.Length(3),
		glint.Fill(),
		glint.Length(1),
	).SplitN(f.Area(), 3)
	headerArea, bodyArea, footerArea := areas[0], areas[1], areas[2]

	// Header
	headerBlock := widgets.NewBlock().
		Borders(widgets.BordersBottom).
		Style(glint.NewStyle().Foreground(accent))
	headerInner := headerBlock.Inner(headerArea)
	f.RenderWidget(headerBlock, headerArea)

	f.RenderWidget(widgets.NewText(" GLINT DASHBOARD ").Style(
		glint.NewStyle().Foreground(glint.White).Background(accent).Bold(),
	), headerInner)

	// Body
	body := glint.NewLayout(glint.Horizontal,
		glint.Ratio(1, 4),
		glint.Length(1),
		glint.Fill(),
	).SplitN(bodyArea, 3)
	sidebarArea, contentArea := body[0], body[2]

	sidebarBlock := widgets.NewBlock().
		Borders(widgets.BordersAll).
		Title("Navigation").
		TitleStyle(glint.NewStyle().Foreground(glint.Yellow).Bold()).
		Style(glint.NewStyle().Foreground(dim))
	sidebarInner := sidebarBlock.Inner(sidebarArea)
	f.RenderWidget(sidebarBlock, sidebarArea)

	f.RenderWidget(widgets.NewList(dashboardPages).
		Selected(a.selected).
		HighlightSymbol("> ").
		HighlightStyle(glint.NewStyle().Foreground(glint.Black).Background(glint.Cyan)),
		sidebarInner)

	contentBlock := widgets.NewBlock().
		Borders(widgets.BordersAll).
		Title("System Status").
		TitleStyle(glint.NewStyle().Foreground(glint.Cyan).Bold()).
		Style(glint.NewStyle().Foreground(accent))
	contentInner := contentBlock.Inner(contentArea)
	f.RenderWidget(contentBlock, contentArea)

	f.RenderArea(contentInner, func(f *glint.Frame) {
		f.WriteString(0, 0, "CPU Usage:")
		f.RenderWidget(widgets.NewGauge(0.42).
			Label("42%").
			GaugeStyle(glint.NewStyle().Background(glint.Green)),
			glint.NewRect(contentInner.X+11, contentInner.Y, 20, 1))

		f.WriteString(0, 2, "Memory:")
		f.RenderWidget(widgets.NewGauge(0.64).
			Label("64%").
			GaugeStyle(glint.NewStyle().Background(glint.Yellow)),
			glint.NewRect(contentInner.X+11, contentInner.Y+2, 20, 1))

		f.WriteString(0, 4, "Disk I/O:  Stable")
	})

	// Footer
	f.RenderWidget(widgets.NewText(" j/k or arrows: navigate | q: quit ").
		Style(glint.NewStyle().Foreground(dim)), footerArea)
}
