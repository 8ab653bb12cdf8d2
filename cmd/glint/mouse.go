package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/glint"
	"github.com/grindlemire/glint/widgets"
)

var mouseCmd = &cobra.Command{
	Use:   "mouse",
	Short: "A mouse demo: click to drop a marker, q quits",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(&mouseApp{lastAction: "none yet"})
	},
}

// mouseApp forwards every event straight to Update, so its action type
// is the event itself.
type mouseApp struct {
	clickX, clickY int
	clicked        bool
	lastAction     string
}

func (a *mouseApp) OnEvent(ev glint.Event) (glint.Event, bool) {
	return ev, true
}

func (a *mouseApp) Update(ev glint.Event) glint.Command {
	switch e := ev.(type) {
	case glint.KeyEvent:
		if e.Char() == 'q' {
			return glint.Quit
		}
		a.lastAction = fmt.Sprintf("Key pressed: %v", e.Key)
		if e.IsRune() {
			a.lastAction = fmt.Sprintf("Key pressed: %q", e.Rune)
		}
	case glint.MouseEvent:
		a.clickX, a.clickY = e.X, e.Y
		a.clicked = true
		a.lastAction = fmt.Sprintf("Mouse %v at %d,%d", e.Kind, e.X, e.Y)
	case glint.ResizeEvent:
		a.lastAction = fmt.Sprintf("Resized to %dx%d", e.Width, e.Height)
	}
	return glint.Continue
}

func (a *mouseApp) Draw(f *glint.Frame) {
	area := f.Area()

	f.RenderWidget(widgets.NewBlock().
		Borders(widgets.BordersAll).
		Title("Mouse Demo").
		TitleStyle(glint.NewStyle().Foreground(glint.Green).Bold()),
		area)

	info := "Click anywhere! Press 'q' to quit.\n\nLast action: " + a.lastAction
	f.RenderWidget(widgets.NewText(info),
		glint.NewRect(2, 2, max(area.Width-4, 0), 5))

	if a.clicked && area.Contains(a.clickX, a.clickY) {
		f.WithStyle(glint.NewStyle().Foreground(glint.Red).Bold(), func(f *glint.Frame) {
			f.WriteString(a.clickX, a.clickY, "X")
		})
	}
}
