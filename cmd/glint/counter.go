package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grindlemire/glint"
)

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "A minimal counter: + increments, - decrements, q quits",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(&counterApp{})
	},
}

type counterAction int

const (
	counterIncrement counterAction = iota
	counterDecrement
	counterQuit
)

type counterApp struct {
	value int
}

func (a *counterApp) OnEvent(ev glint.Event) (counterAction, bool) {
	key, ok := ev.(glint.KeyEvent)
	if !ok {
		return 0, false
	}
	switch key.Char() {
	case '+':
		return counterIncrement, true
	case '-':
		return counterDecrement, true
	case 'q':
		return counterQuit, true
	}
	return 0, false
}

func (a *counterApp) Update(action counterAction) glint.Command {
	switch action {
	case counterIncrement:
		a.value++
	case counterDecrement:
		a.value--
	case counterQuit:
		return glint.Quit
	}
	return glint.Continue
}

func (a *counterApp) Draw(f *glint.Frame) {
	f.WithStyle(
		glint.NewStyle().
			Foreground(glint.Magenta).
			Background(glint.RGBColor(0, 0, 255)).
			Bold(),
		func(f *glint.Frame) {
			f.WriteString(0, 0, "Count: "+strconv.Itoa(a.value))
		},
	)
	f.WriteString(0, 1, "Press +/-, q to quit")
}
