package glint

import (
	"fmt"
	"time"
)

// Command is returned by an application to control the runtime loop.
type Command int

const (
	// Continue keeps the loop running.
	Continue Command = iota
	// Quit stops the loop and triggers terminal teardown.
	Quit
)

// Application is the state machine the runtime drives. A is the
// application's own action type.
//
// OnEvent classifies a terminal event into an action (or reports no
// interest); it must not mutate state. Update is the sole state-mutation
// point. Draw renders the current state into a frame and must not mutate
// state either.
type Application[A any] interface {
	OnEvent(ev Event) (action A, ok bool)
	Update(action A) Command
	Draw(f *Frame)
}

// Initializer is optionally implemented by applications that want a hook
// before the first frame. Returning Quit skips the loop entirely;
// terminal teardown still happens.
type Initializer interface {
	Init() Command
}

// config carries the runtime options applied by Run.
type config struct {
	sys           System
	logger        *Logger
	frameDuration time.Duration
}

// Option is a functional option for configuring the runtime.
type Option func(*config) error

// WithSystem selects the device backend. Defaults to the production
// UnixSystem; tests inject a MockSystem.
func WithSystem(sys System) Option {
	return func(c *config) error {
		if sys == nil {
			return fmt.Errorf("nil System")
		}
		c.sys = sys
		return nil
	}
}

// WithLogger sets the diagnostic sink for non-fatal teardown failures.
func WithLogger(logger *Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithFrameRate sets the frame-rate ceiling. Default is 60 fps.
func WithFrameRate(fps int) Option {
	return func(c *config) error {
		if fps < 1 || fps > 240 {
			return fmt.Errorf("frame rate %d out of range 1-240", fps)
		}
		c.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// Run drives app with the single-threaded runtime loop until it returns
// Quit or a device error occurs. Each iteration draws the application
// into a fresh buffer, flushes the diff against the previous frame,
// performs one input cycle, dispatches the decoded events, and sleeps
// briefly to cap the frame rate.
//
// The terminal is restored on every exit path.
func Run[A any](app Application[A], opts ...Option) error {
	cfg := config{
		sys:           UnixSystem{},
		frameDuration: 16 * time.Millisecond,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}

	term, err := NewTerminalWith(cfg.sys, cfg.logger)
	if err != nil {
		return err
	}
	defer term.Close()

	return runLoop(app, term, NewInput(), cfg.frameDuration)
}

// runLoop is the loop body, split out so tests can drive it with an
// already constructed terminal.
func runLoop[A any](app Application[A], term *Terminal, in *Input, frameDuration time.Duration) error {
	if init, ok := any(app).(Initializer); ok {
		if init.Init() == Quit {
			return nil
		}
	}

	var (
		renderer              *Renderer
		lastWidth, lastHeight int
	)

	for {
		width, height, err := term.Size()
		if err != nil {
			return fmt.Errorf("query terminal size: %w", err)
		}
		if renderer == nil {
			renderer = NewRenderer(width, height)
			lastWidth, lastHeight = width, height
		}

		buf := NewBuffer(width, height)
		app.Draw(NewFrame(buf))
		if err := renderer.Render(term, buf); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}

		events, err := in.Read(term)
		if err != nil {
			return err
		}
		if width != lastWidth || height != lastHeight {
			lastWidth, lastHeight = width, height
			events = append([]Event{ResizeEvent{Width: width, Height: height}}, events...)
		}
		for _, ev := range events {
			action, ok := app.OnEvent(ev)
			if !ok {
				continue
			}
			if app.Update(action) == Quit {
				return nil
			}
		}

		time.Sleep(frameDuration)
	}
}
