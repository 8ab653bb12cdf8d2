package glint

// Event is the base interface for all terminal events.
// Use a type switch to handle the specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Shift, Ctrl, Alt).
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Char returns the rune if this is a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyRune, ModCtrl).
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// MouseKind represents the type of mouse action.
type MouseKind int

const (
	// MouseLeftClick is a left (primary) button press.
	MouseLeftClick MouseKind = iota
	// MouseMiddleClick is a middle button (wheel) press.
	MouseMiddleClick
	// MouseRightClick is a right (secondary) button press.
	MouseRightClick
	// MouseScrollUp is a scroll wheel up event.
	MouseScrollUp
	// MouseScrollDown is a scroll wheel down event.
	MouseScrollDown
	// MouseOther is any report the decoder does not classify.
	MouseOther
)

// String returns a human-readable representation of the mouse kind.
func (k MouseKind) String() string {
	switch k {
	case MouseLeftClick:
		return "LeftClick"
	case MouseMiddleClick:
		return "MiddleClick"
	case MouseRightClick:
		return "RightClick"
	case MouseScrollUp:
		return "ScrollUp"
	case MouseScrollDown:
		return "ScrollDown"
	default:
		return "Other"
	}
}

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	// X is the column position (0-indexed).
	X int
	// Y is the row position (0-indexed).
	Y int
	// Kind is the type of mouse action.
	Kind MouseKind
}

func (MouseEvent) isEvent() {}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}
