package glint

import "strconv"

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNull represents a null byte or empty event (zero value).
	KeyNull Key = iota

	// KeyRune represents a printable character.
	// Check KeyEvent.Rune for the character.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch k {
	case KeyNull:
		return "Null"
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	default:
		return "Unknown"
	}
}

// Modifier represents keyboard modifier flags as a bitfield.
type Modifier uint8

const (
	// ModNone represents no modifiers.
	ModNone Modifier = 0
	// ModShift indicates the Shift key was held.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Ctrl key was held.
	ModCtrl
	// ModAlt indicates the Alt key was held.
	ModAlt
)

// Contains returns true if the modifier set includes all of other.
func (m Modifier) Contains(other Modifier) bool {
	return m&other == other
}
