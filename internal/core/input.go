package core

// Key is a physical key the game reacts to, independent of the frontend.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyEscape
	KeyEnter
	KeySpace
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	default:
		return "None"
	}
}

// EventKind distinguishes key presses from releases.
type EventKind int

const (
	KeyPressed EventKind = iota
	KeyReleased
)

// InputEvent is one discrete input event queued for the next tick.
type InputEvent struct {
	Kind EventKind
	Key  Key
}

// Press builds a key-down event.
func Press(k Key) InputEvent {
	return InputEvent{Kind: KeyPressed, Key: k}
}

// Release builds a key-up event.
func Release(k Key) InputEvent {
	return InputEvent{Kind: KeyReleased, Key: k}
}
