package core

// Button is a logical input of the playfield controls.
// Each rotation direction has two physical binds, read as separate buttons.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonRotateCCW1 // first counter-clockwise bind
	ButtonRotateCW1  // first clockwise bind
	ButtonRotateCCW2 // second counter-clockwise bind
	ButtonRotateCW2  // second clockwise bind

	ButtonCount
)

// RotateButtons lists every rotation bind; any of them confirms in menus.
var RotateButtons = []Button{ButtonRotateCCW1, ButtonRotateCW1, ButtonRotateCCW2, ButtonRotateCW2}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonRotateCCW1:
		return "RotateCCW1"
	case ButtonRotateCW1:
		return "RotateCW1"
	case ButtonRotateCCW2:
		return "RotateCCW2"
	case ButtonRotateCW2:
		return "RotateCW2"
	default:
		return "Unknown"
	}
}

// ButtonSet is a bitmask of buttons physically down during one tick.
type ButtonSet uint16

// Add returns the set with b included.
func (s ButtonSet) Add(b Button) ButtonSet {
	if b < 0 || b >= ButtonCount {
		return s
	}
	return s | 1<<uint(b)
}

// Has reports whether b is in the set.
func (s ButtonSet) Has(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return s&(1<<uint(b)) != 0
}

// InputFrame is the held-duration snapshot for one simulation tick.
// Each counter is the number of consecutive ticks the button has been held;
// zero means released. A counter of exactly 1 is a fresh press.
type InputFrame struct {
	Held [ButtonCount]int
}

// HeldFor returns how many consecutive ticks b has been held.
func (f InputFrame) HeldFor(b Button) int {
	if b < 0 || b >= ButtonCount {
		return 0
	}
	return f.Held[b]
}

// Pressed returns true while b is held.
func (f InputFrame) Pressed(b Button) bool {
	return f.HeldFor(b) > 0
}

// JustPressed returns true only on the first tick of a hold.
func (f InputFrame) JustPressed(b Button) bool {
	return f.HeldFor(b) == 1
}

// AnyJustPressed returns true if any of the given buttons was freshly pressed.
func (f InputFrame) AnyJustPressed(bs ...Button) bool {
	for _, b := range bs {
		if f.JustPressed(b) {
			return true
		}
	}
	return false
}

// Advance returns the frame for the next tick given the buttons down now.
// Held buttons count up, released ones drop back to zero.
func (f InputFrame) Advance(down ButtonSet) InputFrame {
	var next InputFrame
	for b := Button(0); b < ButtonCount; b++ {
		if down.Has(b) {
			next.Held[b] = f.Held[b] + 1
		}
	}
	return next
}

// Down returns the set of buttons held in this frame.
func (f InputFrame) Down() ButtonSet {
	var s ButtonSet
	for b := Button(0); b < ButtonCount; b++ {
		if f.Held[b] > 0 {
			s = s.Add(b)
		}
	}
	return s
}
