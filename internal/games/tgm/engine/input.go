package engine

import "github.com/vovakirdan/tui-grandmaster/internal/core"

var (
	ccwButtons = []core.Button{core.ButtonRotateCCW1, core.ButtonRotateCCW2}
	cwButtons  = []core.Button{core.ButtonRotateCW1, core.ButtonRotateCW2}
)

func heldAny(in core.InputFrame, bs []core.Button) bool {
	for _, b := range bs {
		if in.Pressed(b) {
			return true
		}
	}
	return false
}

// irsDirection is the rotation held through a spawn. Counter-clockwise wins
// when both directions are held.
func irsDirection(in core.InputFrame) Direction {
	switch {
	case heldAny(in, ccwButtons):
		return RotateCCW
	case heldAny(in, cwButtons):
		return RotateCW
	default:
		return RotateNone
	}
}

// rotationRequest is the live rotation for this tick. Fresh presses of both
// directions cancel out.
func rotationRequest(in core.InputFrame) Direction {
	ccw := in.AnyJustPressed(ccwButtons...)
	cw := in.AnyJustPressed(cwButtons...)
	switch {
	case ccw && cw:
		return RotateNone
	case ccw:
		return RotateCCW
	case cw:
		return RotateCW
	default:
		return RotateNone
	}
}

// confirmPressed reports a fresh press of any rotate button.
func confirmPressed(in core.InputFrame) bool {
	return in.AnyJustPressed(core.RotateButtons...)
}

// movement is the translation requested for one tick.
type movement struct {
	dRow, dCol int
	sonic      bool
}

// movementRequest resolves lateral auto-shift, soft drop and sonic drop.
// Horizontal input takes precedence: while either side is charging, down is
// ignored even on ticks that do not shift.
func movementRequest(left, right, threshold int, in core.InputFrame, sonic bool) movement {
	if left > 0 || right > 0 {
		if left > 0 && right > 0 {
			return movement{}
		}
		if left == 1 || left >= threshold {
			return movement{dCol: -1}
		}
		if right == 1 || right >= threshold {
			return movement{dCol: 1}
		}
		return movement{}
	}
	if in.Pressed(core.ButtonDown) {
		return movement{dRow: -1}
	}
	if sonic && in.JustPressed(core.ButtonUp) {
		return movement{sonic: true}
	}
	return movement{}
}

// updateCharge advances the auto-shift counters. Holding both sides, or
// neither, discharges both.
func (s *State) updateCharge(in core.InputFrame) {
	left, right := in.Pressed(core.ButtonLeft), in.Pressed(core.ButtonRight)
	switch {
	case left && right:
		s.leftCharge, s.rightCharge = 0, 0
	case left:
		s.leftCharge++
		s.rightCharge = 0
	case right:
		s.rightCharge++
		s.leftCharge = 0
	default:
		s.leftCharge, s.rightCharge = 0, 0
	}
}
