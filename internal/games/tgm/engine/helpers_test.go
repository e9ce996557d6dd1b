package engine

import (
	"testing"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
)

func hold(n int, bs ...core.Button) core.InputFrame {
	var f core.InputFrame
	for _, b := range bs {
		f.Held[b] = n
	}
	return f
}

func press(bs ...core.Button) core.InputFrame {
	return hold(1, bs...)
}

// livePiece returns a state with p in play on an otherwise empty well.
func livePiece(mode *Mode, p Piece) State {
	s := New(mode, 1)
	s.screen, s.requested = ScreenPieceLive, ScreenPieceLive
	s.active = p
	s.next = PieceO
	s.lockDelay = mode.LockDelay.Lookup(0)
	return s
}

// stepUntil steps with in until the active screen is want.
func stepUntil(t *testing.T, s State, want ScreenID, in core.InputFrame) State {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if s.Screen() == want {
			return s
		}
		s = Step(s, in)
	}
	t.Fatalf("screen %s not reached, stuck on %s", want, s.Screen())
	return s
}

// startRun drives a fresh state through the menus to a spawn request.
func startRun(t *testing.T, mode *Mode, seed uint64, levelIndex int) State {
	t.Helper()
	return startRunFrom(t, New(mode, seed), levelIndex)
}

func startRunFrom(t *testing.T, s State, levelIndex int) State {
	t.Helper()
	s = Step(s, press(core.ButtonRotateCW1))
	s = Step(s, core.InputFrame{})
	for i := 0; i < levelIndex; i++ {
		s = Step(s, press(core.ButtonDown))
		s = Step(s, core.InputFrame{})
	}
	s = Step(s, press(core.ButtonRotateCW1))
	for s.Requested() != ScreenPieceSpawn {
		s = Step(s, core.InputFrame{})
		if s.Tick() > 10000 {
			t.Fatal("game start never finished")
		}
	}
	return s
}
