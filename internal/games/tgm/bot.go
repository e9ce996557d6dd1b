package tgm

import "github.com/vovakirdan/tui-grandmaster/internal/core"

// BotButtons is a fixed input script: confirm through the menus, then
// shuffle, rotate and soft drop on a cycle.
func BotButtons(tick int) core.ButtonSet {
	var down core.ButtonSet
	switch {
	case tick < 10:
		if tick%4 == 0 {
			down = down.Add(core.ButtonRotateCW1)
		}
	case tick%50 < 8:
		down = down.Add(core.ButtonLeft)
	case tick%50 < 16:
		down = down.Add(core.ButtonRight)
	case tick%50 == 20:
		down = down.Add(core.ButtonRotateCCW1)
	case tick%50 > 30:
		down = down.Add(core.ButtonDown)
	}
	return down
}

// RunBot steps g with BotButtons for the given number of ticks and returns
// the runs that finished along the way.
func RunBot(g *Game, ticks int) []core.RunSummary {
	var (
		frame    core.InputFrame
		finished []core.RunSummary
	)
	for i := range ticks {
		frame = frame.Advance(BotButtons(i))
		if res := g.Step(frame); res.Finished != nil {
			finished = append(finished, *res.Finished)
		}
	}
	return finished
}
