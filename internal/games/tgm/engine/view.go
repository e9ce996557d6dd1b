package engine

// View is everything a renderer needs for one frame. It is derived from a
// State and never fed back into the simulation.
type View struct {
	Screen ScreenID
	Well   Well

	Active    Piece // zero when no piece is in play
	Cleared   RowSet
	Locked    Piece // piece flashing after lock, zero when not flashing
	FlashLeft int   // ticks of lock flash remaining

	Next   PieceType
	Level  int
	Target int

	Cursor       int
	LevelOptions []int
	Message      string
	Timer        Timer
}

// View builds the render snapshot.
func (s State) View() View {
	v := View{
		Screen:  s.screen,
		Well:    s.well,
		Active:  s.active,
		Cleared: s.pending,
		Next:    s.next,
		Level:   s.level,
		Target:  SectionTarget(s.level),
		Cursor:  s.cursor,
		Timer:   s.timer,
	}

	switch s.screen {
	case ScreenLevelSelect:
		v.LevelOptions = LevelOptions
	case ScreenGameStart:
		if s.timer.Remaining > s.timer.Total/2 {
			v.Message = "READY?"
		} else {
			v.Message = "GO!"
		}
	case ScreenEntryDelay:
		if s.locked.Present() {
			elapsed := s.timer.Total - s.timer.Remaining
			if left := s.mode.LockFlash - elapsed + 1; left > 0 {
				v.Locked = s.locked
				v.FlashLeft = left
			}
		}
	case ScreenGameOver:
		v.Message = "GAME OVER"
	}
	return v
}
