package engine

import "fmt"

// MaxLevel is the level cap. Reaching it ends the run.
const MaxLevel = 999

// Timer counts down the ticks of a time-boxed screen.
type Timer struct {
	Remaining int
	Total     int
}

// State is the whole simulation at one tick. It is a plain value: copying a
// State yields an independent snapshot sharing only the read-only Mode.
type State struct {
	level      int
	startLevel int
	well       Well
	active     Piece
	next       PieceType
	locked     Piece // last locked piece, kept for the flash
	firstPiece bool
	gravity    int
	lockDelay  int
	pending    RowSet

	leftCharge  int
	rightCharge int

	screen    ScreenID
	requested ScreenID
	timer     Timer
	cursor    int
	gameOver  bool

	preset *Mode // attached at the next game start
	mode   *Mode // rules of the current run
	rand   Randomizer

	tick    int
	runTick int // tick on which the current run started
}

// New returns the rest state on the start screen. mode is used for every
// run started from this state; seed drives the piece sequence.
func New(mode *Mode, seed uint64) State {
	if mode == nil {
		panic("engine: nil mode")
	}
	return State{
		screen:    ScreenStart,
		requested: ScreenStart,
		preset:    mode,
		mode:      mode,
		rand:      NewRandomizer(mode.Generator, seed),
	}
}

// WithMode returns a copy that attaches m at the next game start.
func (s State) WithMode(m *Mode) State {
	if m == nil {
		panic("engine: nil mode")
	}
	s.preset = m
	return s
}

// Screen returns the active screen.
func (s State) Screen() ScreenID { return s.screen }

// Requested returns the screen that will be entered on the next step.
func (s State) Requested() ScreenID { return s.requested }

// Level returns the current level.
func (s State) Level() int { return s.level }

// StartLevel returns the level the current run started at.
func (s State) StartLevel() int { return s.startLevel }

// IsGameOver reports whether the current run has hit the level cap.
func (s State) IsGameOver() bool { return s.gameOver }

// ActivePiece returns the piece in play, if any.
func (s State) ActivePiece() (Piece, bool) { return s.active, s.active.Present() }

// NextPiece returns the lookahead piece, or PieceNone.
func (s State) NextPiece() PieceType { return s.next }

// Well returns a copy of the playfield.
func (s State) Well() Well { return s.well }

// PendingRows returns the rows awaiting compaction.
func (s State) PendingRows() RowSet { return s.pending }

// Mode returns the rules in effect.
func (s State) Mode() *Mode { return s.mode }

// Tick returns the number of steps taken.
func (s State) Tick() int { return s.tick }

// RunTicks returns the ticks elapsed since the current run started.
func (s State) RunTicks() int { return s.tick - s.runTick }

// Timer returns the active screen countdown.
func (s State) Timer() Timer { return s.timer }

// Cursor returns the level-select cursor index.
func (s State) Cursor() int { return s.cursor }

// Counters exposes the internal counters for snapshots and debugging.
func (s State) Counters() (gravity, lockDelay, leftCharge, rightCharge int) {
	return s.gravity, s.lockDelay, s.leftCharge, s.rightCharge
}

// fall adds one tick of gravity and returns the whole rows to fall.
func (s *State) fall() int {
	s.gravity += s.mode.Gravity.Lookup(s.level)
	rows := s.gravity / s.mode.GravityDivisor
	s.gravity %= s.mode.GravityDivisor
	return rows
}

// lock merges p into the well and records any rows it completed.
func (s *State) lock(p Piece) {
	s.well.Merge(p)
	s.pending = s.well.FullRowsUnder(p)
	s.gravity = 0
	s.active = Piece{}
	s.locked = p
}

// clearLines compacts the pending rows and credits them to the level.
func (s *State) clearLines() {
	if s.pending.Len() == 0 {
		return
	}
	n := s.well.Compact(s.pending)
	s.pending = RowSet{}
	s.advanceLevel(n)
}

// advanceLevel applies level progression for a spawn (lines == 0) or a clear.
func (s *State) advanceLevel(lines int) {
	if s.firstPiece {
		s.firstPiece = false
		return
	}
	if s.gameOver {
		return
	}

	level := s.level
	switch {
	case lines > 0:
		level += lines
	case s.mode.Boundary.AllowsStep(level):
		level++
	}
	if level > MaxLevel-1 {
		level = MaxLevel
		s.gameOver = true
	}
	s.level = level
}

// SectionTarget returns the level that ends the current hundred.
func SectionTarget(level int) int {
	if level >= 900 {
		return MaxLevel
	}
	return (level/100 + 1) * 100
}

func (s State) String() string {
	return fmt.Sprintf("tick=%d screen=%s level=%d next=%s gameOver=%v",
		s.tick, s.screen, s.level, s.next, s.gameOver)
}
