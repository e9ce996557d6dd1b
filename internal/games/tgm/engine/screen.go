package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
)

// ScreenID names a control-flow screen.
type ScreenID int

const (
	ScreenStart ScreenID = iota
	ScreenLevelSelect
	ScreenGameStart
	ScreenPieceSpawn
	ScreenPieceLive
	ScreenEntryDelay
	ScreenLineClear
	ScreenGameOver

	screenCount
)

func (id ScreenID) String() string {
	switch id {
	case ScreenStart:
		return "start"
	case ScreenLevelSelect:
		return "levelSelect"
	case ScreenGameStart:
		return "gameStart"
	case ScreenPieceSpawn:
		return "pieceSpawn"
	case ScreenPieceLive:
		return "pieceLive"
	case ScreenEntryDelay:
		return "entryDelay"
	case ScreenLineClear:
		return "lineClear"
	case ScreenGameOver:
		return "gameOver"
	default:
		return fmt.Sprintf("screen(%d)", int(id))
	}
}

// Fixed screen durations in ticks.
const (
	GameStartDuration  = 120
	PieceSpawnDuration = 1
	GameOverDuration   = 300
)

// LevelOptions are the starting levels offered on the level select screen.
var LevelOptions = []int{0, 100, 200, 300, 400, 500, 600, 700, 800, 900}

var transitions = [screenCount][]ScreenID{
	ScreenStart:       {ScreenLevelSelect},
	ScreenLevelSelect: {ScreenGameStart},
	ScreenGameStart:   {ScreenPieceSpawn},
	ScreenPieceSpawn:  {ScreenPieceLive, ScreenGameOver},
	ScreenPieceLive:   {ScreenLineClear, ScreenEntryDelay},
	ScreenLineClear:   {ScreenEntryDelay},
	ScreenEntryDelay:  {ScreenPieceSpawn, ScreenGameOver},
	ScreenGameOver:    {ScreenStart},
}

// CanTransition reports whether to is a legal successor of from.
func CanTransition(from, to ScreenID) bool {
	if from < 0 || from >= screenCount {
		return false
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *State) request(next ScreenID) {
	if !CanTransition(s.screen, next) {
		panic(fmt.Sprintf("engine: illegal transition %s -> %s", s.screen, next))
	}
	s.requested = next
}

// countdown runs the screen timer and requests next once it expires.
func (s *State) countdown(next ScreenID) {
	s.timer.Remaining--
	if s.timer.Remaining <= 0 {
		s.request(next)
	}
}

func (s *State) startTimer(ticks int) {
	s.timer = Timer{Remaining: ticks, Total: ticks}
}

// Step advances the simulation by one tick. A pending screen request is
// entered first, then the active screen processes the input.
func Step(s State, in core.InputFrame) State {
	s.tick++
	if s.requested != s.screen {
		s.screen = s.requested
		s.enter()
	}
	s.process(in)
	return s
}

func (s *State) enter() {
	switch s.screen {
	case ScreenStart:
		s.enterStart()
	case ScreenGameStart:
		s.enterGameStart()
	case ScreenPieceSpawn:
		s.startTimer(PieceSpawnDuration)
	case ScreenPieceLive:
		s.timer = Timer{}
	case ScreenEntryDelay:
		s.enterEntryDelay()
	case ScreenLineClear:
		s.locked = Piece{}
		s.startTimer(s.mode.LineClearDelay.Lookup(s.level))
	case ScreenGameOver:
		s.active = Piece{}
		s.startTimer(GameOverDuration)
	}
}

func (s *State) process(in core.InputFrame) {
	switch s.screen {
	case ScreenStart:
		if confirmPressed(in) {
			s.request(ScreenLevelSelect)
		}
	case ScreenLevelSelect:
		s.processLevelSelect(in)
	case ScreenGameStart:
		s.updateCharge(in)
		s.countdown(ScreenPieceSpawn)
	case ScreenPieceSpawn:
		s.updateCharge(in)
		s.processPieceSpawn(in)
	case ScreenPieceLive:
		s.updateCharge(in)
		s.processPieceLive(in)
	case ScreenEntryDelay:
		s.updateCharge(in)
		if s.gameOver {
			s.countdown(ScreenGameOver)
		} else {
			s.countdown(ScreenPieceSpawn)
		}
	case ScreenLineClear:
		s.updateCharge(in)
		s.countdown(ScreenEntryDelay)
	case ScreenGameOver:
		s.countdown(ScreenStart)
	}
}

// enterStart returns the gameplay fields to rest. The random source and the
// selected mode survive so consecutive runs keep drawing new sequences.
func (s *State) enterStart() {
	s.level = 0
	s.startLevel = 0
	s.well = Well{}
	s.active = Piece{}
	s.next = PieceNone
	s.locked = Piece{}
	s.firstPiece = false
	s.gravity = 0
	s.lockDelay = 0
	s.pending = RowSet{}
	s.leftCharge, s.rightCharge = 0, 0
	s.timer = Timer{}
	s.cursor = 0
	s.gameOver = false
}

func (s *State) processLevelSelect(in core.InputFrame) {
	n := len(LevelOptions)
	if in.JustPressed(core.ButtonDown) {
		s.cursor = (s.cursor + 1) % n
	}
	if in.JustPressed(core.ButtonUp) {
		s.cursor = (s.cursor - 1 + n) % n
	}
	if confirmPressed(in) {
		s.level = LevelOptions[s.cursor]
		s.request(ScreenGameStart)
	}
}

func (s *State) enterGameStart() {
	s.well = Well{}
	s.mode = s.preset
	s.rand.Restart(s.mode.Generator)
	s.next = s.rand.Next(s.level)
	s.startLevel = s.level
	s.runTick = s.tick

	s.active = Piece{}
	s.locked = Piece{}
	s.firstPiece = true
	s.gravity = 0
	s.lockDelay = 0
	s.leftCharge, s.rightCharge = 0, 0
	s.pending = RowSet{}
	s.gameOver = false
	s.startTimer(GameStartDuration)
}

func (s *State) processPieceSpawn(in core.InputFrame) {
	s.timer.Remaining--
	s.locked = Piece{}

	p := SpawnPiece(s.next)
	s.next = s.rand.Next(s.level)

	// IRS never kicks.
	if turned := p.Rotated(irsDirection(in)); !Collides(turned, &s.well) {
		p = turned
	} else if Collides(p, &s.well) {
		s.request(ScreenGameOver)
		return
	}

	p.Row += Drop(p, &s.well, s.fall())
	s.lockDelay = s.mode.LockDelay.Lookup(s.level)
	s.active = p
	s.advanceLevel(0)
	s.request(ScreenPieceLive)
}

func (s *State) processPieceLive(in core.InputFrame) {
	p := s.active
	movedDown, locked := false, false

	if dir := rotationRequest(in); dir != RotateNone {
		p = s.mode.Rotate(p, &s.well, dir)
	}

	threshold := s.mode.DASThreshold.Lookup(s.level)
	mv := movementRequest(s.leftCharge, s.rightCharge, threshold, in, s.mode.SonicDrop)
	switch {
	case mv.sonic:
		if off := Drop(p, &s.well, WellRows); off != 0 {
			p.Row += off
			movedDown = true
		}
	case mv.dRow != 0 || mv.dCol != 0:
		if CanMove(p, &s.well, mv.dRow, mv.dCol) {
			p = p.Moved(mv.dRow, mv.dCol)
			movedDown = mv.dRow != 0
		} else if mv.dRow != 0 {
			// soft drop against the stack locks at once
			locked = true
		}
	}

	if off := Drop(p, &s.well, s.fall()); off != 0 {
		p.Row += off
		movedDown = true
	}

	if movedDown {
		s.lockDelay = s.mode.LockDelay.Lookup(s.level)
	} else if HasBottomContact(p, &s.well) {
		s.lockDelay--
		if s.lockDelay <= 0 {
			locked = true
		}
	}

	if !locked {
		s.active = p
		return
	}
	s.lock(p)
	if s.pending.Len() > 0 {
		s.request(ScreenLineClear)
	} else {
		s.request(ScreenEntryDelay)
	}
}

func (s *State) enterEntryDelay() {
	if s.pending.Len() > 0 {
		s.startTimer(s.mode.LineClearARE.Lookup(s.level))
	} else {
		s.startTimer(s.mode.ARE.Lookup(s.level))
	}
	s.clearLines()
}
