package tgm

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-grandmaster/internal/games/tgm/engine"
)

// Snapshot contains the observable game state for replay checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick       int
	Screen     string
	Level      int
	StartLevel int
	GameOver   bool

	// Active piece: type, row, col, rotation. Type 0 means no piece.
	Active [4]int
	Next   int

	Gravity     int
	LockDelay   int
	LeftCharge  int
	RightCharge int
	Timer       int

	// Well cells, row-major from the floor up.
	Cells [engine.WellRows * engine.WellCols]byte
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	snap := Snapshot{
		Tick:       s.Tick(),
		Screen:     s.Screen().String(),
		Level:      s.Level(),
		StartLevel: s.StartLevel(),
		GameOver:   s.IsGameOver(),
		Next:       int(s.NextPiece()),
		Timer:      s.Timer().Remaining,
	}
	if p, ok := s.ActivePiece(); ok {
		snap.Active = [4]int{int(p.Type), p.Row, p.Col, p.Rotation}
	}
	snap.Gravity, snap.LockDelay, snap.LeftCharge, snap.RightCharge = s.Counters()

	w := s.Well()
	for r := range engine.WellRows {
		for c := range engine.WellCols {
			snap.Cells[r*engine.WellCols+c] = byte(w[r][c])
		}
	}
	return snap
}

// Digest returns an xxhash64 of the snapshot.
func (snap Snapshot) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash input
		_, _ = d.Write(buf[:])
	}

	put(snap.Tick)
	_, _ = d.WriteString(snap.Screen)
	put(snap.Level)
	put(snap.StartLevel)
	if snap.GameOver {
		put(1)
	} else {
		put(0)
	}
	for _, v := range snap.Active {
		put(v)
	}
	put(snap.Next)
	put(snap.Gravity)
	put(snap.LockDelay)
	put(snap.LeftCharge)
	put(snap.RightCharge)
	put(snap.Timer)
	_, _ = d.Write(snap.Cells[:])
	return d.Sum64()
}
