package engine

import (
	"errors"
	"fmt"
	"sort"
)

// LevelTable maps level thresholds to values. Levels must ascend from 0;
// Lookup returns the value of the last threshold not above the level.
type LevelTable struct {
	Levels []int
	Values []int
}

// Fixed returns a table with one value for every level.
func Fixed(v int) LevelTable {
	return LevelTable{Levels: []int{0}, Values: []int{v}}
}

// Lookup returns the table value for level.
func (t LevelTable) Lookup(level int) int {
	i := sort.Search(len(t.Levels), func(i int) bool { return t.Levels[i] > level })
	if i == 0 {
		return t.Values[0]
	}
	return t.Values[i-1]
}

// Validate checks the table shape. min is the smallest allowed value.
func (t LevelTable) Validate(min int) error {
	if len(t.Levels) == 0 {
		return errors.New("empty table")
	}
	if len(t.Levels) != len(t.Values) {
		return fmt.Errorf("%d levels but %d values", len(t.Levels), len(t.Values))
	}
	if t.Levels[0] != 0 {
		return fmt.Errorf("first threshold is %d, expected 0", t.Levels[0])
	}
	for i := 1; i < len(t.Levels); i++ {
		if t.Levels[i] <= t.Levels[i-1] {
			return fmt.Errorf("threshold %d not above %d", t.Levels[i], t.Levels[i-1])
		}
	}
	for _, v := range t.Values {
		if v < min {
			return fmt.Errorf("value %d below minimum %d", v, min)
		}
	}
	return nil
}

// BoundaryPolicy decides whether placing a piece, without clearing lines,
// may advance the level.
type BoundaryPolicy int

const (
	// BoundarySectionStop holds the level at 998 and, below 900, at every
	// x99 until a line clear pushes it over.
	BoundarySectionStop BoundaryPolicy = iota
	// BoundaryCentury holds the level at every x99.
	BoundaryCentury
)

// AllowsStep reports whether a placement may advance from level.
func (b BoundaryPolicy) AllowsStep(level int) bool {
	switch b {
	case BoundaryCentury:
		return level%100 != 99
	default:
		if level == MaxLevel-1 {
			return false
		}
		return level >= 900 || level%100 != 99
	}
}

// String returns the policy name used in rule files.
func (b BoundaryPolicy) String() string {
	switch b {
	case BoundarySectionStop:
		return "section"
	case BoundaryCentury:
		return "century"
	default:
		return "unknown"
	}
}

// ParseBoundaryPolicy converts a rule-file name to a policy.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch s {
	case "section":
		return BoundarySectionStop, nil
	case "century":
		return BoundaryCentury, nil
	default:
		return 0, fmt.Errorf("engine: unknown boundary policy %q", s)
	}
}

// GeneratorSpec configures the history randomizer.
type GeneratorSpec struct {
	History []PieceType // initial history contents
	Tries   int         // draws before accepting a repeat
}

// Mode is the immutable rule bundle attached to a run.
type Mode struct {
	Name           string
	Gravity        LevelTable // gravity units added per tick
	GravityDivisor int        // units per row of fall
	ARE            LevelTable // spawn delay after a lock without clears
	LineClearARE   LevelTable // spawn delay after a clear
	LockDelay      LevelTable
	LineClearDelay LevelTable
	DASThreshold   LevelTable
	LockFlash      int // ticks the locked piece flashes during entry delay
	Generator      GeneratorSpec
	Rotate         RotationSystem
	Boundary       BoundaryPolicy
	SonicDrop      bool // up drops the piece to the floor without locking
}

// Validate reports the first problem with the bundle.
func (m *Mode) Validate() error {
	tables := []struct {
		name  string
		table LevelTable
		min   int
	}{
		{"gravity", m.Gravity, 0},
		{"are", m.ARE, 1},
		{"line_clear_are", m.LineClearARE, 1},
		{"lock_delay", m.LockDelay, 1},
		{"line_clear_delay", m.LineClearDelay, 1},
		{"das", m.DASThreshold, 1},
	}
	for _, tc := range tables {
		if err := tc.table.Validate(tc.min); err != nil {
			return fmt.Errorf("engine: mode %q: %s: %w", m.Name, tc.name, err)
		}
	}
	if m.GravityDivisor <= 0 {
		return fmt.Errorf("engine: mode %q: gravity divisor must be positive", m.Name)
	}
	if m.LockFlash < 0 {
		return fmt.Errorf("engine: mode %q: lock flash must not be negative", m.Name)
	}
	if n := len(m.Generator.History); n == 0 || n > maxHistory {
		return fmt.Errorf("engine: mode %q: history length %d not in 1..%d", m.Name, n, maxHistory)
	}
	for _, t := range m.Generator.History {
		if t == PieceNone {
			return fmt.Errorf("engine: mode %q: history holds an empty piece", m.Name)
		}
	}
	if m.Generator.Tries < 1 {
		return fmt.Errorf("engine: mode %q: randomizer tries must be at least 1", m.Name)
	}
	if m.Rotate == nil {
		return fmt.Errorf("engine: mode %q: no rotation system", m.Name)
	}
	return nil
}

var classicGravity = LevelTable{
	Levels: []int{0, 30, 35, 40, 50, 60, 70, 80, 90, 100, 120, 140, 160, 170, 200,
		220, 230, 233, 236, 239, 243, 247, 251, 300, 330, 360, 400, 420, 450, 500},
	Values: []int{4, 6, 8, 10, 12, 16, 32, 48, 64, 80, 96, 112, 128, 144, 4,
		32, 64, 96, 128, 160, 192, 224, 256, 512, 768, 1024, 1280, 1024, 768, 5120},
}

// Classic returns the first-generation rule set: fixed delays throughout.
func Classic() *Mode {
	return &Mode{
		Name:           "classic",
		Gravity:        classicGravity,
		GravityDivisor: 256,
		ARE:            Fixed(30),
		LineClearARE:   Fixed(30),
		LockDelay:      Fixed(30),
		LineClearDelay: Fixed(41),
		DASThreshold:   Fixed(14),
		LockFlash:      3,
		Generator: GeneratorSpec{
			History: []PieceType{PieceZ, PieceZ, PieceZ, PieceZ},
			Tries:   4,
		},
		Rotate:   ClassicRotation,
		Boundary: BoundarySectionStop,
	}
}

var masterThresholds = []int{0, 500, 601, 701, 801, 900, 901}

// Master returns the second-generation rule set: delays shrink past 500 and
// up sonic-drops the piece.
func Master() *Mode {
	return &Mode{
		Name:           "master",
		Gravity:        classicGravity,
		GravityDivisor: 256,
		ARE:            LevelTable{Levels: masterThresholds, Values: []int{25, 25, 25, 16, 12, 12, 12}},
		LineClearARE:   LevelTable{Levels: masterThresholds, Values: []int{25, 25, 16, 12, 6, 6, 6}},
		LockDelay:      LevelTable{Levels: masterThresholds, Values: []int{30, 30, 30, 30, 30, 30, 17}},
		LineClearDelay: LevelTable{Levels: masterThresholds, Values: []int{40, 25, 16, 12, 6, 6, 6}},
		DASThreshold:   LevelTable{Levels: masterThresholds, Values: []int{14, 8, 8, 8, 8, 6, 6}},
		LockFlash:      2,
		Generator: GeneratorSpec{
			History: []PieceType{PieceZ, PieceZ, PieceS, PieceS},
			Tries:   6,
		},
		Rotate:    ClassicRotation,
		Boundary:  BoundaryCentury,
		SonicDrop: true,
	}
}
