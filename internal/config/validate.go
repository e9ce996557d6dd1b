package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const maxHistory = 8

var (
	pieceLetters = "ITLJSZO"
	rotations    = []string{"classic"}
	boundaries   = []string{"century", "section"}
)

// Validate checks every mode and reports the first problem found.
func (c RulesConfig) Validate() error {
	if len(c.Modes) == 0 {
		return errors.New("config: no modes defined")
	}
	ids := make([]string, 0, len(c.Modes))
	for id := range c.Modes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		m := c.Modes[id]
		if err := m.Validate(); err != nil {
			return fmt.Errorf("config: mode %q: %w", id, err)
		}
	}
	return nil
}

// Validate checks the mode's tables and names.
func (m ModeConfig) Validate() error {
	tables := []struct {
		name  string
		table Table
		min   int
	}{
		{"gravity", m.Gravity, 0},
		{"are", m.ARE, 1},
		{"line_clear_are", m.LineClearARE, 1},
		{"lock_delay", m.LockDelay, 1},
		{"line_clear_delay", m.LineClearDelay, 1},
		{"das", m.DAS, 1},
	}
	for _, tc := range tables {
		if err := tc.table.Validate(tc.min); err != nil {
			return fmt.Errorf("%s: %w", tc.name, err)
		}
	}

	if m.GravityDivisor <= 0 {
		return fmt.Errorf("gravity_divisor must be positive, got %d", m.GravityDivisor)
	}
	if m.LockFlash < 0 {
		return fmt.Errorf("lock_flash must not be negative, got %d", m.LockFlash)
	}

	h := m.Randomizer.History
	if len(h) == 0 || len(h) > maxHistory {
		return fmt.Errorf("randomizer: history length %d not in 1..%d", len(h), maxHistory)
	}
	for _, p := range h {
		if len(p) != 1 || !strings.Contains(pieceLetters, strings.ToUpper(p)) {
			return fmt.Errorf("randomizer: unknown piece %q", p)
		}
	}
	if m.Randomizer.Tries < 1 {
		return fmt.Errorf("randomizer: tries must be at least 1, got %d", m.Randomizer.Tries)
	}

	if !contains(rotations, m.Rotation) {
		return fmt.Errorf("unknown rotation %q", m.Rotation)
	}
	if !contains(boundaries, m.Boundary) {
		return fmt.Errorf("unknown boundary %q", m.Boundary)
	}
	return nil
}

// Validate checks the table shape. min is the smallest allowed value.
func (t Table) Validate(min int) error {
	if len(t.Levels) == 0 {
		return errors.New("empty table")
	}
	if len(t.Levels) != len(t.Values) {
		return fmt.Errorf("%d levels but %d values", len(t.Levels), len(t.Values))
	}
	if t.Levels[0] != 0 {
		return fmt.Errorf("first level is %d, expected 0", t.Levels[0])
	}
	for i := 1; i < len(t.Levels); i++ {
		if t.Levels[i] <= t.Levels[i-1] {
			return fmt.Errorf("level %d does not ascend past %d", t.Levels[i], t.Levels[i-1])
		}
	}
	for _, v := range t.Values {
		if v < min {
			return fmt.Errorf("value %d below minimum %d", v, min)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
