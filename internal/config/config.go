// Package config provides YAML-based rule table loading for the
// falling-block modes.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RulesConfig holds every mode known to the rule file, keyed by mode ID.
type RulesConfig struct {
	Modes map[string]ModeConfig `yaml:"modes"`
}

// Mode returns the mode with the given ID.
func (c RulesConfig) Mode(id string) (ModeConfig, bool) {
	m, ok := c.Modes[id]
	return m, ok
}

// ModeConfig is the file form of one rule bundle.
type ModeConfig struct {
	Title          string           `yaml:"title"`
	Gravity        Table            `yaml:"gravity"`
	GravityDivisor int              `yaml:"gravity_divisor"`
	ARE            Table            `yaml:"are"`
	LineClearARE   Table            `yaml:"line_clear_are"`
	LockDelay      Table            `yaml:"lock_delay"`
	LineClearDelay Table            `yaml:"line_clear_delay"`
	DAS            Table            `yaml:"das"`
	LockFlash      int              `yaml:"lock_flash"`
	Randomizer     RandomizerConfig `yaml:"randomizer"`
	Rotation       string           `yaml:"rotation"` // "classic"
	Boundary       string           `yaml:"boundary"` // "section" or "century"
	SonicDrop      bool             `yaml:"sonic_drop"`
}

// RandomizerConfig configures the history randomizer.
type RandomizerConfig struct {
	History []string `yaml:"history"` // piece letters, oldest first
	Tries   int      `yaml:"tries"`
}

// Table is a level-threshold table. In YAML it is either a mapping with
// parallel levels/values lists or a bare integer meaning one value for
// every level.
type Table struct {
	Levels []int `yaml:"levels"`
	Values []int `yaml:"values"`
}

// Fixed returns a single-value table.
func Fixed(v int) Table {
	return Table{Levels: []int{0}, Values: []int{v}}
}

// UnmarshalYAML accepts the scalar shorthand as well as the full mapping.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var v int
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: table value: %w", node.Line, err)
		}
		*t = Fixed(v)
		return nil
	}

	type plain Table
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*t = Table(p)
	return nil
}
