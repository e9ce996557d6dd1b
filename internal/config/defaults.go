package config

import (
	_ "embed"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

var defaultGravity = Table{
	Levels: []int{0, 30, 35, 40, 50, 60, 70, 80, 90, 100, 120, 140, 160, 170, 200,
		220, 230, 233, 236, 239, 243, 247, 251, 300, 330, 360, 400, 420, 450, 500},
	Values: []int{4, 6, 8, 10, 12, 16, 32, 48, 64, 80, 96, 112, 128, 144, 4,
		32, 64, 96, 128, 160, 192, 224, 256, 512, 768, 1024, 1280, 1024, 768, 5120},
}

var masterLevels = []int{0, 500, 601, 701, 801, 900, 901}

// DefaultRulesConfig returns the built-in rule tables.
func DefaultRulesConfig() RulesConfig {
	return RulesConfig{
		Modes: map[string]ModeConfig{
			"classic": {
				Title:          "Classic",
				Gravity:        defaultGravity,
				GravityDivisor: 256,
				ARE:            Fixed(30),
				LineClearARE:   Fixed(30),
				LockDelay:      Fixed(30),
				LineClearDelay: Fixed(41),
				DAS:            Fixed(14),
				LockFlash:      3,
				Randomizer: RandomizerConfig{
					History: []string{"Z", "Z", "Z", "Z"},
					Tries:   4,
				},
				Rotation: "classic",
				Boundary: "section",
			},
			"master": {
				Title:          "Master",
				Gravity:        defaultGravity,
				GravityDivisor: 256,
				ARE:            Table{Levels: masterLevels, Values: []int{25, 25, 25, 16, 12, 12, 12}},
				LineClearARE:   Table{Levels: masterLevels, Values: []int{25, 25, 16, 12, 6, 6, 6}},
				LockDelay:      Table{Levels: masterLevels, Values: []int{30, 30, 30, 30, 30, 30, 17}},
				LineClearDelay: Table{Levels: masterLevels, Values: []int{40, 25, 16, 12, 6, 6, 6}},
				DAS:            Table{Levels: masterLevels, Values: []int{14, 8, 8, 8, 8, 6, 6}},
				LockFlash:      2,
				Randomizer: RandomizerConfig{
					History: []string{"Z", "Z", "S", "S"},
					Tries:   6,
				},
				Rotation:  "classic",
				Boundary:  "century",
				SonicDrop: true,
			},
		},
	}
}

// DefaultRulesYAML returns the embedded default rule file.
func DefaultRulesYAML() []byte {
	return defaultRulesYAML
}
