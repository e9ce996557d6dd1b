package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RulesFile is the rule table file name searched for in config directories.
const RulesFile = "rules.yaml"

// LoadRules loads the rule tables.
// Search order: customPath -> ~/.tgm/configs/rules.yaml -> ./configs/rules.yaml -> embedded default
func LoadRules(customPath string) (RulesConfig, error) {
	var cfg RulesConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(RulesFile); userCfgPath != "" {
		if parsed, ok := readRules(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := readRules(filepath.Join("configs", RulesFile)); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRulesYAML, &cfg); err != nil || len(cfg.Modes) == 0 {
		return DefaultRulesConfig(), nil
	}
	return cfg, nil
}

// readRules reads an optional rule file. Missing or malformed files are skipped.
func readRules(path string) (RulesConfig, bool) {
	var cfg RulesConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil || len(cfg.Modes) == 0 {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tgm", "configs", filename)
}
