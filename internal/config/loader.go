package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// LoadBomberQuest loads BomberQuest configuration.
// Search order: customPath -> ~/.bomberquest/configs/bomberquest.yaml -> ./configs/bomberquest.yaml -> embedded default
func LoadBomberQuest(customPath string) (BomberQuestConfig, error) {
	var cfg BomberQuestConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/bomberquest.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBomberQuestYAML, &cfg); err != nil {
		return DefaultBomberQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserConfigPath is where LoadBomberQuest looks for a per-user config,
// or empty if the home directory is unknown.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomberquest", "configs", "bomberquest.yaml")
}

// WriteDefault writes the default config to path, creating directories.
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// ApplyBomberQuestPreset modifies the config based on a difficulty preset.
func ApplyBomberQuestPreset(cfg *BomberQuestConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Simulation.TimeLimit = 180
		cfg.Simulation.EnemyStepSeconds = 1.25
		cfg.Player.StartCapacity = 2
	case DifficultyHard:
		cfg.Simulation.TimeLimit = 90
		cfg.Simulation.EnemyStepSeconds = 0.75
		cfg.Simulation.EnemyTurnSeconds = 0.75
	}
}

// ToRules converts the simulation and player sections to core rules.
func (c BomberQuestConfig) ToRules() core.Rules {
	return core.Rules{
		FuseSeconds:      c.Simulation.FuseSeconds,
		BlastSeconds:     c.Simulation.BlastSeconds,
		EnemyTurnSeconds: c.Simulation.EnemyTurnSeconds,
		EnemyStepSeconds: c.Simulation.EnemyStepSeconds,
		TimeLimit:        c.Simulation.TimeLimit,
		StartCapacity:    c.Player.StartCapacity,
		StartRadius:      c.Player.StartRadius,
	}
}
