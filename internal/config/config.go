// Package config provides YAML-based game configuration loading and
// difficulty management for BomberQuest.
package config

import "fmt"

// BomberQuestConfig contains all configuration for BomberQuest.
type BomberQuestConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SimulationConfig defines timings in seconds.
type SimulationConfig struct {
	FuseSeconds      float64 `yaml:"fuse_seconds"`
	BlastSeconds     float64 `yaml:"blast_seconds"`
	EnemyTurnSeconds float64 `yaml:"enemy_turn_seconds"`
	EnemyStepSeconds float64 `yaml:"enemy_step_seconds"`
	TimeLimit        float64 `yaml:"time_limit"` // Default level countdown, 0 disables
	LevelClearDelay  float64 `yaml:"level_clear_delay"`
}

// PlayerConfig defines the starting stats of the player.
type PlayerConfig struct {
	StartCapacity int `yaml:"start_capacity"`
	StartRadius   int `yaml:"start_radius"`
}

// ScoringConfig defines points awarded for simulation events.
type ScoringConfig struct {
	Enemy         int `yaml:"enemy"`
	Wall          int `yaml:"wall"`
	PowerUp       int `yaml:"power_up"`
	Victory       int `yaml:"victory"`
	SecondBonus   int `yaml:"second_bonus"` // Per whole second left on victory
	CampaignBonus int `yaml:"campaign_bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a campaign.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Enemy speed added at max difficulty
	TimeReduction   float64 `yaml:"time_reduction"`   // Fraction of the countdown removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
