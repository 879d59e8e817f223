package config

import (
	_ "embed"
)

//go:embed defaults/bomberquest.yaml
var defaultBomberQuestYAML []byte

// DefaultBomberQuestConfig returns the default BomberQuest configuration.
func DefaultBomberQuestConfig() BomberQuestConfig {
	return BomberQuestConfig{
		Simulation: SimulationConfig{
			FuseSeconds:      3.0,
			BlastSeconds:     0.5,
			EnemyTurnSeconds: 1.0,
			EnemyStepSeconds: 1.0,
			TimeLimit:        120,
			LevelClearDelay:  2.0,
		},
		Player: PlayerConfig{
			StartCapacity: 1,
			StartRadius:   1,
		},
		Scoring: ScoringConfig{
			Enemy:         100,
			Wall:          10,
			PowerUp:       50,
			Victory:       500,
			SecondBonus:   10,
			CampaignBonus: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				TimeReduction:   0.25,
			},
		},
	}
}

// DefaultYAML returns a copy of the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultBomberQuestYAML...)
}
