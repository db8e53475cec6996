package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hard-coded default configuration.
// It mirrors defaults/shooter.yaml and is used if the embedded copy fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Ship: ShipConfig{
			Health:          3,
			PowerupDuration: 1000,
		},
		Spawn: SpawnConfig{
			AsteroidInterval: 5,
			AsteroidChance:   50,
			PowerupChance:    200,
		},
		Scoring: ScoringConfig{
			AsteroidPoints: 5,
			PowerupPoints:  50,
		},
		Explosion: ExplosionConfig{
			MaxAge: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpawnReduction: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
