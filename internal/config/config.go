// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all tunable parameters of the game.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ship       ShipConfig       `yaml:"ship"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playable area. Zero values fit the terminal.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines player parameters.
type ShipConfig struct {
	Health          int `yaml:"health"`
	PowerupDuration int `yaml:"powerup_duration"` // Ticks of triple fire per pickup
}

// SpawnConfig defines spawn timing and odds.
type SpawnConfig struct {
	AsteroidInterval int `yaml:"asteroid_interval"` // Asteroids spawn and move every N ticks
	AsteroidChance   int `yaml:"asteroid_chance"`   // 1-in-N per row, 0 disables
	PowerupChance    int `yaml:"powerup_chance"`    // 1-in-N per tick, 0 disables
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	AsteroidPoints int `yaml:"asteroid_points"`
	PowerupPoints  int `yaml:"powerup_points"`
}

// ExplosionConfig defines explosion lifetime.
type ExplosionConfig struct {
	MaxAge int `yaml:"max_age"` // Removed once age exceeds this
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Points/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnReduction float64 `yaml:"spawn_reduction"` // Fraction of asteroid odds removed at max difficulty
}

// Minimum field dimensions that fit the ship sprite with room to move.
const (
	MinFieldWidth  = 8
	MinFieldHeight = 5
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the simulation cannot run with.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Field.Width != 0 && c.Field.Width < MinFieldWidth:
		return fmt.Errorf("%w: field width %d is below %d", ErrInvalidConfig, c.Field.Width, MinFieldWidth)
	case c.Field.Height != 0 && c.Field.Height < MinFieldHeight:
		return fmt.Errorf("%w: field height %d is below %d", ErrInvalidConfig, c.Field.Height, MinFieldHeight)
	case c.Ship.Health <= 0:
		return fmt.Errorf("%w: ship health must be positive, got %d", ErrInvalidConfig, c.Ship.Health)
	case c.Ship.PowerupDuration < 0:
		return fmt.Errorf("%w: negative powerup duration %d", ErrInvalidConfig, c.Ship.PowerupDuration)
	case c.Spawn.AsteroidInterval <= 0:
		return fmt.Errorf("%w: asteroid interval must be positive, got %d", ErrInvalidConfig, c.Spawn.AsteroidInterval)
	case c.Spawn.AsteroidChance < 0 || c.Spawn.PowerupChance < 0:
		return fmt.Errorf("%w: spawn chances must not be negative", ErrInvalidConfig)
	case c.Scoring.AsteroidPoints < 0 || c.Scoring.PowerupPoints < 0:
		return fmt.Errorf("%w: point awards must not be negative", ErrInvalidConfig)
	case c.Explosion.MaxAge < 0:
		return fmt.Errorf("%w: negative explosion age %d", ErrInvalidConfig, c.Explosion.MaxAge)
	case c.Difficulty.Scaling.SpawnReduction < 0 || c.Difficulty.Scaling.SpawnReduction >= 1:
		return fmt.Errorf("%w: spawn reduction must be in [0, 1), got %g", ErrInvalidConfig, c.Difficulty.Scaling.SpawnReduction)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// leaves the configuration untouched.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
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
