package config

import "math"

// DifficultyManager scales asteroid spawn odds with points or distance.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on points/ticks.
func (d *DifficultyManager) Level(points int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(points) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// AsteroidChance returns the 1-in-N asteroid odds for the current level.
// With progression disabled the base odds are returned unchanged.
func (d *DifficultyManager) AsteroidChance(base int, points int, ticks int) int {
	if !d.cfg.Enabled || base < 2 {
		return base
	}
	level := d.Level(points, ticks)
	// Odds shrink from base toward base*(1-reduction)
	result := int(math.Round(float64(base) * (1.0 - level*d.cfg.Scaling.SpawnReduction)))
	if result < 2 { // Never spawn on every row
		result = 2
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
