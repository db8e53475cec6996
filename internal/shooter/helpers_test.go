package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// quietConfig returns the default rules with random spawning switched off
// and a fixed 40x12 field.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Field = config.FieldConfig{Width: 40, Height: 12}
	cfg.Spawn.AsteroidChance = 0
	cfg.Spawn.PowerupChance = 0
	return cfg
}

// newQuietState creates a state for a 42x15 terminal that fits the field exactly.
func newQuietState(t *testing.T) *GameState {
	t.Helper()
	gs, err := NewGameState(quietConfig(), core.V(42, 15), 1)
	if err != nil {
		t.Fatalf("NewGameState() failed: %v", err)
	}
	return gs
}

func positions(c *core.Collection[core.Vec]) map[core.Vec]int {
	out := make(map[core.Vec]int)
	for _, p := range c.Items() {
		out[p]++
	}
	return out
}
