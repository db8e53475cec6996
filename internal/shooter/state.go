// Package shooter implements a side-scrolling asteroid shooter.
// The player steers a ship around a bounded field, shoots asteroids drifting
// in from the right and collects powerups that grant triple fire.
package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Ship is the player. Pos anchors a 6x3 sprite: columns Pos.X..Pos.X+5,
// rows Pos.Y-1..Pos.Y+1.
type Ship struct {
	Pos         core.Vec
	Health      int
	PowerupTime int // Remaining ticks of triple fire, 0 = inactive
}

// Explosion is a short-lived visual effect left by destroyed asteroids.
type Explosion struct {
	Pos core.Vec
	Age int // Ticks since creation
}

// GameState is the complete simulation state of one session.
// It is owned by a single driver loop and is not safe for concurrent use.
type GameState struct {
	Ship     Ship
	Points   int
	TimeStep int // Tick counter, shown as distance

	// Field geometry in absolute display coordinates. FieldEnd is exclusive.
	FieldBegin core.Vec
	FieldEnd   core.Vec
	FieldSize  core.Vec
	TermSize   core.Vec

	Projectiles *core.Collection[core.Vec]
	Asteroids   *core.Collection[core.Vec]
	Powerups    *core.Collection[core.Vec]
	Explosions  *core.Collection[Explosion]

	rules      config.ShooterConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// Field placement: one column of frame on each side, one row of frame above,
// one row of frame plus the info bar below.
var fieldOrigin = core.V(1, 1)

const (
	fieldMarginW = 2
	fieldMarginH = 3
)

// NewGameState creates a fresh session for a terminal of the given size.
// A field that is not configured explicitly is fitted to the terminal.
func NewGameState(cfg config.ShooterConfig, term core.Vec, seed int64) (*GameState, error) {
	size := core.V(cfg.Field.Width, cfg.Field.Height)
	if size.X == 0 {
		size.X = term.X - fieldMarginW
	}
	if size.Y == 0 {
		size.Y = term.Y - fieldMarginH
	}
	if size.X < config.MinFieldWidth || size.Y < config.MinFieldHeight {
		return nil, fmt.Errorf("field %dx%d is too small (terminal %dx%d, need at least %dx%d)",
			size.X, size.Y, term.X, term.Y, config.MinFieldWidth, config.MinFieldHeight)
	}

	gs := &GameState{
		Ship: Ship{
			Pos:    core.V(1, size.Y/2),
			Health: cfg.Ship.Health,
		},
		FieldBegin:  fieldOrigin,
		FieldEnd:    fieldOrigin.Add(size),
		FieldSize:   size,
		TermSize:    term,
		Projectiles: core.NewCollection[core.Vec](32),
		Asteroids:   core.NewCollection[core.Vec](64),
		Powerups:    core.NewCollection[core.Vec](4),
		Explosions:  core.NewCollection[Explosion](16),
		rules:       cfg,
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		rng:         rand.New(rand.NewSource(seed)),
	}
	return gs, nil
}

// PowerupActive reports whether triple fire is on.
func (gs *GameState) PowerupActive() bool {
	return gs.Ship.PowerupTime > 0
}
