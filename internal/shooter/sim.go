package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// TickReport counts what happened during one simulation step.
type TickReport struct {
	AsteroidsShot     int
	PowerupsCollected int
	ShipHits          int
}

// Step advances the simulation by one tick.
// Phases run in a fixed order: clock, spawn, move, then collisions, so that
// collisions always see the final positions of the tick.
func (gs *GameState) Step() TickReport {
	var report TickReport

	gs.advanceClock()

	// Spawn
	gs.spawnAsteroids()
	gs.spawnPowerups()

	// Move
	gs.moveProjectiles()
	gs.moveAsteroids()
	gs.movePowerups()
	gs.ageExplosions()

	// Collide
	report.AsteroidsShot = gs.handleProjectileAsteroidCollisions()
	report.PowerupsCollected = gs.handlePowerupShipCollisions()
	report.ShipHits = gs.handleAsteroidShipCollisions()

	return report
}

// advanceClock increments the tick counter and burns one tick of powerup.
func (gs *GameState) advanceClock() {
	gs.TimeStep++
	if gs.Ship.PowerupTime > 0 {
		gs.Ship.PowerupTime--
	}
}

// asteroidTick reports whether asteroids spawn and move this tick.
func (gs *GameState) asteroidTick() bool {
	return gs.TimeStep%gs.rules.Spawn.AsteroidInterval == 0
}

// roll returns true with probability 1/n. n <= 0 never succeeds.
func (gs *GameState) roll(n int) bool {
	return n > 0 && gs.rng.Intn(n) == 0
}

func (gs *GameState) spawnAsteroids() {
	if !gs.asteroidTick() {
		return
	}
	chance := gs.difficulty.AsteroidChance(gs.rules.Spawn.AsteroidChance, gs.Points, gs.TimeStep)
	for y := 0; y < gs.FieldSize.Y; y++ {
		if gs.roll(chance) {
			gs.Asteroids.Push(core.V(gs.FieldSize.X-1, y))
		}
	}
}

func (gs *GameState) spawnPowerups() {
	if gs.roll(gs.rules.Spawn.PowerupChance) {
		gs.Powerups.Push(core.V(gs.FieldSize.X-1, gs.rng.Intn(gs.FieldSize.Y)))
	}
}

// moveProjectiles advances projectiles right. A projectile in the last column
// leaves the field instead.
func (gs *GameState) moveProjectiles() {
	for i := gs.Projectiles.Len() - 1; i >= 0; i-- {
		p := gs.Projectiles.At(i)
		if p.X < gs.FieldSize.X-1 {
			p.X++
		} else {
			gs.Projectiles.Remove(i)
		}
	}
}

// moveAsteroids drifts asteroids left on asteroid ticks only.
func (gs *GameState) moveAsteroids() {
	if !gs.asteroidTick() {
		return
	}
	driftLeft(gs.Asteroids)
}

func (gs *GameState) movePowerups() {
	driftLeft(gs.Powerups)
}

// driftLeft moves every position one column left. Objects that are already at
// column 1 or less are removed rather than entering the left frame column.
func driftLeft(c *core.Collection[core.Vec]) {
	for i := c.Len() - 1; i >= 0; i-- {
		p := c.At(i)
		if p.X > 1 {
			p.X--
		} else {
			c.Remove(i)
		}
	}
}

func (gs *GameState) ageExplosions() {
	for i := gs.Explosions.Len() - 1; i >= 0; i-- {
		e := gs.Explosions.At(i)
		e.Age++
		if e.Age > gs.rules.Explosion.MaxAge {
			gs.Explosions.Remove(i)
		}
	}
}

// handleProjectileAsteroidCollisions destroys asteroid/projectile pairs that
// share a cell. Each asteroid consumes at most one projectile.
func (gs *GameState) handleProjectileAsteroidCollisions() int {
	shot := 0
	for i := gs.Asteroids.Len() - 1; i >= 0; i-- {
		asteroid := *gs.Asteroids.At(i)
		for u := gs.Projectiles.Len() - 1; u >= 0; u-- {
			if *gs.Projectiles.At(u) != asteroid {
				continue
			}
			gs.Explosions.Push(Explosion{Pos: asteroid})
			gs.Asteroids.Remove(i)
			gs.Projectiles.Remove(u)
			gs.Points += gs.rules.Scoring.AsteroidPoints
			shot++
			break
		}
	}
	return shot
}

// handlePowerupShipCollisions collects powerups touching the hull. The
// powerup timer is reset, not extended.
func (gs *GameState) handlePowerupShipCollisions() int {
	collected := 0
	for i := gs.Powerups.Len() - 1; i >= 0; i-- {
		if !CollidesWithShip(gs.Ship.Pos, *gs.Powerups.At(i)) {
			continue
		}
		gs.Powerups.Remove(i)
		gs.Ship.PowerupTime = gs.rules.Ship.PowerupDuration
		gs.Points += gs.rules.Scoring.PowerupPoints
		collected++
	}
	return collected
}

// handleAsteroidShipCollisions blows up asteroids touching the hull and
// damages the ship once per asteroid. Health does not drop below zero.
func (gs *GameState) handleAsteroidShipCollisions() int {
	hits := 0
	for i := gs.Asteroids.Len() - 1; i >= 0; i-- {
		asteroid := *gs.Asteroids.At(i)
		if !CollidesWithShip(gs.Ship.Pos, asteroid) {
			continue
		}
		gs.Explosions.Push(Explosion{Pos: asteroid})
		gs.Asteroids.Remove(i)
		if gs.Ship.Health > 0 {
			gs.Ship.Health--
		}
		hits++
	}
	return hits
}
