package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// shipHitbox lists the ship-relative cells that collide: the hull only.
// Exhaust, thrusters and the weapon tip pass through objects.
var shipHitbox = [...]core.Vec{
	{X: 2, Y: -1},
	{X: 2, Y: 0},
	{X: 2, Y: 1},
	{X: 3, Y: 0},
	{X: 4, Y: 0},
}

// CollidesWithShip reports whether p lies on a hitbox cell of a ship at shipPos.
func CollidesWithShip(shipPos, p core.Vec) bool {
	d := p.Sub(shipPos)
	for _, cell := range shipHitbox {
		if d == cell {
			return true
		}
	}
	return false
}
