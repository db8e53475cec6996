package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Ship travel limits. The ship's rows Pos.Y-1..Pos.Y+1 and columns
// Pos.X..Pos.X+5 must stay inside the field.
const (
	shipMinX = 1
	shipMinY = 2
)

// HandleInput applies one input symbol to the ship.
// Returns true if the symbol asks to end the session; quitting mutates nothing.
// Symbols that are not ship controls are ignored.
func (gs *GameState) HandleInput(sym rune) bool {
	ship := &gs.Ship

	switch core.ActionForSymbol(sym) {
	case core.ActionQuit:
		return true
	case core.ActionUp:
		if ship.Pos.Y > shipMinY {
			ship.Pos.Y--
		}
	case core.ActionDown:
		if ship.Pos.Y < gs.FieldSize.Y-3 {
			ship.Pos.Y++
		}
	case core.ActionLeft:
		if ship.Pos.X > shipMinX {
			ship.Pos.X--
		}
	case core.ActionRight:
		if ship.Pos.X < gs.FieldSize.X-7 {
			ship.Pos.X++
		}
	case core.ActionFire:
		gs.fire()
	}
	return false
}

// Muzzle offsets relative to the ship anchor.
var (
	muzzleForward = core.V(5, 0)
	muzzleUpper   = core.V(2, -1)
	muzzleLower   = core.V(2, 1)
)

// fire launches a forward shot, plus two flanking shots while powered up.
func (gs *GameState) fire() {
	pos := gs.Ship.Pos
	gs.Projectiles.Push(pos.Add(muzzleForward))
	if gs.PowerupActive() {
		gs.Projectiles.Push(pos.Add(muzzleUpper))
		gs.Projectiles.Push(pos.Add(muzzleLower))
	}
}
