package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Display is the cell sink the renderer draws into. Coordinates are absolute;
// clipping out-of-range writes is the display's job.
type Display interface {
	SetCell(x, y int, glyph rune, fg, bg core.Color)
	SetText(x, y int, text string, fg, bg core.Color)
}

// glyph is a styled character.
type glyph struct {
	r      rune
	fg, bg core.Color
}

// Visual styles for rendering
var (
	frameGlyph      = glyph{' ', core.ColorWhite, core.ColorWhite}
	exhaustGlyph    = glyph{'-', core.ColorYellow, core.ColorBlack}
	thrusterGlyph   = glyph{'=', core.ColorBrightYellow, core.ColorBlack}
	hullGlyph       = glyph{' ', core.ColorBrightCyan, core.ColorBrightCyan}
	weaponGlyph     = glyph{'>', core.ColorBrightYellow, core.ColorBlack}
	projectileGlyph = glyph{'>', core.ColorBrightRed, core.ColorBlack}
	asteroidGlyph   = glyph{' ', core.ColorWhite, core.ColorWhite}
	powerupGlyph    = glyph{'@', core.ColorBrightGreen, core.ColorBlack}
	explosionGlyph  = glyph{'#', core.ColorBrightYellow, core.ColorBrightRed}
)

// shipSprite lists ship-relative cells and their glyphs.
var shipSprite = []struct {
	off core.Vec
	g   glyph
}{
	{core.V(0, -1), exhaustGlyph},
	{core.V(0, 0), exhaustGlyph},
	{core.V(0, 1), exhaustGlyph},
	{core.V(1, -1), thrusterGlyph},
	{core.V(1, 0), thrusterGlyph},
	{core.V(1, 1), thrusterGlyph},
	{core.V(2, -1), hullGlyph},
	{core.V(2, 0), hullGlyph},
	{core.V(2, 1), hullGlyph},
	{core.V(3, 0), hullGlyph},
	{core.V(4, 0), hullGlyph},
	{core.V(5, 0), weaponGlyph},
}

// Extra weapon tips shown while powered up.
var powerupTips = []core.Vec{core.V(3, -1), core.V(3, 1)}

// Render draws the whole frame from gs. It keeps no state between calls.
// Later layers overdraw earlier ones: frame, info bar, ship, projectiles,
// asteroids, powerups, explosions.
func Render(gs *GameState, d Display) {
	drawFrame(gs, d)
	drawInfoBar(gs, d)
	drawShip(gs, d)
	drawPositions(gs, d, gs.Projectiles, projectileGlyph)
	drawPositions(gs, d, gs.Asteroids, asteroidGlyph)
	drawPositions(gs, d, gs.Powerups, powerupGlyph)
	drawExplosions(gs, d)
}

// setField draws g at field-local p.
func setField(gs *GameState, d Display, p core.Vec, g glyph) {
	abs := gs.FieldCellAt(p.X, p.Y)
	d.SetCell(abs.X, abs.Y, g.r, g.fg, g.bg)
}

// drawFrame outlines the field one cell outside its bounds.
func drawFrame(gs *GameState, d Display) {
	begin := gs.FieldBegin.Sub(core.V(1, 1))
	end := gs.FieldEnd // last frame row/column, inclusive

	for x := begin.X; x <= end.X; x++ {
		d.SetCell(x, begin.Y, frameGlyph.r, frameGlyph.fg, frameGlyph.bg)
		d.SetCell(x, end.Y, frameGlyph.r, frameGlyph.fg, frameGlyph.bg)
	}
	for y := begin.Y; y <= end.Y; y++ {
		d.SetCell(begin.X, y, frameGlyph.r, frameGlyph.fg, frameGlyph.bg)
		d.SetCell(end.X, y, frameGlyph.r, frameGlyph.fg, frameGlyph.bg)
	}
}

// InfoLine formats the status line shown below the field.
func InfoLine(gs *GameState) string {
	return fmt.Sprintf("HEALTH: %d    POINTS: %d    DISTANCE: %d    POWERUP: %d",
		gs.Ship.Health, gs.Points, gs.TimeStep, gs.Ship.PowerupTime)
}

func drawInfoBar(gs *GameState, d Display) {
	d.SetText(0, gs.TermSize.Y-1, InfoLine(gs), core.ColorWhite, core.ColorBlack)
}

func drawShip(gs *GameState, d Display) {
	for _, part := range shipSprite {
		setField(gs, d, gs.Ship.Pos.Add(part.off), part.g)
	}
	if gs.PowerupActive() {
		for _, off := range powerupTips {
			setField(gs, d, gs.Ship.Pos.Add(off), weaponGlyph)
		}
	}
}

func drawPositions(gs *GameState, d Display, c *core.Collection[core.Vec], g glyph) {
	for i := c.Len() - 1; i >= 0; i-- {
		setField(gs, d, *c.At(i), g)
	}
}

// ExplosionArms returns the four arm tips of e. Horizontal arms reach twice
// as far as vertical ones.
func ExplosionArms(e Explosion) [4]core.Vec {
	return [4]core.Vec{
		e.Pos.Add(core.V(-2*e.Age, 0)),
		e.Pos.Add(core.V(2*e.Age, 0)),
		e.Pos.Add(core.V(0, -e.Age)),
		e.Pos.Add(core.V(0, e.Age)),
	}
}

// drawExplosions draws each arm tip that lands inside the field and skips the rest.
func drawExplosions(gs *GameState, d Display) {
	for i := gs.Explosions.Len() - 1; i >= 0; i-- {
		for _, tip := range ExplosionArms(*gs.Explosions.At(i)) {
			if gs.IsFieldCoordinate(tip.X, tip.Y) {
				setField(gs, d, tip, explosionGlyph)
			}
		}
	}
}
