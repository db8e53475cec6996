package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func renderQuiet(t *testing.T, gs *GameState) *core.Screen {
	t.Helper()
	s := core.NewScreen(gs.TermSize.X, gs.TermSize.Y)
	Render(gs, s)
	return s
}

func TestRenderFrame(t *testing.T) {
	gs := newQuietState(t)
	s := renderQuiet(t, gs)

	// Field spans (1,1)..(40,12); frame sits at columns 0 and 41, rows 0 and 13.
	for x := 0; x <= 41; x++ {
		for _, y := range []int{0, 13} {
			if c := s.GetCell(x, y); c.BG != core.ColorWhite {
				t.Fatalf("frame missing at (%d, %d): %+v", x, y, c)
			}
		}
	}
	for y := 0; y <= 13; y++ {
		for _, x := range []int{0, 41} {
			if c := s.GetCell(x, y); c.BG != core.ColorWhite {
				t.Fatalf("frame missing at (%d, %d): %+v", x, y, c)
			}
		}
	}
	// The field interior stays untouched away from the ship.
	if c := s.GetCell(30, 3); c.BG == core.ColorWhite {
		t.Error("frame drawn inside the field")
	}
}

func TestInfoLine(t *testing.T) {
	gs := newQuietState(t)
	gs.Points = 55
	gs.TimeStep = 120
	gs.Ship.PowerupTime = 880

	want := "HEALTH: 3    POINTS: 55    DISTANCE: 120    POWERUP: 880"
	if got := InfoLine(gs); got != want {
		t.Errorf("InfoLine() = %q, expected %q", got, want)
	}
}

func TestRenderInfoBar(t *testing.T) {
	// Wide enough that the whole info line fits on the last row.
	gs, err := NewGameState(quietConfig(), core.V(80, 15), 1)
	if err != nil {
		t.Fatalf("NewGameState() failed: %v", err)
	}
	gs.Points = 55
	gs.TimeStep = 120
	gs.Ship.PowerupTime = 880
	s := renderQuiet(t, gs)

	row := s.Row(14)
	want := "HEALTH: 3    POINTS: 55    DISTANCE: 120    POWERUP: 880"
	if !strings.HasPrefix(row, want) {
		t.Errorf("info bar %q, expected prefix %q", row, want)
	}
	if strings.TrimRight(row, " ") != want {
		t.Errorf("info bar has trailing text: %q", row)
	}
}

func TestRenderShip(t *testing.T) {
	gs := newQuietState(t)
	gs.Ship.Pos = core.V(10, 6)
	s := renderQuiet(t, gs)

	// Absolute = local + (1,1)
	checks := []struct {
		x, y int
		r    rune
	}{
		{11, 6, '-'}, {11, 7, '-'}, {11, 8, '-'},
		{12, 6, '='}, {12, 7, '='}, {12, 8, '='},
		{16, 7, '>'},
	}
	for _, c := range checks {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("ship cell (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if s.GetCell(13, 7).BG != core.ColorBrightCyan || s.GetCell(15, 7).BG != core.ColorBrightCyan {
		t.Error("hull cells should be cyan blocks")
	}
	if s.Get(14, 6) == '>' || s.Get(14, 8) == '>' {
		t.Error("powerup weapon tips drawn while powerup inactive")
	}

	gs.Ship.PowerupTime = 10
	s = renderQuiet(t, gs)
	if s.Get(14, 6) != '>' || s.Get(14, 8) != '>' {
		t.Error("powerup weapon tips missing while powerup active")
	}
}

func TestRenderEntities(t *testing.T) {
	gs := newQuietState(t)
	gs.Projectiles.Push(core.V(20, 1))
	gs.Asteroids.Push(core.V(22, 2))
	gs.Powerups.Push(core.V(24, 3))
	s := renderQuiet(t, gs)

	if c := s.GetCell(21, 2); c.Rune != '>' || c.FG != core.ColorBrightRed {
		t.Errorf("projectile cell = %+v", c)
	}
	if c := s.GetCell(23, 3); c.BG != core.ColorWhite {
		t.Errorf("asteroid cell = %+v", c)
	}
	if c := s.GetCell(25, 4); c.Rune != '@' || c.FG != core.ColorBrightGreen {
		t.Errorf("powerup cell = %+v", c)
	}
}

func TestRenderExplosionArms(t *testing.T) {
	gs := newQuietState(t)
	gs.Ship.Pos = core.V(1, 2) // out of the way
	gs.Explosions.Push(Explosion{Pos: core.V(20, 6), Age: 3})
	s := renderQuiet(t, gs)

	for _, tip := range []core.Vec{core.V(14, 6), core.V(26, 6), core.V(20, 3), core.V(20, 9)} {
		if got := s.Get(tip.X+1, tip.Y+1); got != '#' {
			t.Errorf("arm tip %v = %q, expected '#'", tip, got)
		}
	}
	if s.Get(21, 7) == '#' {
		t.Error("center should not be drawn once the explosion has grown")
	}
}

func TestRenderExplosionAgeZeroIsSingleCell(t *testing.T) {
	gs := newQuietState(t)
	gs.Explosions.Push(Explosion{Pos: core.V(20, 6)})
	s := renderQuiet(t, gs)

	if s.Get(21, 7) != '#' {
		t.Error("fresh explosion should be drawn at its position")
	}
}

func TestRenderExplosionSkipsOffFieldArms(t *testing.T) {
	gs := newQuietState(t)
	gs.Ship.Pos = core.V(20, 6)
	gs.Explosions.Push(Explosion{Pos: core.V(1, 1), Age: 3})

	// Must not panic: the left and top arms fall outside the field.
	s := renderQuiet(t, gs)

	if s.Get(8, 2) != '#' {
		t.Error("right arm should be drawn")
	}
	if s.Get(2, 5) != '#' {
		t.Error("bottom arm should be drawn")
	}
	// Nothing is clamped onto the frame.
	if s.GetCell(0, 2).BG != core.ColorWhite || s.GetCell(2, 0).BG != core.ColorWhite {
		t.Error("frame overwritten by an off-field arm")
	}
}

func TestExplosionArms(t *testing.T) {
	arms := ExplosionArms(Explosion{Pos: core.V(10, 10), Age: 3})
	want := [4]core.Vec{core.V(4, 10), core.V(16, 10), core.V(10, 7), core.V(10, 13)}
	if arms != want {
		t.Errorf("ExplosionArms() = %v, expected %v", arms, want)
	}
}

func TestRenderPanicsOnCorruptState(t *testing.T) {
	gs := newQuietState(t)
	gs.Projectiles.Push(core.V(40, 0)) // one past the right edge

	defer func() {
		if _, ok := recover().(*CoordinateError); !ok {
			t.Error("rendering an entity outside the field should panic with *CoordinateError")
		}
	}()
	renderQuiet(t, gs)
}
