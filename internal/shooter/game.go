package shooter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game wraps a GameState with session flow: pause, game over and restart.
type Game struct {
	cfg      config.ShooterConfig
	runtime  core.RuntimeConfig
	state    *GameState
	paused   bool
	gameOver bool
	logger   *log.Logger
}

// New creates a game with the given rules. A nil logger discards output.
func New(cfg config.ShooterConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger,
	}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroid Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	state, err := NewGameState(g.cfg, core.V(cfg.ScreenW, cfg.ScreenH), cfg.Seed)
	if err != nil {
		return err
	}

	g.runtime = cfg
	g.state = state
	g.paused = false
	g.gameOver = false

	g.logger.Debug("session started",
		"field", fmt.Sprintf("%dx%d", state.FieldSize.X, state.FieldSize.Y),
		"seed", cfg.Seed,
		"health", state.Ship.Health)
	return nil
}

// Resize records a new terminal size. The field keeps its dimensions; only
// the info bar follows the bottom of the terminal.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.state != nil {
		g.state.TermSize = core.V(w, h)
	}
}

// Step advances the game by one tick, consuming at most one input symbol.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	action := in.Action()

	if action == core.ActionQuit {
		return core.StepResult{State: g.State(), Quit: true}
	}

	if g.gameOver {
		if action == core.ActionRestart {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if action == core.ActionPause {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
		return core.StepResult{State: g.State()}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Valid {
		g.state.HandleInput(in.Symbol)
	}

	report := g.state.Step()
	if report.PowerupsCollected > 0 {
		g.logger.Debug("powerup collected", "tick", g.state.TimeStep, "points", g.state.Points)
	}
	if report.ShipHits > 0 {
		g.logger.Debug("ship hit", "tick", g.state.TimeStep, "hits", report.ShipHits, "health", g.state.Ship.Health)
	}

	if g.state.Ship.Health == 0 {
		g.gameOver = true
		g.logger.Info("game over", "points", g.state.Points, "distance", g.state.TimeStep)
	}

	return core.StepResult{State: g.State()}
}

// restart begins a new session with the next seed so runs differ but stay reproducible.
func (g *Game) restart() {
	next := g.runtime
	next.Seed++
	if err := g.Reset(next); err != nil {
		// Same dimensions as the running session, so this only fails if the
		// terminal shrank below the minimum since.
		g.logger.Error("restart failed", "error", err)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	Render(g.state, dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Points: %d  |  R to restart, Q to quit", g.state.Points))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault, core.ColorBlack)
	dst.DrawBox(box, core.ColorBrightWhite, core.ColorBlack)

	dst.SetTextCentered(box.Y+1, title, core.ColorBrightYellow, core.ColorBlack)
	dst.SetTextCentered(box.Y+3, subtitle, core.ColorWhite, core.ColorBlack)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	points := 0
	if g.state != nil {
		points = g.state.Points
	}
	return core.GameState{
		Score:    points,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Session exposes the underlying simulation state.
func (g *Game) Session() *GameState {
	return g.state
}
