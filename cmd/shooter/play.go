package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the current terminal.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  A/Left     - Move left
  D/Right    - Move right
  Space      - Fire
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More health, asteroid rate starts low and ramps up
  normal - Asteroid rate starts at 30% difficulty and ramps up
  hard   - One hit point, asteroid rate starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --backend tcell
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Display backend (see 'shooter backends')")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 || flagFPS > core.MaxTickRate {
		return fmt.Errorf("--fps must be between 1 and %d, got %d", core.MaxTickRate, flagFPS)
	}

	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q; run 'shooter backends' to see available backends", flagBackend)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size; backends may refine it once the screen is up
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := shooter.New(gameCfg, logger)
	logger.Info("starting", "backend", backend.Name(), "seed", seed, "fps", flagFPS,
		"terminal", fmt.Sprintf("%dx%d", width, height))

	if err := backend.Run(ctx, game, cfg, logger); err != nil {
		logger.Error("backend failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	state := game.State()
	logger.Info("finished", "points", state.Score, "game_over", state.GameOver)
	fmt.Fprintf(cmd.OutOrStdout(), "Final points: %d\n", state.Score)
	return nil
}

// loadGameConfig loads the YAML config and applies --difficulty.
func loadGameConfig() (config.ShooterConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
