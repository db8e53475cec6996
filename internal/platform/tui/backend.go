package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Backend runs the game in a Bubble Tea program on the alternate screen.
type Backend struct{}

// Name returns the registry name of the backend.
func (Backend) Name() string {
	return "tea"
}

// Description returns a one-line summary for listings.
func (Backend) Description() string {
	return "Bubble Tea + Lip Gloss renderer (default)"
}

// Run resets the game and blocks until the player quits or ctx is cancelled.
// Bubble Tea restores the terminal and prints the stack if the game panics.
func (Backend) Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if err := game.Reset(cfg); err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	model := NewModel(game, cfg, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			logger.Debug("program cancelled", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("tea: %w", err)
	}

	if m, ok := final.(Model); ok {
		logger.Debug("program finished", "points", m.State().Score, "game_over", m.State().GameOver)
	}
	return nil
}

func init() {
	registry.Register("tea", func() registry.Backend {
		return Backend{}
	})
}
