// Package tcellterm runs the game directly on a tcell screen, without the
// Bubble Tea event loop.
package tcellterm

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// maxPendingKeys bounds the key backlog consumed one symbol per tick.
const maxPendingKeys = 4

// Backend draws the game cell by cell on a tcell screen.
type Backend struct {
	newScreen func() (tcell.Screen, error)
}

// Name returns the registry name of the backend.
func (Backend) Name() string {
	return "tcell"
}

// Description returns a one-line summary for listings.
func (Backend) Description() string {
	return "tcell cell renderer with 16-color palette"
}

// Run takes over the terminal until the player quits or ctx is cancelled.
// The terminal is restored before a panic from the game propagates.
func (b Backend) Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (err error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	newScreen := b.newScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: init screen: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			// Restore the terminal so the stack trace is readable
			screen.Fini()
			logger.Error("game crashed", "panic", r, "stack", string(debug.Stack()))
			panic(r)
		}
		screen.Fini()
	}()

	// The real terminal size wins over whatever the caller guessed
	cfg.ScreenW, cfg.ScreenH = screen.Size()
	if err := game.Reset(cfg); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	screen.SetTitle(game.Title())
	logger.Debug("screen ready", "title", game.Title(), "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	return run(ctx, screen, game, cfg, logger)
}

// run is the event/tick loop. It returns when the game reports Quit,
// ctrl+c is pressed, or ctx is done.
func run(ctx context.Context, screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	buf := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	input := core.NewInputQueue(maxPendingKeys)

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	game.Render(buf)
	flush(buf, screen)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("loop cancelled", "reason", ctx.Err())
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				sym, ok := symbolForKey(ev)
				if !ok {
					continue
				}
				if !input.Push(sym) {
					logger.Debug("input dropped", "key", ev.Name())
				}

			case *tcell.EventResize:
				w, h := ev.Size()
				buf.Resize(w, h)
				game.Resize(w, h)
				screen.Sync()
			}

		case <-ticker.C:
			result := game.Step(input.Next())
			if result.Quit {
				logger.Debug("loop finished", "points", result.State.Score, "game_over", result.State.GameOver)
				return nil
			}
			game.Render(buf)
			flush(buf, screen)
		}
	}
}

func init() {
	registry.Register("tcell", func() registry.Backend {
		return Backend{}
	})
}
