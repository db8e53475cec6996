package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// MaxTickRate is the highest tick rate a driver will honor.
const MaxTickRate = 1000

// TickInterval returns the duration of one tick. Rates outside
// 1..MaxTickRate are clamped.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate < 1 {
		rate = 1
	}
	if rate > MaxTickRate {
		rate = MaxTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState summarizes the current status of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current points
	GameOver bool // Whether the ship has been destroyed
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The player asked to end the session
}
