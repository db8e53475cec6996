// shooter is a side-scrolling asteroid shooter for the terminal.
//
// Usage:
//
//	shooter play             - Play the game
//	shooter backends         - List available display backends
//	shooter keys             - Show key bindings
//	shooter config           - Print the default or effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (default: no logging)
//	--log-level <level>   - Log level: debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-shooter/internal/platform/tcellterm"
	_ "github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Asteroid Shooter - Fly a ship through an asteroid field in your terminal",
	Long: `Asteroid Shooter is a terminal game: steer a ship up and down, shoot the
asteroids drifting towards you and grab powerups for a triple shot.

Available commands:
  play      - Start a game
  backends  - Show available display backends
  keys      - Show key bindings
  config    - Print configuration

Examples:
  shooter play
  shooter play --difficulty hard
  shooter play --backend tcell --seed 42
  shooter config --effective --config ./my-shooter.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
