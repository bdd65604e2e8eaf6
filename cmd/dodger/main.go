// dodger is a shoot-and-dodge arcade game: falling circles, one ship, limited ammo.
//
// Usage:
//
//	dodger list               - List game modes
//	dodger play [mode]        - Play in the terminal
//	dodger window [mode]      - Play in a desktop window
//	dodger config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a YAML or TOML config file
//	--difficulty <name> - Apply a preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/circle-dodger/internal/games/dodger"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
	flagSFX        string
	flagMusic      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "dodger",
	SilenceErrors: true,
	SilenceUsage:  true,
	Short:         "Circle Dodger - dodge and shoot falling circles",
	Long: `Circle Dodger is an arcade game about a ship at the bottom of the
screen and the circles that keep falling on it. Shoot them for points,
dodge them to stay alive, and watch your ammo.

Available commands:
  list     - Show the game modes
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  dodger play
  dodger play dodger_classic
  dodger window --difficulty hard
  dodger play --config ./my-dodger.toml --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound and music")
	rootCmd.PersistentFlags().StringVar(&flagSFX, "sfx", "", "Explosion sound (WAV), overrides the config")
	rootCmd.PersistentFlags().StringVar(&flagMusic, "music", "", "Background music (WAV), overrides the config")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
