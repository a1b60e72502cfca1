// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                  - Play (same as 'snake play')
//	snake play             - Play a game
//	snake config           - Print the effective configuration as YAML
//	snake keys             - Show key bindings
//
// Global flags:
//
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--fps <rate>           - Repaint rate (default: 60)
//	--log-file <path>      - Write logs to a file (default: discarded)
//	--debug                - Enable debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
	flagLogFile    string
	flagDebug      bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer the snake around the board, eat the food to grow and speed up,
and avoid hitting the walls or your own body.

Available commands:
  play     - Play a game (default)
  config   - Print the effective configuration
  keys     - Show key bindings

Examples:
  snake
  snake play --difficulty hard
  snake play --seed 42 --log-file snake.log --debug
  snake config --difficulty easy`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Repaint rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig resolves the game configuration from the search order and
// applies the difficulty preset.
func loadConfig() (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}
