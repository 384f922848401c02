// snake is a terminal snake game with a deterministic engine, a journal of
// replayable runs and a headless simulator.
//
// Usage:
//
//	snake list                - List game variants
//	snake play [variant]      - Play a game (default: snake)
//	snake simulate            - Run a headless game and print the result
//	snake replays [variant]   - List recorded runs
//	snake replay <id>         - Re-simulate a recorded run and verify it
//
// Global flags:
//
//	--tps <rate>           - Base ticks per second (default: from config)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set run journal path (default: ~/.snake/runs.db)
//	--config <path>        - Use a custom snake YAML config
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagTPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - play, simulate and replay snake in your terminal",
	Long: `Snake is a terminal snake game built on a deterministic engine.
Every run is journaled with its seed and inputs, so it can be replayed
and verified later.

Available commands:
  list      - Show the game variants
  play      - Play a variant
  simulate  - Run a headless game with the autopilot or a scripted input log
  replays   - List recorded runs
  replay    - Re-simulate a recorded run and verify its outcome

Examples:
  snake play
  snake play snake_walled --difficulty hard
  snake simulate --seed 42 --ticks 500
  snake replays
  snake replay 12`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if _, err := parseLevel(); err != nil {
			return err
		}
		if flagTPS < 0 {
			return fmt.Errorf("--tps must not be negative, got %d", flagTPS)
		}
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
		snake.SetLogger(newLogger(os.Stderr))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Base ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/runs.db", "Path to the run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}
