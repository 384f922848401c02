package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant (default: snake).

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Esc/Space       - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start, speeds up with score
  normal - Starts at 30% of the speed range
  hard   - Faster start at 70% of the speed range
  fixed  - No speed-up, stays at the config's initial level

Finished runs are journaled to --db and can be listed with 'snake replays'.
Logs go to ~/.snake/snake.log while the game is running.

Examples:
  snake play
  snake play snake_walled
  snake play --difficulty hard --tps 10
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := snake.IDWrap
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	logger := newLogger(os.Stderr)
	if logFile != nil {
		defer logFile.Close()
		logger = newLogger(logFile)
	}
	snake.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagTPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without the journal - the game still works
		logger.Warn("could not open run journal", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
