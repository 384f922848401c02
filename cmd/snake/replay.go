package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagReplayBoard bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run and verify its outcome",
	Long: `Load a journaled run, replay its inputs from its seed and check that
the score, tick count and end reason match what was recorded.
Exits with status 1 when they do not.

Examples:
  snake replay 12
  snake replay 12 --board=false`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayBoard, "board", true, "Print the final board")
}

func runReplay(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %d\n", id)
		os.Exit(1)
	}

	rec, err := run.Record()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, verifyErr := replay.Verify(rec)
	printOutcome(rec, snap)
	if flagReplayBoard {
		fmt.Println()
		fmt.Println(snake.BoardString(snap))
	}
	if verifyErr != nil {
		logger.Error("replay does not match the journal", "id", id, "error", verifyErr)
		os.Exit(1)
	}
	logger.Info("replay verified", "id", id, "recorded", run.CreatedAt.Format("2006-01-02 15:04"))
}
