package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagReplaysLimit       int
	flagReplaysInteractive bool
	flagReplaysClear       bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays [variant]",
	Short: "List recorded runs",
	Long: `Show the most recent journaled runs, optionally for one variant.

With --interactive, opens a browser where Enter re-simulates the selected
run and checks it against its recorded outcome.

Examples:
  snake replays
  snake replays snake_walled --limit 50
  snake replays -i
  snake replays snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "Maximum number of runs to show")
	replaysCmd.Flags().BoolVarP(&flagReplaysInteractive, "interactive", "i", false, "Browse runs interactively")
	replaysCmd.Flags().BoolVar(&flagReplaysClear, "clear", false, "Delete the listed variant's runs (all runs without a variant)")
}

func runReplays(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	variant := ""
	if len(args) > 0 {
		variant = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReplaysClear {
		n, err := store.ClearRuns(variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("runs deleted", "count", n, "variant", variant)
		return
	}

	runs, err := store.RecentRuns(variant, flagReplaysLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdout.Fd())
	if flagReplaysInteractive && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRuns(runs, logger, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Print(tui.RunsTable(runs))
}
