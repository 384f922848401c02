package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/games/snake/bot"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSimVariant string
	flagSimTicks   int
	flagSimInputs  string
	flagSimSave    bool
	flagSimBoard   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game and print the result",
	Long: `Run a game without a terminal UI. By default a greedy autopilot steers
for up to --ticks ticks. With --inputs, the given run-length encoded input
log is played instead (symbols . U R D L, optional repeat count prefix).

Examples:
  snake simulate --seed 42
  snake simulate --variant snake_walled --ticks 2000 --save
  snake simulate --seed 7 --inputs "5.U3.L2.D"`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", snake.IDWrap, "Variant to simulate")
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Maximum ticks for the autopilot")
	simulateCmd.Flags().StringVar(&flagSimInputs, "inputs", "", "Encoded input log to play instead of the autopilot")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Journal the run to --db")
	simulateCmd.Flags().BoolVar(&flagSimBoard, "board", true, "Print the final board")
}

// simulate plays one headless run. A nil script means the autopilot steers
// for at most maxTicks ticks; otherwise the script is played to its end or
// until the game is over.
func simulate(variant string, seed int64, maxTicks int, script []core.Direction) (replay.Record, core.Snapshot, error) {
	sc, err := snake.LoadConfig(variant)
	if err != nil {
		return replay.Record{}, core.Snapshot{}, err
	}
	ec, err := sc.EngineConfig()
	if err != nil {
		return replay.Record{}, core.Snapshot{}, err
	}
	rec := replay.NewRecorder(variant, seed, ec)
	ec.Rand = rand.New(rand.NewSource(seed))

	g, err := core.New(ec)
	if err != nil {
		return replay.Record{}, core.Snapshot{}, err
	}

	snap := g.Snapshot()
	for i := 0; !snap.GameOver(); i++ {
		var dir core.Direction
		if script != nil {
			if i >= len(script) {
				break
			}
			dir = script[i]
		} else {
			if i >= maxTicks {
				break
			}
			dir = bot.Next(snap)
		}

		rec.Add(dir)
		snap, err = g.Tick(dir)
		if err != nil && !errors.Is(err, core.ErrSpawnExhausted) {
			return rec.Finish(snap), snap, err
		}
	}
	return rec.Finish(snap), snap, nil
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	if !registry.Exists(flagSimVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagSimVariant)
		os.Exit(1)
	}

	var script []core.Direction
	if flagSimInputs != "" {
		var err error
		script, err = replay.DecodeInputs(flagSimInputs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rec, snap, err := simulate(flagSimVariant, seed, flagSimTicks, script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("simulation finished", "variant", rec.Variant, "seed", seed, "ticks", snap.Tick)

	printOutcome(rec, snap)
	if flagSimBoard {
		fmt.Println()
		fmt.Println(snake.BoardString(snap))
	}

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("run saved", "id", id)
}

// printOutcome prints the header and result of a run.
func printOutcome(rec replay.Record, snap core.Snapshot) {
	end := snap.Reason.String()
	if !snap.GameOver() {
		end = "still playing"
	}
	fmt.Printf("  %-8s %s (%s %dx%d)\n", "variant", rec.Variant, rec.Policy, rec.Width, rec.Height)
	fmt.Printf("  %-8s %d\n", "seed", rec.Seed)
	fmt.Printf("  %-8s %d\n", "ticks", snap.Tick)
	fmt.Printf("  %-8s %d\n", "score", snap.Score)
	fmt.Printf("  %-8s %d\n", "length", snap.Len())
	fmt.Printf("  %-8s %s\n", "end", end)
}
