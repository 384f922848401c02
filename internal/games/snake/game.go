// Package snake adapts the snake engine to the platform's registry.Game
// interface: it maps platform actions to directions, keeps the replay log,
// paces the driver through the difficulty manager, and draws the board.
package snake

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// Variant IDs.
const (
	IDWrap    = "snake"
	IDBounded = "snake_walled"
)

// hudHeight is the number of rows above the board.
const hudHeight = 2

// Game implements registry.Game for one snake variant.
type Game struct {
	id    string
	title string

	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	baseRate   int

	engine   *core.Game
	recorder *replay.Recorder
	snap     core.Snapshot
	seed     int64
	next     core.Direction // Turn carried over to the following tick
	err      error          // Setup error shown instead of the board

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level settings shared by all instances, set from CLI flags.
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file used by subsequent Resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger that reports skipped config files.
func SetLogger(l *log.Logger) {
	logger = l
}

// SetDifficultyPreset sets the difficulty preset used by subsequent Resets.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates the wrap-around variant. The grid policy still follows the config file.
func New() *Game {
	return &Game{id: IDWrap, title: "Snake"}
}

// NewWalled creates the variant with solid walls.
func NewWalled() *Game {
	return &Game{id: IDBounded, title: "Snake (Walled)"}
}

func init() {
	registry.Register(IDWrap, func() registry.Game {
		return New()
	})
	registry.Register(IDBounded, func() registry.Game {
		return NewWalled()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a new run.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.err = nil
	g.engine = nil
	g.recorder = nil
	g.snap = core.Snapshot{}
	g.next = core.DirNone

	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	sc, err := LoadConfig(g.id)
	if err != nil {
		g.err = err
		return
	}
	g.cfg = sc
	g.difficulty = config.NewDifficultyManager(sc.Difficulty)
	g.baseRate = sc.Timing.TicksPerSecond
	if cfg.TickRate > 0 {
		g.baseRate = cfg.TickRate
	}

	ec, err := sc.EngineConfig()
	if err != nil {
		g.err = err
		return
	}
	g.recorder = replay.NewRecorder(g.id, g.seed, ec)
	ec.Rand = rand.New(rand.NewSource(g.seed))

	eng, err := core.New(ec)
	if err != nil {
		g.err = err
		return
	}
	g.engine = eng
	g.snap = eng.Snapshot()
	g.checkSize()
}

// LoadConfig reads the snake config and applies the difficulty preset and
// the overrides of the given variant.
func LoadConfig(variant string) (config.SnakeConfig, error) {
	sc, err := config.LoadSnake(configPath, logger)
	if err != nil {
		return sc, err
	}
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return sc, err
	}
	config.ApplySnakePreset(&sc, preset)
	if variant == IDBounded {
		sc.Grid.Policy = core.PolicyBounded.String()
	}
	return sc, sc.Validate()
}

// Resize updates the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkSize()
}

func (g *Game) checkSize() {
	g.tooSmall = g.screenW < g.cfg.Grid.Width+2 || g.screenH < g.cfg.Grid.Height+2+hudHeight
}

// Step advances the engine by one tick using the last direction pressed.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if input.Has(platformcore.ActionRestart) && g.snap.GameOver() {
		g.Reset(platformcore.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.runtimeRate(),
			Seed:     rand.New(rand.NewSource(g.seed)).Int63(),
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.snap.GameOver() {
		g.paused = !g.paused
	}

	if g.engine == nil || g.paused || g.tooSmall || g.snap.GameOver() {
		return platformcore.StepResult{State: g.State(), Err: g.err}
	}

	dir := g.nextTurn(input.Directions())
	g.recorder.Add(dir)
	snap, err := g.engine.Tick(dir)
	g.snap = snap
	// A full board ends the run as a win; it is not reported as a failure.
	if errors.Is(err, core.ErrSpawnExhausted) {
		err = nil
	}
	return platformcore.StepResult{State: g.State(), Err: err}
}

// nextTurn picks the direction for this tick from the carried-over turn and
// the presses of this frame. The first turn that changes the heading is
// applied now; a later turn valid from that heading is kept for the
// following tick, so a quick Up then Left while moving Right is not lost.
func (g *Game) nextTurn(pressed []platformcore.Action) core.Direction {
	heading := g.snap.Direction
	now, later := core.DirNone, core.DirNone

	turns := make([]core.Direction, 0, len(pressed)+1)
	if g.next != core.DirNone {
		turns = append(turns, g.next)
	}
	for _, a := range pressed {
		turns = append(turns, directionFor(a))
	}

	for _, d := range turns {
		switch {
		case now == core.DirNone:
			if isTurn(heading, d) {
				now = d
			}
		case isTurn(now, d):
			later = d
		}
	}
	g.next = later
	return now
}

// isTurn reports whether d changes heading without reversing it.
func isTurn(heading, d core.Direction) bool {
	return d != core.DirNone && d != heading && d != heading.Opposite()
}

// runtimeRate returns the tick rate to carry over a restart, or 0 to use the config.
func (g *Game) runtimeRate() int {
	if g.baseRate != g.cfg.Timing.TicksPerSecond {
		return g.baseRate
	}
	return 0
}

// directionFor maps a platform action to an engine direction.
func directionFor(a platformcore.Action) core.Direction {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp
	case platformcore.ActionDown:
		return core.DirDown
	case platformcore.ActionLeft:
		return core.DirLeft
	case platformcore.ActionRight:
		return core.DirRight
	default:
		return core.DirNone
	}
}

// TickInterval returns the delay before the next engine tick.
func (g *Game) TickInterval() time.Duration {
	if g.difficulty == nil {
		return time.Second / time.Duration(max(g.baseRate, 1))
	}
	return g.difficulty.Interval(g.baseRate, g.cfg.Timing.MaxTicksPerSecond, g.snap.Score, g.snap.Tick)
}

// TickRate returns the current ticks per second.
func (g *Game) TickRate() int {
	if g.difficulty == nil {
		return g.baseRate
	}
	return g.difficulty.TickRate(g.baseRate, g.cfg.Timing.MaxTicksPerSecond, g.snap.Score, g.snap.Tick)
}

// Record returns the replay record of the current run.
// It reports false when no engine tick has been played.
func (g *Game) Record() (replay.Record, bool) {
	if g.recorder == nil || g.recorder.Len() == 0 {
		return replay.Record{}, false
	}
	return g.recorder.Finish(g.snap), true
}

// Snapshot returns the latest engine snapshot.
func (g *Game) Snapshot() core.Snapshot {
	return g.snap
}

// Err returns the setup error, if the run could not start.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.GameOver() || g.err != nil,
		Won:      g.snap.Won(),
		Paused:   g.paused,
	}
}
