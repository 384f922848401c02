// Package replay records the inputs of a snake run and re-simulates it.
// A run is fully determined by its engine parameters, its seed, and the
// direction passed to each tick, so the log is all that needs storing.
package replay

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

// Record describes one finished (or abandoned) run.
type Record struct {
	Variant       string
	Seed          int64
	Width         int
	Height        int
	Policy        core.Policy
	InitialLength int
	GrowthPerFood int
	SpawnAttempts int
	Inputs        []core.Direction // One entry per engine tick

	// Outcome as observed when the run was recorded.
	Score  int
	Ticks  uint64
	Reason core.Reason
}

// EngineConfig returns the engine parameters with a seeded random source.
func (r Record) EngineConfig() core.Config {
	return core.Config{
		Width:         r.Width,
		Height:        r.Height,
		InitialLength: r.InitialLength,
		Policy:        r.Policy,
		GrowthPerFood: r.GrowthPerFood,
		SpawnAttempts: r.SpawnAttempts,
		Rand:          rand.New(rand.NewSource(r.Seed)),
	}
}

// Recorder collects inputs while a game is played.
type Recorder struct {
	rec Record
}

// NewRecorder starts a record for a game built from cfg with the given seed.
// cfg.Rand is ignored; the game must be seeded with the same seed.
func NewRecorder(variant string, seed int64, cfg core.Config) *Recorder {
	return &Recorder{rec: Record{
		Variant:       variant,
		Seed:          seed,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Policy:        cfg.Policy,
		InitialLength: cfg.InitialLength,
		GrowthPerFood: cfg.GrowthPerFood,
		SpawnAttempts: cfg.SpawnAttempts,
	}}
}

// Add appends the input used for one engine tick.
func (r *Recorder) Add(dir core.Direction) {
	r.rec.Inputs = append(r.rec.Inputs, dir)
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.rec.Inputs)
}

// Finish returns the record with the outcome taken from snap.
func (r *Recorder) Finish(snap core.Snapshot) Record {
	out := r.rec
	out.Inputs = append([]core.Direction(nil), r.rec.Inputs...)
	out.Score = snap.Score
	out.Ticks = snap.Tick
	out.Reason = snap.Reason
	return out
}

// Run re-simulates a record and returns the final snapshot.
func Run(rec Record) (core.Snapshot, error) {
	g, err := core.New(rec.EngineConfig())
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("replay: %w", err)
	}

	snap := g.Snapshot()
	for i, dir := range rec.Inputs {
		snap, err = g.Tick(dir)
		switch {
		case errors.Is(err, core.ErrGameOver):
			return snap, fmt.Errorf("replay: input log continues past game over at tick %d", i+1)
		case err != nil && !errors.Is(err, core.ErrSpawnExhausted):
			return snap, fmt.Errorf("replay: tick %d: %w", i+1, err)
		}
	}
	if err := g.CheckInvariants(); err != nil {
		return snap, fmt.Errorf("replay: %w", err)
	}
	return snap, nil
}

// Verify re-simulates a record and checks the outcome it claims.
func Verify(rec Record) (core.Snapshot, error) {
	snap, err := Run(rec)
	if err != nil {
		return snap, err
	}
	if snap.Score != rec.Score || snap.Tick != rec.Ticks || snap.Reason != rec.Reason {
		return snap, fmt.Errorf("replay: outcome mismatch: recorded score=%d ticks=%d reason=%s, replayed score=%d ticks=%d reason=%s",
			rec.Score, rec.Ticks, rec.Reason, snap.Score, snap.Tick, snap.Reason)
	}
	return snap, nil
}

// inputRunes maps directions to their log symbols.
var inputRunes = map[core.Direction]byte{
	core.DirNone:  '.',
	core.DirUp:    'U',
	core.DirRight: 'R',
	core.DirDown:  'D',
	core.DirLeft:  'L',
}

// EncodeInputs run-length encodes an input log, e.g. "12.U3.R".
// A count is written only for runs longer than one.
func EncodeInputs(inputs []core.Direction) string {
	var sb strings.Builder
	for i := 0; i < len(inputs); {
		j := i
		for j < len(inputs) && inputs[j] == inputs[i] {
			j++
		}
		if n := j - i; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte(inputRunes[inputs[i]])
		i = j
	}
	return sb.String()
}

// maxRunLength bounds a single run count in an input log.
const maxRunLength = math.MaxInt32

// DecodeInputs parses the output of EncodeInputs. Counts must be positive,
// without leading zeros, and at most maxRunLength.
func DecodeInputs(s string) ([]core.Direction, error) {
	var out []core.Direction
	count := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			if count == 0 && c == '0' {
				return nil, fmt.Errorf("replay: count with leading zero at offset %d", i)
			}
			d := int(c - '0')
			if count > (maxRunLength-d)/10 {
				return nil, fmt.Errorf("replay: count too large at offset %d", i)
			}
			count = count*10 + d
			continue
		}
		dir, ok := directionFor(c)
		if !ok {
			return nil, fmt.Errorf("replay: bad input symbol %q at offset %d", c, i)
		}
		if count == 0 {
			count = 1
		}
		for range count {
			out = append(out, dir)
		}
		count = 0
	}
	if count != 0 {
		return nil, errors.New("replay: input log ends with a dangling count")
	}
	return out, nil
}

func directionFor(c byte) (core.Direction, bool) {
	for d, r := range inputRunes {
		if r == c {
			return d, true
		}
	}
	return core.DirNone, false
}
