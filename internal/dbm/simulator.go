// Package dbm grows lightning bolts on a grid with a dielectric breakdown
// model: a potential field is relaxed between bolt cells (held at 0) and
// ground cells (held at 1), and the bolt extends into a neighbouring cell
// with probability proportional to the local potential raised to eta.
//
// One strike ends once power ground cells have been reached. Each strike
// leaves a faint charge density along its discharge channel that bends the
// field seen by the next strike.
package dbm

import (
	"context"
	"errors"
	"math/rand"

	"github.com/san-kum/boltgrid/internal/gridfile"
	"github.com/san-kum/boltgrid/internal/metrics"
)

var (
	ErrEmptyGrid    = errors.New("dbm: grid has no cells")
	ErrGridTooLarge = errors.New("dbm: grid exceeds the cell limit")
	ErrInvalidSteps = errors.New("dbm: step count must be positive")
)

// Observer sees every frame as soon as its strike completes.
type Observer interface {
	OnFrame(step int, f gridfile.Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(step int, f gridfile.Frame)

func (fn ObserverFunc) OnFrame(step int, f gridfile.Frame) { fn(step, f) }

type Config struct {
	Steps int
}

type Result struct {
	Frames  *gridfile.FrameSet
	Metrics map[string]float64
	// Stalled counts strikes that ended before reaching enough ground.
	Stalled int
	// Skipped counts description points outside the grid.
	Skipped int
}

type Simulator struct {
	grid      *Grid
	skipped   int
	rng       *rand.Rand
	metrics   []metrics.Metric
	observers []Observer
}

func New(d *gridfile.Description, rng *rand.Rand) (*Simulator, error) {
	g, skipped, err := NewGrid(d)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		grid:    g,
		skipped: skipped,
		rng:     rng,
	}, nil
}

func (s *Simulator) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)     { s.observers = append(s.observers, o) }

// Run produces one frame per strike.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Steps <= 0 {
		return nil, ErrInvalidSteps
	}

	g := s.grid
	result := &Result{
		Frames: &gridfile.FrameSet{
			Height: g.height,
			Width:  g.width,
			Frames: make([]gridfile.Frame, 0, cfg.Steps),
		},
		Metrics: make(map[string]float64),
		Skipped: s.skipped,
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	g.resetBolt()
	for i := 0; i < g.height+g.width; i++ {
		g.relax()
	}

	for step := 0; step < cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if !s.strike() {
			result.Stalled++
		}

		f := g.Snapshot()
		result.Frames.Frames = append(result.Frames.Frames, f)
		for _, m := range s.metrics {
			m.Observe(f)
		}
		for _, obs := range s.observers {
			obs.OnFrame(step, f)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// strike grows one bolt from the initial state. It reports whether the
// bolt reached enough ground to spend its power.
func (s *Simulator) strike() bool {
	g := s.grid
	g.resetBolt()
	g.resetPath()
	g.resetChoices()

	power := g.power
	for budget := g.height * g.width; power > 0 && budget > 0; budget-- {
		g.relax()

		next := g.pick(s.rng)
		if next == -1 {
			break
		}
		if g.bolt[next] < 0 {
			power += g.bolt[next]
			g.discharge(next, -g.bolt[next])
		}
		g.bolt[next] = 1
		g.addChoices(next)
	}

	g.updateBoundary()
	return power <= 0
}
