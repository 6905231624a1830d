package metrics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

// Metric accumulates one scalar over a sequence of frames.
type Metric interface {
	Name() string
	Observe(f gridfile.Frame)
	Value() float64
	Reset()
}

// Defaults returns the metrics recorded for every simulation run.
func Defaults() []Metric {
	return []Metric{
		NewBoltCells(),
		NewChannelCells(),
		NewMaxIntensity(),
		NewReach(),
	}
}

// Series returns the value m takes on each frame of fs in isolation.
func Series(fs *gridfile.FrameSet, m Metric) []float64 {
	out := make([]float64, len(fs.Frames))
	for i, f := range fs.Frames {
		m.Reset()
		m.Observe(f)
		out[i] = m.Value()
	}
	m.Reset()
	return out
}

// Summarize runs every metric over all frames of fs.
func Summarize(fs *gridfile.FrameSet, ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, f := range fs.Frames {
			m.Observe(f)
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// mean keeps one sample per observed frame.
type mean struct {
	name    string
	samples []float64
	sample  func(f gridfile.Frame) float64
}

func (m *mean) Name() string { return m.name }

func (m *mean) Observe(f gridfile.Frame) {
	m.samples = append(m.samples, m.sample(f))
}

func (m *mean) Value() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	return floats.Sum(m.samples) / float64(len(m.samples))
}

func (m *mean) Reset() { m.samples = m.samples[:0] }

func countAbove(f gridfile.Frame, threshold int) float64 {
	n := 0
	for _, row := range f {
		for _, v := range row {
			if v > threshold {
				n++
			}
		}
	}
	return float64(n)
}

// NewBoltCells averages the number of lit cells per frame.
func NewBoltCells() Metric {
	return &mean{
		name:   "bolt_cells",
		sample: func(f gridfile.Frame) float64 { return countAbove(f, 0) },
	}
}

// NewChannelCells averages the number of discharge channel cells, those
// carrying more than one unit of charge.
func NewChannelCells() Metric {
	return &mean{
		name:   "channel_cells",
		sample: func(f gridfile.Frame) float64 { return countAbove(f, 1) },
	}
}

// NewReach averages the fraction of rows the bolt extends over.
func NewReach() Metric {
	return &mean{
		name: "reach",
		sample: func(f gridfile.Frame) float64 {
			if len(f) == 0 {
				return 0
			}
			deepest := -1
			for i, row := range f {
				for _, v := range row {
					if v > 0 {
						deepest = i
						break
					}
				}
			}
			return float64(deepest+1) / float64(len(f))
		},
	}
}

type MaxIntensity struct {
	peaks []float64
}

func NewMaxIntensity() *MaxIntensity { return &MaxIntensity{} }

func (m *MaxIntensity) Name() string { return "max_intensity" }

func (m *MaxIntensity) Observe(f gridfile.Frame) {
	peak := 0
	for _, row := range f {
		for _, v := range row {
			peak = max(peak, v)
		}
	}
	m.peaks = append(m.peaks, float64(peak))
}

func (m *MaxIntensity) Value() float64 {
	if len(m.peaks) == 0 {
		return 0
	}
	return floats.Max(m.peaks)
}

func (m *MaxIntensity) Reset() { m.peaks = m.peaks[:0] }
