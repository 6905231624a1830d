package generate

import (
	"math/rand"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

// Pattern builds a description for a square grid of the given width.
type Pattern func(width int, cfg Config, rng *rand.Rand) (*gridfile.Description, error)

func newDescription(width, power int, cfg Config) *gridfile.Description {
	if cfg.Power != 0 {
		power = cfg.Power
	}
	eta := 1
	if cfg.Eta != 0 {
		eta = cfg.Eta
	}
	return &gridfile.Description{
		Height: width,
		Width:  width,
		Power:  power,
		Eta:    eta,
	}
}

// topSources spaces n sources evenly along row 0.
func topSources(width, n int) []gridfile.Point {
	spacing := width / (n + 1)
	pts := make([]gridfile.Point, n)
	col := spacing
	for i := range pts {
		pts[i] = gridfile.Point{Row: 0, Col: col}
		col += spacing
	}
	return pts
}

// straightLine: one source on the top edge, one target straight below it
// just past the last row.
func straightLine(width int, cfg Config, _ *rand.Rand) (*gridfile.Description, error) {
	d := newDescription(width, 1, cfg)
	mid := width / 2
	d.Sources = []gridfile.Point{{Row: 0, Col: mid}}
	d.Targets = []gridfile.Point{{Row: width, Col: mid}}
	return d, nil
}

// columnProfile: one source on the top edge and one randomized target per
// column in the lower band of the grid.
func columnProfile(width int, cfg Config, rng *rand.Rand) (*gridfile.Description, error) {
	d := newDescription(width, 1, cfg)
	d.Sources = []gridfile.Point{{Row: 0, Col: width / 2}}

	b := cfg.bias(QuarterBias)
	d.Targets = make([]gridfile.Point, width)
	for i := range d.Targets {
		d.Targets[i] = gridfile.Point{Row: b.Row(rng.Float64(), width) - 1, Col: i}
	}
	return d, nil
}

// bottomComb: five sources along the top edge and one target per column.
// Rows are raised to at least width-1, which pins every target to the
// bottom edge.
func bottomComb(width int, cfg Config, rng *rand.Rand) (*gridfile.Description, error) {
	d := newDescription(width, 1, cfg)
	d.Sources = topSources(width, 5)

	b := cfg.bias(FifthBias)
	d.Targets = make([]gridfile.Point, width)
	for i := range d.Targets {
		row := max(b.Row(rng.Float64(), width), width-1)
		d.Targets[i] = gridfile.Point{Row: row, Col: i}
	}
	return d, nil
}

// closedLoop: one source at the centre, targets on every perimeter cell
// walked clockwise from the top-left corner.
func closedLoop(width int, cfg Config, _ *rand.Rand) (*gridfile.Description, error) {
	d := newDescription(width, 1, cfg)
	mid := width / 2
	d.Sources = []gridfile.Point{{Row: mid, Col: mid}}

	last := width - 1
	d.Targets = make([]gridfile.Point, 0, 4*last)
	for c := 0; c < last; c++ {
		d.Targets = append(d.Targets, gridfile.Point{Row: 0, Col: c})
	}
	for r := 0; r < last; r++ {
		d.Targets = append(d.Targets, gridfile.Point{Row: r, Col: last})
	}
	for c := last; c > 0; c-- {
		d.Targets = append(d.Targets, gridfile.Point{Row: last, Col: c})
	}
	for r := last; r > 0; r-- {
		d.Targets = append(d.Targets, gridfile.Point{Row: r, Col: 0})
	}
	return d, nil
}

const groundCount = 10

// branches: a source on every top-edge column but the first and ten ground
// points at evenly spaced columns, rows capped at the bottom edge.
func branches(width int, cfg Config, rng *rand.Rand) (*gridfile.Description, error) {
	if width < 2 {
		return nil, ErrInvalidWidth
	}
	d := newDescription(width, 5, cfg)
	d.Sources = topSources(width, width-1)

	b := cfg.bias(FifthBias)
	interval := width / (groundCount + 1)
	d.Targets = make([]gridfile.Point, groundCount)
	col := interval
	for i := range d.Targets {
		row := min(b.Row(rng.Float64(), width), width-1)
		d.Targets[i] = gridfile.Point{Row: row, Col: col}
		col += interval
	}
	return d, nil
}
