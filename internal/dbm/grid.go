package dbm

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

const (
	// boundaryScale converts channel intensity into charge density.
	boundaryScale = 0.0001
	// maxChain bounds how far a discharge travels back along the path.
	maxChain = 500
	// MaxCells caps height*width, 4096x4096.
	MaxCells = 1 << 24
)

// Grid holds the field state of one simulation.
type Grid struct {
	height, width int
	power, eta    int

	initBolt []int
	bolt     []int

	charge   []float64
	buffer   []float64
	boundary []float64

	path    []int
	chosen  []bool
	choices []int
	weights []float64
	cum     []float64
}

// NewGrid seeds a grid from d: sources become bolt cells, targets ground
// cells. Points outside the grid are skipped and counted.
func NewGrid(d *gridfile.Description) (*Grid, int, error) {
	if d.Height < 1 || d.Width < 1 {
		return nil, 0, ErrEmptyGrid
	}
	if d.Height > MaxCells/d.Width {
		return nil, 0, ErrGridTooLarge
	}
	n := d.Height * d.Width
	g := &Grid{
		height:   d.Height,
		width:    d.Width,
		power:    d.Power,
		eta:      d.Eta,
		initBolt: make([]int, n),
		bolt:     make([]int, n),
		charge:   make([]float64, n),
		buffer:   make([]float64, n),
		boundary: make([]float64, n),
		path:     make([]int, n),
		chosen:   make([]bool, n),
		choices:  make([]int, 0, n),
		weights:  make([]float64, 0, n),
		cum:      make([]float64, 0, n),
	}

	skipped := 0
	for _, p := range d.Sources {
		if !p.In(g.height, g.width) {
			skipped++
			continue
		}
		g.initBolt[p.Row*g.width+p.Col] = 1
	}
	for _, p := range d.Targets {
		if !p.In(g.height, g.width) {
			skipped++
			continue
		}
		g.initBolt[p.Row*g.width+p.Col] = -1
	}
	copy(g.bolt, g.initBolt)
	return g, skipped, nil
}

// Snapshot copies the current bolt values into a frame.
func (g *Grid) Snapshot() gridfile.Frame {
	f := make(gridfile.Frame, g.height)
	for i := range f {
		f[i] = make([]int, g.width)
		copy(f[i], g.bolt[i*g.width:(i+1)*g.width])
	}
	return f
}

func (g *Grid) resetBolt() {
	copy(g.bolt, g.initBolt)
}

func (g *Grid) resetPath() {
	for i := range g.path {
		g.path[i] = -1
	}
}

func (g *Grid) resetChoices() {
	g.choices = g.choices[:0]
	for i := range g.chosen {
		g.chosen[i] = false
	}
	for idx := range g.bolt {
		g.addChoices(idx)
	}
}

// addChoices registers the free neighbours of a bolt cell as candidates,
// in up, left, right, down order.
func (g *Grid) addChoices(idx int) {
	if g.bolt[idx] <= 0 {
		return
	}
	i, j := idx/g.width, idx%g.width
	g.choose(idx, i-1, j)
	g.choose(idx, i, j-1)
	g.choose(idx, i, j+1)
	g.choose(idx, i+1, j)
}

func (g *Grid) choose(parent, i, j int) {
	if i < 0 || i >= g.height || j < 0 || j >= g.width {
		return
	}
	idx := i*g.width + j
	if g.chosen[idx] || g.bolt[idx] > 0 {
		return
	}
	g.chosen[idx] = true
	g.choices = append(g.choices, idx)
	g.path[idx] = parent
}

// relax runs one Jacobi step of the potential field. Ground cells are held
// at 1, bolt cells at 0.
func (g *Grid) relax() {
	for idx := range g.bolt {
		switch {
		case g.bolt[idx] < 0:
			g.buffer[idx] = 1
		case g.bolt[idx] > 0:
			g.buffer[idx] = 0
		default:
			i, j := idx/g.width, idx%g.width
			sum := g.boundary[idx]
			if i > 0 {
				sum += g.charge[idx-g.width]
			}
			if i < g.height-1 {
				sum += g.charge[idx+g.width]
			}
			if j > 0 {
				sum += g.charge[idx-1]
			}
			if j < g.width-1 {
				sum += g.charge[idx+1]
			}
			g.buffer[idx] = sum / 4
		}
	}
	g.charge, g.buffer = g.buffer, g.charge
}

// pick draws a candidate with probability proportional to charge^eta.
// It returns -1 when no candidate carries any weight.
func (g *Grid) pick(rng *rand.Rand) int {
	n := len(g.choices)
	if n == 0 {
		return -1
	}

	g.weights = g.weights[:n]
	for i, idx := range g.choices {
		if g.bolt[idx] > 0 {
			g.weights[i] = 0
		} else {
			g.weights[i] = math.Pow(g.charge[idx], float64(g.eta))
		}
	}
	g.cum = floats.CumSum(g.cum[:n], g.weights)

	total := g.cum[n-1]
	if !(total > 0) {
		return -1
	}
	breach := rng.Float64() * total
	i := sort.Search(n, func(i int) bool { return g.cum[i] > breach })
	if i == n {
		return -1
	}
	return g.choices[i]
}

// discharge adds charge to every cell on the path from idx back to a source.
func (g *Grid) discharge(idx, charge int) {
	for count := maxChain; idx != -1 && count > 0; count-- {
		g.bolt[idx] += charge
		idx = g.path[idx]
	}
}

func (g *Grid) updateBoundary() {
	for idx, b := range g.bolt {
		if b > 1 {
			g.boundary[idx] = float64(b) * boundaryScale
		} else {
			g.boundary[idx] = 0
		}
	}
}
