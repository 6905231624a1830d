package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/boltgrid/internal/gridfile"
	"github.com/san-kum/boltgrid/internal/metrics"
)

// GrowthPlot charts the lit cell count of every frame in fs.
func GrowthPlot(fs *gridfile.FrameSet) string {
	data := metrics.Series(fs, metrics.NewBoltCells())
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("lit cells per frame (%d frames)", len(fs.Frames))),
	)
}

// ProfilePlot charts the row at which each column of d has its first
// target, or -1 where the column has none.
func ProfilePlot(d *gridfile.Description) string {
	if d.Width == 0 {
		return ""
	}
	data := make([]float64, d.Width)
	for i := range data {
		data[i] = -1
	}
	for _, t := range d.Targets {
		if t.Col < 0 || t.Col >= d.Width {
			continue
		}
		if data[t.Col] < 0 || float64(t.Row) < data[t.Col] {
			data[t.Col] = float64(t.Row)
		}
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("target row per column (%d targets)", len(d.Targets))),
	)
}
