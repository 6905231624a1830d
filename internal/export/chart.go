package export

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/boltgrid/internal/gridfile"
	"github.com/san-kum/boltgrid/internal/metrics"
)

var ErrTooFewFrames = errors.New("export: chart needs at least two frames")

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorRed,
	chart.ColorGreen,
	{R: 255, G: 165, B: 0, A: 255},
}

// GrowthChart writes a PNG line chart of the lit and channel cell counts
// of each frame in fs.
func GrowthChart(w io.Writer, fs *gridfile.FrameSet) error {
	n := len(fs.Frames)
	if n < 2 {
		return ErrTooFewFrames
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	peak := 1.0
	var series []chart.Series
	for i, m := range []metrics.Metric{metrics.NewBoltCells(), metrics.NewChannelCells()} {
		ys := metrics.Series(fs, m)
		for _, y := range ys {
			peak = max(peak, y)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    m.Name(),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: seriesColors[i%len(seriesColors)], StrokeWidth: 3.0},
		})
	}

	graph := chart.Chart{
		Width:  640,
		Height: 320,
		XAxis: chart.XAxis{
			Name:  "frame",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: peak * 1.1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
