package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/boltgrid/internal/gridfile"
	"github.com/san-kum/boltgrid/internal/metrics"
)

type ExportData struct {
	Height  int                  `json:"height"`
	Width   int                  `json:"width"`
	Steps   int                  `json:"steps"`
	Frames  []gridfile.Frame     `json:"frames"`
	Series  map[string][]float64 `json:"series"`
	Metrics map[string]float64   `json:"metrics"`
}

// ExportJSON writes fs with its per-frame and whole-run metrics as
// indented JSON.
func ExportJSON(w io.Writer, fs *gridfile.FrameSet) error {
	ms := metrics.Defaults()
	data := ExportData{
		Height:  fs.Height,
		Width:   fs.Width,
		Steps:   len(fs.Frames),
		Frames:  fs.Frames,
		Series:  make(map[string][]float64, len(ms)),
		Metrics: metrics.Summarize(fs, ms),
	}
	if data.Frames == nil {
		data.Frames = []gridfile.Frame{}
	}
	for _, m := range ms {
		data.Series[m.Name()] = metrics.Series(fs, m)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
