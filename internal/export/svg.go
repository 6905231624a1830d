package export

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/boltgrid/internal/gridfile"
	"github.com/san-kum/boltgrid/internal/render"
)

var ErrInvalidScale = errors.New("export: scale must be positive")

// FrameSVG draws f as a grid of scale x scale squares on a black
// background, using the same grey levels as the animation renderer.
func FrameSVG(w io.Writer, f gridfile.Frame, scale int) error {
	if scale < 1 {
		return ErrInvalidScale
	}
	height := len(f)
	width := 0
	if height > 0 {
		width = len(f[0])
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width*scale, height*scale)
	canvas.Title(fmt.Sprintf("bolt %dx%d", height, width))
	canvas.Rect(0, 0, width*scale, height*scale, "fill:black")

	canvas.Gstyle("stroke:none")
	for y, row := range f {
		for x, v := range row {
			g := render.Luminance(v)
			if g == 0 {
				continue
			}
			canvas.Rect(x*scale, y*scale, scale, scale, fmt.Sprintf("fill:rgb(%d,%d,%d)", g, g, g))
		}
	}
	canvas.Gend()
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("export: write svg: %w", ew.err)
	}
	return nil
}

// errWriter keeps the first write error, which svgo discards, and drops
// everything written after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
