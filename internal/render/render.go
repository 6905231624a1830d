// Package render turns frame sequences into animated images.
//
// Each cell becomes one pixel: cells with positive bolt intensity are grey
// with luminance round((bolt-0.5)*64), everything else is black. Inputs
// with fewer than two frames produce no animation; [RenderFile] reports
// this through [Result.Written] instead of creating an output file.
package render

import (
	"fmt"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

// MinFrames is the smallest frame count that is written as an animation.
const MinFrames = 2

type Result struct {
	Frames  int
	Written bool
	Format  string
}

// RenderFile reads the frame sequence at in and writes the animation to
// out. Input is parsed completely before out is created.
func RenderFile(in, out string) (*Result, error) {
	fs, err := gridfile.LoadFrames(in)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", in, err)
	}
	return RenderFrames(fs, out)
}

func RenderFrames(fs *gridfile.FrameSet, out string) (*Result, error) {
	enc := EncoderFor(out)
	result := &Result{Frames: len(fs.Frames), Format: enc.Name()}
	if len(fs.Frames) < MinFrames {
		return result, nil
	}

	if err := enc.Encode(out, RasterizeAll(fs)); err != nil {
		return nil, fmt.Errorf("render: write %s: %w", out, err)
	}
	result.Written = true
	return result, nil
}
