package render

import (
	"image"
	"image/color"
	"math"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

// Grayscale maps palette index i to the grey (i, i, i).
var Grayscale = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.RGBA{R: uint8(i), G: uint8(i), B: uint8(i), A: 255}
	}
	return p
}()

// Luminance maps a bolt intensity to a grey level. Empty and ground cells
// are black; intensities from 5 upward saturate at white.
func Luminance(bolt int) uint8 {
	if bolt <= 0 {
		return 0
	}
	l := math.Round((float64(bolt) - 0.5) * 0.5 * 128)
	if l > 255 {
		return 255
	}
	return uint8(l)
}

// Rasterize draws one frame as a height x width greyscale image, one pixel
// per cell.
func Rasterize(height, width int, f gridfile.Frame) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, width, height), Grayscale)
	for i := 0; i < height && i < len(f); i++ {
		for j := 0; j < width && j < len(f[i]); j++ {
			img.SetColorIndex(j, i, Luminance(f[i][j]))
		}
	}
	return img
}

// RasterizeAll draws every frame of fs.
func RasterizeAll(fs *gridfile.FrameSet) []*image.Paletted {
	out := make([]*image.Paletted, len(fs.Frames))
	for i, f := range fs.Frames {
		out[i] = Rasterize(fs.Height, fs.Width, f)
	}
	return out
}
