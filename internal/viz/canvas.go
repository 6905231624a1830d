package viz

import (
	"strings"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). The canvas size in sub-pixels is
// (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// FrameCanvas maps every cell of f to one sub-pixel, lit when the cell
// carries positive charge.
func FrameCanvas(f gridfile.Frame) *Canvas {
	h := len(f)
	w := 0
	if h > 0 {
		w = len(f[0])
	}
	c := NewCanvas((w+1)/2, (h+3)/4)
	DrawFrame(c, f)
	return c
}

// DrawFrame clears c and plots f onto it.
func DrawFrame(c *Canvas, f gridfile.Frame) {
	c.Clear()
	for y, row := range f {
		for x, v := range row {
			if v > 0 {
				c.Set(x, y)
			}
		}
	}
}
