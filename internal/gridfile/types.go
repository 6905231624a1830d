package gridfile

// Point is a grid coordinate.
type Point struct {
	Row int
	Col int
}

// In reports whether p lies inside a height x width grid.
func (p Point) In(height, width int) bool {
	return p.Row >= 0 && p.Row < height && p.Col >= 0 && p.Col < width
}

// Description is the generator output and simulator input.
// Sources carry positive charge, Targets negative charge.
type Description struct {
	Height  int
	Width   int
	Power   int
	Eta     int
	Sources []Point
	Targets []Point
}

// Frame is one bolt snapshot indexed [row][col].
type Frame [][]int

func NewFrame(height, width int) Frame {
	f := make(Frame, height)
	for i := range f {
		f[i] = make([]int, width)
	}
	return f
}

// FrameSet is the simulator output and renderer input.
type FrameSet struct {
	Height int
	Width  int
	Frames []Frame
}

func (fs *FrameSet) Append(f Frame) error {
	if len(f) != fs.Height {
		return ErrDimensions
	}
	for _, row := range f {
		if len(row) != fs.Width {
			return ErrDimensions
		}
	}
	fs.Frames = append(fs.Frames, f)
	return nil
}
