package gridfile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// WriteFrames writes fs in the frame sequence format.
func WriteFrames(w io.Writer, fs *FrameSet) error {
	bw := bufio.NewWriter(w)
	var b strings.Builder
	formatInts(&b, []int{fs.Height, fs.Width, len(fs.Frames)})
	if _, err := bw.WriteString(b.String()); err != nil {
		return err
	}

	for _, f := range fs.Frames {
		if len(f) != fs.Height {
			return ErrDimensions
		}
		b.Reset()
		for _, row := range f {
			if len(row) != fs.Width {
				return ErrDimensions
			}
			formatInts(&b, row)
		}
		b.WriteByte('\n')
		if _, err := bw.WriteString(b.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFrames parses a frame sequence. Each frame must be followed by exactly
// one blank line and nothing may follow the last separator.
func ReadFrames(r io.Reader) (*FrameSet, error) {
	lr := newLineReader(r)

	header, err := lr.ints(3, "header")
	if err != nil {
		return nil, err
	}
	height, width, steps := header[0], header[1], header[2]
	if height < 0 || width < 0 || steps < 0 {
		return nil, parseErr(lr.line, "negative header value")
	}

	// Header counts are not trusted for allocation; frames and rows grow
	// as their lines arrive.
	fs := &FrameSet{Height: height, Width: width}

	for s := 0; s < steps; s++ {
		var f Frame
		for i := 0; i < height; i++ {
			row, err := lr.ints(width, "frame row")
			if err != nil {
				return nil, err
			}
			f = append(f, row)
		}

		sep, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, parseErr(lr.line+1, "missing separator after frame %d", s)
		}
		if strings.TrimSpace(sep) != "" {
			return nil, parseErr(lr.line, "separator after frame %d is not blank", s)
		}
		if f == nil {
			f = Frame{}
		}
		fs.Frames = append(fs.Frames, f)
	}

	if _, ok, err := lr.next(); err != nil {
		return nil, err
	} else if ok {
		return nil, parseErr(lr.line, "unexpected content after %d frames", steps)
	}
	return fs, nil
}

func LoadFrames(path string) (*FrameSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFrames(f)
}

func SaveFrames(path string, fs *FrameSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFrames(f, fs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// HeaderFields counts the values on the first line of path: 4 for a grid
// description, 3 for a frame sequence.
func HeaderFields(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	text, ok, err := newLineReader(f).next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, parseErr(1, "empty file")
	}
	return len(strings.Fields(text)), nil
}
