package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteDescription writes d in the grid description format.
func WriteDescription(w io.Writer, d *Description) error {
	var b strings.Builder
	formatInts(&b, []int{d.Height, d.Width, d.Power, d.Eta})
	writePoints(&b, d.Sources)
	writePoints(&b, d.Targets)

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(b.String()); err != nil {
		return err
	}
	return bw.Flush()
}

func writePoints(b *strings.Builder, pts []Point) {
	fmt.Fprintf(b, "%d\n", len(pts))
	for _, p := range pts {
		fmt.Fprintf(b, "%d %d\n", p.Row, p.Col)
	}
}

// ReadDescription parses a grid description.
func ReadDescription(r io.Reader) (*Description, error) {
	lr := newLineReader(r)

	header, err := lr.ints(4, "header")
	if err != nil {
		return nil, err
	}
	d := &Description{
		Height: header[0],
		Width:  header[1],
		Power:  header[2],
		Eta:    header[3],
	}

	if d.Sources, err = readPoints(lr, "source"); err != nil {
		return nil, err
	}
	if d.Targets, err = readPoints(lr, "target"); err != nil {
		return nil, err
	}
	return d, nil
}

func readPoints(lr *lineReader, what string) ([]Point, error) {
	count, err := lr.ints(1, what+" count")
	if err != nil {
		return nil, err
	}
	if count[0] < 0 {
		return nil, parseErr(lr.line, "negative %s count %d", what, count[0])
	}
	var pts []Point
	for i := 0; i < count[0]; i++ {
		v, err := lr.ints(2, what+" point")
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{Row: v[0], Col: v[1]})
	}
	return pts, nil
}

// LoadDescription reads a grid description from path.
func LoadDescription(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDescription(f)
}

// SaveDescription creates path and writes d to it.
func SaveDescription(path string, d *Description) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDescription(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
