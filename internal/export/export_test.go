package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

func TestFrameSVG(t *testing.T) {
	var buf bytes.Buffer
	f := gridfile.Frame{
		{3, 0},
		{-1, 1},
	}
	if err := FrameSVG(&buf, f, 4); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `width="8"`) || !strings.Contains(out, `height="8"`) {
		t.Errorf("expected 8x8 document:\n%s", out)
	}
	if n := strings.Count(out, "<rect"); n != 3 {
		t.Errorf("expected background plus 2 cells, got %d rects", n)
	}
	if !strings.Contains(out, "fill:rgb(160,160,160)") {
		t.Error("missing grey for intensity 3")
	}
	if !strings.Contains(out, "fill:rgb(32,32,32)") {
		t.Error("missing grey for intensity 1")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("document not closed")
	}
}

func TestFrameSVGInvalidScale(t *testing.T) {
	var buf bytes.Buffer
	if err := FrameSVG(&buf, gridfile.Frame{{1}}, 0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}

type failWriter struct{ calls int }

var errDiskFull = errors.New("disk full")

func (f *failWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errDiskFull
}

func TestFrameSVGWriteError(t *testing.T) {
	w := &failWriter{}
	err := FrameSVG(w, gridfile.Frame{{1, 2}, {0, 3}}, 2)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected write error, got %v", err)
	}
	if w.calls != 1 {
		t.Errorf("expected writes to stop after the first failure, got %d calls", w.calls)
	}
}

func TestGrowthChart(t *testing.T) {
	fs := &gridfile.FrameSet{
		Height: 2,
		Width:  2,
		Frames: []gridfile.Frame{
			{{1, 0}, {0, -1}},
			{{2, 0}, {1, 1}},
			{{2, 2}, {2, 1}},
		},
	}

	var buf bytes.Buffer
	if err := GrowthChart(&buf, fs); err != nil {
		t.Fatalf("chart failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("expected PNG signature")
	}
}

func TestGrowthChartFlatSeries(t *testing.T) {
	fs := &gridfile.FrameSet{
		Height: 1,
		Width:  1,
		Frames: []gridfile.Frame{{{0}}, {{0}}},
	}
	var buf bytes.Buffer
	if err := GrowthChart(&buf, fs); err != nil {
		t.Fatalf("chart failed: %v", err)
	}
}

func TestGrowthChartTooFewFrames(t *testing.T) {
	fs := &gridfile.FrameSet{Height: 1, Width: 1, Frames: []gridfile.Frame{{{1}}}}
	if err := GrowthChart(&bytes.Buffer{}, fs); !errors.Is(err, ErrTooFewFrames) {
		t.Errorf("expected ErrTooFewFrames, got %v", err)
	}
}
