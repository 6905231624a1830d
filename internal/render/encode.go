package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/icza/mjpeg"
)

const (
	// FrameDuration is the display time of every frame in milliseconds.
	FrameDuration = 500
	// LoopForever repeats the animation without end.
	LoopForever = 0

	jpegQuality = 100
)

var ErrNoFrames = errors.New("render: no frames to encode")

// Encoder writes an animation container to path.
type Encoder interface {
	Name() string
	Encode(path string, frames []*image.Paletted) error
}

// EncoderFor picks the container from the file extension; GIF is the
// default.
func EncoderFor(path string) Encoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".avi":
		return aviEncoder{}
	default:
		return gifEncoder{}
	}
}

// EncodeGIF writes frames as an infinitely looping GIF with a fixed
// per-frame delay. Output depends only on the frames.
func EncodeGIF(w io.Writer, frames []*image.Paletted) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{LoopCount: LoopForever}
	for _, f := range frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, FrameDuration/10)
	}
	return gif.EncodeAll(w, anim)
}

type gifEncoder struct{}

func (gifEncoder) Name() string { return "gif" }

func (gifEncoder) Encode(path string, frames []*image.Paletted) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeGIF(f, frames); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// aviEncoder writes Motion-JPEG AVI at the frame rate matching FrameDuration.
type aviEncoder struct{}

func (aviEncoder) Name() string { return "avi" }

func (aviEncoder) Encode(path string, frames []*image.Paletted) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	b := frames[0].Bounds()
	aw, err := mjpeg.New(path, int32(b.Dx()), int32(b.Dy()), int32(1000/FrameDuration))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, f := range frames {
		buf.Reset()
		if err := jpeg.Encode(&buf, f, &jpeg.Options{Quality: jpegQuality}); err != nil {
			aw.Close()
			os.Remove(path)
			return fmt.Errorf("render: frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			os.Remove(path)
			return fmt.Errorf("render: frame %d: %w", i, err)
		}
	}
	return aw.Close()
}
