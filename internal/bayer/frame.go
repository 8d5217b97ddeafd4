package bayer

import "fmt"

// Frame is a single-channel Bayer-mosaic image. Pixels is row-major with
// stride equal to Width. The frame is consumed read-only by this module;
// ownership stays with the provider.
type Frame struct {
	Width  int
	Height int
	Pixels []byte
}

// NewFrame wraps a pixel buffer as a Frame, validating that the buffer holds
// exactly width*height bytes.
func NewFrame(width, height int, pixels []byte) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("pixel buffer holds %d bytes, want %d", len(pixels), width*height)
	}
	return &Frame{Width: width, Height: height, Pixels: pixels}, nil
}

// Region is a sub-rectangle of a Frame, given as an offset plus a size.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ClipTo returns the region intersected with the frame bounds. A region
// entirely outside the frame clips to zero size.
func (r Region) ClipTo(f *Frame) Region {
	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.X+r.Width > f.Width {
		r.Width = f.Width - r.X
	}
	if r.Y+r.Height > f.Height {
		r.Height = f.Height - r.Y
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
