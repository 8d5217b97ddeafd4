package bayer

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// ConvertOptions controls how an ordinary image is turned into a mosaic frame.
type ConvertOptions struct {
	// MaxWidth downscales wider images to this width, preserving aspect
	// ratio, before mosaicing. Zero keeps the original size.
	MaxWidth int `json:"max_width"`

	// BlurSigma applies a Gaussian pre-blur with the given radius before
	// mosaicing, suppressing sensor-scale noise that would otherwise leak
	// into the chrominance statistics. Zero disables the blur.
	BlurSigma float64 `json:"blur_sigma"`
}

// FromImage converts a decoded image into a Bayer-mosaic Frame with the
// layout SampleChroma expects: blue at even (x, y), red at odd (x, y), green
// elsewhere. Each mosaic byte is the matching 8-bit channel of the source
// pixel at that coordinate.
//
// This is the ingestion path for offline work with PNG/JPEG material; live
// sensor frames arrive as raw buffers and skip it entirely.
func FromImage(img image.Image, opt ConvertOptions) *Frame {
	if opt.MaxWidth > 0 && img.Bounds().Dx() > opt.MaxWidth {
		img = imaging.Resize(img, opt.MaxWidth, 0, imaging.Lanczos)
	}
	if opt.BlurSigma > 0 {
		img = blur.Gaussian(img, opt.BlurSigma)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			var value uint32
			switch {
			case x%2 == 1 && y%2 == 1:
				value = r
			case x%2 == 0 && y%2 == 0:
				value = b
			default:
				value = g
			}
			pixels[y*width+x] = byte(value >> 8)
		}
	}

	return &Frame{Width: width, Height: height, Pixels: pixels}
}
