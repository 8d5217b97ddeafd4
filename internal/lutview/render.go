// Package lutview renders classification tables and models into forms a
// human (or an MCP client) can look at. It is a presentation layer only; no
// segmentation logic lives here.
package lutview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
	"github.com/chromatag/chroma-tools-mcp/internal/segment"
)

// RenderResult contains a rendered LUT image.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// classPalette returns one distinguishable color per assignable class tag.
// Index 0 (background) is black.
func classPalette() []color.Color {
	palette := make([]color.Color, segment.MaxClass+1)
	palette[0] = color.Black
	for i, c := range colorful.FastHappyPalette(segment.MaxClass) {
		palette[i+1] = c
	}
	return palette
}

// RenderLUT draws the full classification table as a 256x256 PNG, one pixel
// per (u, v) pair with u on the horizontal axis, and returns it
// base64-encoded. Signed components are offset so the most negative pair
// lands at the top-left corner.
func RenderLUT(lut segment.LUT) (*RenderResult, error) {
	if len(lut) != segment.LUTSize {
		return nil, fmt.Errorf("LUT holds %d entries, want %d", len(lut), segment.LUTSize)
	}

	palette := classPalette()
	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	for y := 0; y < 256; y++ {
		v := int8(y - 128)
		for x := 0; x < 256; x++ {
			u := int8(x - 128)
			tag := lut.Lookup(u, v)
			img.Set(x, y, palette[tag&0x07])
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode LUT image: %w", err)
	}

	return &RenderResult{
		Width:       256,
		Height:      256,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Swatch approximates a chrominance point as a display color and returns its
// hex form. Chrominance carries no brightness, so the point is projected into
// the a/b plane of Lab at a fixed lightness; the result is for eyeballing
// trained colors, not for colorimetric use.
func Swatch(p chroma.Point) string {
	c := colorful.Lab(0.7, p.X/128, p.Y/128).Clamped()
	return c.Hex()
}
