package segment

import (
	"github.com/chromatag/chroma-tools-mcp/internal/bayer"
	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
)

// mosaicValue returns the mosaic byte for the given channel triple at a
// coordinate, following the package layout: red at odd/odd, blue at
// even/even, green elsewhere.
func mosaicValue(x, y int, r, g, b byte) byte {
	switch {
	case x%2 == 1 && y%2 == 1:
		return r
	case x%2 == 0 && y%2 == 0:
		return b
	default:
		return g
	}
}

// solidFrame builds a mosaic frame of one uniform color.
func solidFrame(width, height int, r, g, b byte) *bayer.Frame {
	pixels := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = mosaicValue(x, y, r, g, b)
		}
	}
	return &bayer.Frame{Width: width, Height: height, Pixels: pixels}
}

// patchFrame builds a mosaic frame of one background color with a
// differently colored rectangular patch.
func patchFrame(width, height int, patch bayer.Region, br, bg, bb, pr, pg, pb byte) *bayer.Frame {
	pixels := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x >= patch.X && x < patch.X+patch.Width && y >= patch.Y && y < patch.Y+patch.Height {
				pixels[y*width+x] = mosaicValue(x, y, pr, pg, pb)
			} else {
				pixels[y*width+x] = mosaicValue(x, y, br, bg, bb)
			}
		}
	}
	return &bayer.Frame{Width: width, Height: height, Pixels: pixels}
}

// noisyFrame builds a frame around a base color with deterministic
// position-dependent variation, so chrominance samples form a small cloud
// instead of a single point.
func noisyFrame(width, height int, r, g, b byte) *bayer.Frame {
	pixels := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			base := mosaicValue(x, y, r, g, b)
			pixels[i] = base + byte(i*7%13)
		}
	}
	return &bayer.Frame{Width: width, Height: height, Pixels: pixels}
}

// samplesAt builds a sample slice from explicit pairs.
func samplesAt(pairs ...[2]int8) []chroma.Sample {
	out := make([]chroma.Sample, len(pairs))
	for i, p := range pairs {
		out[i] = chroma.Sample{U: p[0], V: p[1]}
	}
	return out
}

// recordingDiag captures diagnostics events for assertions.
type recordingDiag struct {
	models  int
	regions []bayer.Region
	capped  int
}

func (d *recordingDiag) ModelBuilt(*Model, int, int) { d.models++ }

func (d *recordingDiag) RegionGrown(r bayer.Region, _ int) {
	d.regions = append(d.regions, r)
}

func (d *recordingDiag) SearchCapped(chroma.Line, float64, int) { d.capped++ }
