package bayer

import "github.com/chromatag/chroma-tools-mcp/internal/chroma"

// chromaBias recenters the two-component sum at zero. It is the mid-scale
// value of an 8-bit pixel.
const chromaBias = 127

// SampleChroma fills buf with up to cap(buf) chrominance pairs taken from the
// given region of the frame, one pair per 2x2 mosaic block, stepping by 2 in
// both axes. It returns the number of samples written, which is less than the
// region's block count only when buf fills up first.
//
// The region must already be clipped to the frame (see Region.ClipTo). Its
// offsets are forced to the nearest odd coordinate so every visited block
// reads the same mosaic phase: red at the block position, the two greens at
// one left and one up, blue diagonal.
func SampleChroma(f *Frame, region Region, buf []chroma.Sample) int {
	ox := region.X | 1
	oy := region.Y | 1

	count := 0
	for y := 0; y < region.Height && count < len(buf); y += 2 {
		py := oy + y
		if py >= f.Height {
			break
		}
		row := py * f.Width
		for x := 0; x < region.Width && count < len(buf); x += 2 {
			px := ox + x
			if px >= f.Width {
				break
			}
			r := int(f.Pixels[row+px])
			g1 := int(f.Pixels[row+px-1])
			g2 := int(f.Pixels[row-f.Width+px])
			b := int(f.Pixels[row-f.Width+px-1])

			u := (r + g1 - chromaBias) >> 1
			v := (b + g2 - chromaBias) >> 1
			buf[count] = chroma.Sample{U: int8(u), V: int8(v)}
			count++
		}
	}
	return count
}
