package segment

import (
	"github.com/chromatag/chroma-tools-mcp/internal/bayer"
	"github.com/chromatag/chroma-tools-mcp/internal/membuf"
)

// Region growth granularity. The increment is the strip width added per
// accepted round, the distance is the chrominance coherence limit, and the
// attenuation shrinks the final rectangle about its center to compensate for
// the fixed increment's overshoot.
const (
	growIncrement   = 4
	growMaxDistance = 20.0
	growAttenuation = 0.75
)

// Direction bits for the grower's done mask.
const (
	growLeft = 1 << iota
	growTop
	growRight
	growBottom
	growDone = growLeft | growTop | growRight | growBottom
)

// Grower finds a coherent sample rectangle around a seed pixel.
type Grower struct {
	cfg   Config
	alloc *membuf.Allocator
	diag  Diagnostics
}

// NewGrower returns a Grower. Nil arguments select the default degrading
// allocator and NopDiagnostics, as with NewTrainer.
func NewGrower(cfg Config, alloc *membuf.Allocator, diag Diagnostics) *Grower {
	if alloc == nil {
		alloc = membuf.New(nil)
	}
	if diag == nil {
		diag = NopDiagnostics{}
	}
	return &Grower{cfg: cfg, alloc: alloc, diag: diag}
}

// Grow expands a small region centered on the seed pixel while chrominance
// statistics stay coherent, then shrinks the result about its center by the
// attenuation factor.
//
// Each of the four directions is tracked independently and marked done once
// it reaches the frame boundary or a candidate strip fails the coherence
// test: zero samples, or mean chrominance further than the distance limit
// from the seed region's mean. Growth terminates when all four directions
// are done. Returns ErrNoMemory when no sample buffer can be acquired and
// ErrNoSamples when the seed region yields nothing to compare against.
func (g *Grower) Grow(frame *bayer.Frame, seedX, seedY int) (bayer.Region, error) {
	buf, size := g.alloc.Acquire(g.cfg.MaxSamples)
	if buf == nil {
		return bayer.Region{}, ErrNoMemory
	}
	buf = buf[:size]

	region := seedRegion(frame, seedX, seedY)

	n := bayer.SampleChroma(frame, region, buf)
	if n == 0 {
		return bayer.Region{}, ErrNoSamples
	}
	reference, err := sampleMean(buf[:n])
	if err != nil {
		return bayer.Region{}, err
	}

	done := 0
	for rounds := 0; ; rounds++ {
		for dir := growLeft; dir <= growBottom; dir <<= 1 {
			if done&dir != 0 {
				continue
			}

			var strip bayer.Region
			switch dir {
			case growLeft:
				if region.X > growIncrement {
					strip.X = region.X - growIncrement
				} else {
					strip.X = 0
					done |= dir
				}
				strip.Y = region.Y
				strip.Width = growIncrement
				strip.Height = region.Height
			case growTop:
				if region.Y > growIncrement {
					strip.Y = region.Y - growIncrement
				} else {
					strip.Y = 0
					done |= dir
				}
				strip.X = region.X
				strip.Width = region.Width
				strip.Height = growIncrement
			case growRight:
				if region.X+region.Width+growIncrement > frame.Width {
					strip.Width = frame.Width - region.X - region.Width
					done |= dir
				} else {
					strip.Width = growIncrement
				}
				strip.X = region.X + region.Width
				strip.Y = region.Y
				strip.Height = region.Height
			case growBottom:
				if region.Y+region.Height+growIncrement > frame.Height {
					strip.Height = frame.Height - region.Y - region.Height
					done |= dir
				} else {
					strip.Height = growIncrement
				}
				strip.X = region.X
				strip.Y = region.Y + region.Height
				strip.Width = region.Width
			}

			// A clipped strip may still contribute a final partial
			// merge before its direction retires.
			n := bayer.SampleChroma(frame, strip, buf)
			if n == 0 {
				done |= dir
			} else {
				mean, err := sampleMean(buf[:n])
				if err != nil {
					return bayer.Region{}, err
				}
				if reference.DistanceTo(mean) > growMaxDistance {
					done |= dir
				} else {
					region = merge(region, strip)
				}
			}

			if done == growDone {
				result := attenuate(region).ClipTo(frame)
				g.diag.RegionGrown(result, rounds+1)
				return result, nil
			}
		}
	}
}

// seedRegion builds the initial 2x2-increment block around the seed pixel.
// Offsets clamp at the frame origin without narrowing the block; only the far
// edges trim it.
func seedRegion(frame *bayer.Frame, seedX, seedY int) bayer.Region {
	r := bayer.Region{Width: 2 * growIncrement, Height: 2 * growIncrement}
	if seedX > growIncrement {
		r.X = seedX - growIncrement
	}
	if seedY > growIncrement {
		r.Y = seedY - growIncrement
	}
	return r.ClipTo(frame)
}

// merge extends the region to absorb an adjacent accepted strip.
func merge(region, strip bayer.Region) bayer.Region {
	switch {
	case strip.X < region.X:
		region.X = strip.X
		region.Width += strip.Width
	case strip.Y < region.Y:
		region.Y = strip.Y
		region.Height += strip.Height
	case strip.X+strip.Width > region.X+region.Width:
		region.Width += strip.Width
	case strip.Y+strip.Height > region.Y+region.Height:
		region.Height += strip.Height
	}
	return region
}

// attenuate shrinks the region about its own center by the attenuation
// factor.
func attenuate(region bayer.Region) bayer.Region {
	region.Width = int(float64(region.Width) * growAttenuation)
	region.X += int(float64(region.Width) * (1 - growAttenuation) / 2)
	region.Height = int(float64(region.Height) * growAttenuation)
	region.Y += int(float64(region.Height) * (1 - growAttenuation) / 2)
	return region
}
