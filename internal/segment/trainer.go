package segment

import (
	"math"

	"github.com/chromatag/chroma-tools-mcp/internal/bayer"
	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
	"github.com/chromatag/chroma-tools-mcp/internal/membuf"
)

// Trainer fits color models from frame regions.
type Trainer struct {
	cfg   Config
	alloc *membuf.Allocator
	diag  Diagnostics
}

// NewTrainer returns a Trainer with the given configuration. A nil allocator
// selects the default degrading allocator; a nil diagnostics sink selects
// NopDiagnostics.
func NewTrainer(cfg Config, alloc *membuf.Allocator, diag Diagnostics) *Trainer {
	if alloc == nil {
		alloc = membuf.New(nil)
	}
	if diag == nil {
		diag = NopDiagnostics{}
	}
	return &Trainer{cfg: cfg, alloc: alloc, diag: diag}
}

// TrainResult is a finished model with its goodness score, the number of
// samples it was fit to, and the (clamped) mean chrominance they produced.
type TrainResult struct {
	Model    Model        `json:"model"`
	Goodness int          `json:"goodness"`
	Samples  int          `json:"samples"`
	Mean     chroma.Point `json:"mean"`
}

// Train samples the region and fits the four-line color model.
//
// The region is clipped to the frame and its offsets are forced to the mosaic
// phase by the sampler. Returns ErrNoMemory when no sample buffer of any size
// can be acquired and ErrNoSamples when the clipped region yields nothing;
// every other path produces a finite model thanks to the mean clamping in the
// statistics step.
func (t *Trainer) Train(frame *bayer.Frame, region bayer.Region) (*TrainResult, error) {
	buf, size := t.alloc.Acquire(t.cfg.MaxSamples)
	if buf == nil {
		return nil, ErrNoMemory
	}

	n := bayer.SampleChroma(frame, region.ClipTo(frame), buf[:size])
	if n == 0 {
		return nil, ErrNoSamples
	}
	samples := buf[:n]

	mean, err := sampleMean(samples)
	if err != nil {
		return nil, err
	}

	// Principal hue axis of the sampled color.
	angle := math.Atan2(mean.Y, mean.X)
	uvec := chroma.Point{X: math.Cos(angle), Y: math.Sin(angle)}

	hueLine := chroma.Line{Slope: math.Tan(angle)}

	pangle := angle + math.Pi/2
	pslope := math.Tan(pangle)
	pLine := chroma.Line{Slope: pslope, Intercept: mean.Y - pslope*mean.X}

	var model Model

	// Upper hue boundary, extended outward by the hue tolerance.
	istep := math.Abs(t.cfg.IterateStep / uvec.X)
	yi := searchIntercept(hueLine, istep, samples, t.cfg.OutlierRatio, t.diag)
	yi += math.Abs(t.cfg.HueTol * yi)
	model.Hue[0] = chroma.Line{Slope: hueLine.Slope, Intercept: yi}

	// Lower hue boundary.
	yi = searchIntercept(hueLine, -istep, samples, t.cfg.OutlierRatio, t.diag)
	yi -= math.Abs(t.cfg.HueTol * yi)
	model.Hue[1] = chroma.Line{Slope: hueLine.Slope, Intercept: yi}

	// Inner saturation boundary, searched toward the origin.
	s := chroma.Sign(uvec.Y)
	istep = s * math.Abs(t.cfg.IterateStep/math.Cos(pangle))
	yi = searchIntercept(pLine, -istep, samples, t.cfg.OutlierRatio, t.diag)
	yi -= s * math.Abs(t.cfg.SatTol*(yi-pLine.Intercept))

	// Where the inner boundary crosses the hue axis, projected onto it.
	xsat := yi / (hueLine.Slope - pslope)
	minsatVec := chroma.Point{X: xsat, Y: xsat * hueLine.Slope}
	sat := uvec.Dot(minsatVec)
	meanSat := uvec.Dot(mean)
	if sat < t.cfg.MinSat {
		// Too close to colorless; rebuild the boundary at the minimum
		// saturation magnitude along the hue axis.
		minsatVec = chroma.Point{X: uvec.X * t.cfg.MinSat, Y: uvec.Y * t.cfg.MinSat}
		yi = minsatVec.Y - pslope*minsatVec.X
	}
	model.Sat[0] = chroma.Line{Slope: pslope, Intercept: yi}

	// Outer saturation boundary, searched away from the origin.
	yi = searchIntercept(pLine, istep, samples, t.cfg.OutlierRatio, t.diag)
	yi += s * math.Abs(t.cfg.MaxSatRatio*t.cfg.SatTol*(yi-pLine.Intercept))
	model.Sat[1] = chroma.Line{Slope: pslope, Intercept: yi}

	// The saturation pair's identity is defined by intercept order, not by
	// which search produced it.
	if model.Sat[1].Intercept > model.Sat[0].Intercept {
		model.Sat[0], model.Sat[1] = model.Sat[1], model.Sat[0]
	}

	goodness := int((meanSat-t.cfg.MinSat)*100/64 + 10)
	if goodness < 0 {
		goodness = 0
	}
	if goodness > 100 {
		goodness = 100
	}

	t.diag.ModelBuilt(&model, n, goodness)

	return &TrainResult{Model: model, Goodness: goodness, Samples: n, Mean: mean}, nil
}
