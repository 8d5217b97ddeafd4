package segment

import "errors"

// ErrNoMemory indicates the sample buffer could not be allocated at any size
// down to zero. No partial results are produced.
var ErrNoMemory = errors.New("segment: sample buffer allocation failed")

// ErrNoSamples indicates a region yielded no chrominance samples, so no model
// can be fit. It is treated like an allocation-class failure.
var ErrNoSamples = errors.New("segment: region produced no samples")

// Config holds the tunables for model fitting.
type Config struct {
	// IterateStep scales the intercept shift applied per round of the
	// outlier-threshold line search. Larger values converge faster at the
	// cost of a coarser boundary.
	IterateStep float64 `json:"iterate_step"`

	// HueTol extends each found hue boundary outward by this fraction of
	// its own intercept.
	HueTol float64 `json:"hue_tol"`

	// SatTol extends each found saturation boundary outward by this
	// fraction of its distance from the mean.
	SatTol float64 `json:"sat_tol"`

	// MinSat floors the inner saturation boundary's distance from the
	// origin along the hue axis, and anchors the goodness score.
	MinSat float64 `json:"min_sat"`

	// MaxSatRatio scales SatTol for the outer saturation boundary, which
	// tolerates more spread than the inner one.
	MaxSatRatio float64 `json:"max_sat_ratio"`

	// OutlierRatio is the maximum fraction of samples permitted to remain
	// outside a boundary when its search stops.
	OutlierRatio float64 `json:"outlier_ratio"`

	// MaxSamples is the sample buffer size requested per operation. The
	// degrading allocator may deliver less.
	MaxSamples int `json:"max_samples"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		IterateStep:  0.31,
		HueTol:       1.0,
		SatTol:       1.0,
		MinSat:       2.0,
		MaxSatRatio:  2.0,
		OutlierRatio: 0.10,
		MaxSamples:   0x8000,
	}
}
