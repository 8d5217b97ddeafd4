package segment

import (
	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
	"gonum.org/v1/gonum/stat"
)

// minMean is the smallest magnitude a mean component may have. Without the
// clamp, a near-colorless sample patch would drive the hue-line slope toward
// infinity.
const minMean = 0.1

// sampleMean returns the arithmetic mean chrominance vector over the samples,
// with each component's magnitude clamped up to minMean. The sample set must
// not be empty.
func sampleMean(samples []chroma.Sample) (chroma.Point, error) {
	if len(samples) == 0 {
		return chroma.Point{}, ErrNoSamples
	}

	us := make([]float64, len(samples))
	vs := make([]float64, len(samples))
	for i, s := range samples {
		us[i] = float64(s.U)
		vs[i] = float64(s.V)
	}

	return chroma.Point{
		X: clampMean(stat.Mean(us, nil)),
		Y: clampMean(stat.Mean(vs, nil)),
	}, nil
}

// clampMean pushes a near-zero mean component out to +/-minMean, preserving
// sign. Exact zero defaults positive.
func clampMean(mean float64) float64 {
	if mean > -minMean && mean < minMean {
		if mean < 0 {
			return -minMean
		}
		return minMean
	}
	return mean
}
