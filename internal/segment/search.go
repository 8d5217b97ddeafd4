package segment

import "github.com/chromatag/chroma-tools-mcp/internal/chroma"

// maxSearchSteps bounds a single outlier-threshold search. The search's
// termination argument assumes a convex sample cloud; the cap turns a
// pathological distribution into a reported clamp instead of a hang.
const maxSearchSteps = 65536

// outlierCount counts samples on the excluded side of the line for the given
// step direction: above the line when the step is positive, below when
// negative.
func outlierCount(line chroma.Line, step float64, samples []chroma.Sample) int {
	count := 0
	above := step > 0
	for _, s := range samples {
		boundary := line.At(float64(s.U))
		if above {
			if float64(s.V) > boundary {
				count++
			}
		} else if float64(s.V) < boundary {
			count++
		}
	}
	return count
}

// searchIntercept shifts the line's intercept by step, slope fixed, until the
// excluded sample fraction drops to or below the outlier ratio, and returns
// the resulting intercept. This is a coarse percentile estimate that needs no
// sorting and revisits the full sample set each round.
func searchIntercept(line chroma.Line, step float64, samples []chroma.Sample, outlierRatio float64, diag Diagnostics) float64 {
	n := float64(len(samples))
	for steps := 0; ; steps++ {
		ratio := float64(outlierCount(line, step, samples)) / n
		if ratio <= outlierRatio {
			break
		}
		if steps >= maxSearchSteps {
			diag.SearchCapped(line, step, steps)
			break
		}
		line.Intercept += step
	}
	return line.Intercept
}
