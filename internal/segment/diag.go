package segment

import (
	"github.com/chromatag/chroma-tools-mcp/internal/bayer"
	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
)

// Diagnostics receives notable events from model fitting and region growth.
// Implementations must not retain the model pointer past the call.
//
// The core always emits the same events regardless of build configuration;
// the caller decides what to do with them. NopDiagnostics is the default.
type Diagnostics interface {
	// ModelBuilt fires after a successful Train with the finished model,
	// the number of samples it was fit to, and its goodness score.
	ModelBuilt(model *Model, samples, goodness int)

	// RegionGrown fires after a successful Grow with the attenuated result
	// region and the number of expansion rounds taken.
	RegionGrown(region bayer.Region, rounds int)

	// SearchCapped fires when an outlier-threshold search hits its safety
	// iteration cap, which indicates a sample cloud outside the search's
	// convexity contract. The build continues with the capped intercept.
	SearchCapped(line chroma.Line, step float64, steps int)
}

// NopDiagnostics discards every event.
type NopDiagnostics struct{}

func (NopDiagnostics) ModelBuilt(*Model, int, int)           {}
func (NopDiagnostics) RegionGrown(bayer.Region, int)         {}
func (NopDiagnostics) SearchCapped(chroma.Line, float64, int) {}
