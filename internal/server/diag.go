package server

import (
	"github.com/rs/zerolog"

	"github.com/chromatag/chroma-tools-mcp/internal/bayer"
	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
	"github.com/chromatag/chroma-tools-mcp/internal/segment"
)

// logDiagnostics forwards segmentation events to the server's logger.
type logDiagnostics struct {
	log zerolog.Logger
}

func (d logDiagnostics) ModelBuilt(model *segment.Model, samples, goodness int) {
	d.log.Debug().
		Int("samples", samples).
		Int("goodness", goodness).
		Float64("hue_upper", model.Hue[0].Intercept).
		Float64("hue_lower", model.Hue[1].Intercept).
		Float64("sat_hi", model.Sat[0].Intercept).
		Float64("sat_lo", model.Sat[1].Intercept).
		Msg("model built")
}

func (d logDiagnostics) RegionGrown(region bayer.Region, rounds int) {
	d.log.Debug().
		Int("x", region.X).
		Int("y", region.Y).
		Int("width", region.Width).
		Int("height", region.Height).
		Int("rounds", rounds).
		Msg("region grown")
}

func (d logDiagnostics) SearchCapped(line chroma.Line, step float64, steps int) {
	d.log.Warn().
		Float64("slope", line.Slope).
		Float64("intercept", line.Intercept).
		Float64("step", step).
		Int("steps", steps).
		Msg("boundary search hit iteration cap")
}
