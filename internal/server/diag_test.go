package server

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chromatag/chroma-tools-mcp/internal/bayer"
	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
	"github.com/chromatag/chroma-tools-mcp/internal/segment"
)

// captureDiag returns a diagnostics sink whose events land in the buffer as
// JSON lines.
func captureDiag(buf *bytes.Buffer) logDiagnostics {
	return logDiagnostics{log: zerolog.New(buf)}
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var event map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	return event
}

func TestLogDiagnostics_ModelBuilt(t *testing.T) {
	var buf bytes.Buffer
	d := captureDiag(&buf)

	model := &segment.Model{
		Hue: [2]chroma.Line{{Slope: 1, Intercept: 10}, {Slope: 1, Intercept: -10}},
		Sat: [2]chroma.Line{{Slope: -1, Intercept: 60}, {Slope: -1, Intercept: 20}},
	}
	d.ModelBuilt(model, 512, 85)

	event := decodeLogLine(t, &buf)

	// The saturation pair is identified by intercept order only, so the
	// fields carry order-based names.
	for field, want := range map[string]float64{
		"hue_upper": 10,
		"hue_lower": -10,
		"sat_hi":    60,
		"sat_lo":    20,
		"samples":   512,
		"goodness":  85,
	} {
		got, ok := event[field].(float64)
		if !ok {
			t.Errorf("field %q missing from event %v", field, event)
			continue
		}
		if got != want {
			t.Errorf("field %q: got %v, want %v", field, got, want)
		}
	}
}

func TestLogDiagnostics_RegionGrown(t *testing.T) {
	var buf bytes.Buffer
	d := captureDiag(&buf)

	d.RegionGrown(bayer.Region{X: 4, Y: 6, Width: 20, Height: 10}, 3)

	event := decodeLogLine(t, &buf)
	for field, want := range map[string]float64{
		"x": 4, "y": 6, "width": 20, "height": 10, "rounds": 3,
	} {
		if got, _ := event[field].(float64); got != want {
			t.Errorf("field %q: got %v, want %v", field, got, want)
		}
	}
}

func TestLogDiagnostics_SearchCapped(t *testing.T) {
	var buf bytes.Buffer
	d := captureDiag(&buf)

	d.SearchCapped(chroma.Line{Slope: 0.5, Intercept: 12}, 0.31, 65536)

	event := decodeLogLine(t, &buf)
	if event["level"] != "warn" {
		t.Errorf("level: got %v, want warn", event["level"])
	}
	if got, _ := event["steps"].(float64); got != 65536 {
		t.Errorf("steps: got %v, want 65536", got)
	}
}
