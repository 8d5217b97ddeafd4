package segment

import (
	"fmt"

	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
)

// LUTSize is the number of entries in a classification table: one per
// representable (u, v) pair.
const LUTSize = 0x10000

// ClassAll is the reserved class index that addresses every entry in Clear.
const ClassAll = 0

// MaxClass is the highest assignable class tag.
const MaxClass = 7

// Strategy selects how Populate assigns class tags.
type Strategy int

const (
	// StrategyPolygon tags entries by full four-line membership against
	// the model, without stealing entries already claimed by a
	// higher-priority (numerically lower) class.
	StrategyPolygon Strategy = iota

	// StrategyBrightness ignores the model shape and tags any pair whose
	// components both exceed a fixed low threshold as foreground, clearing
	// everything else.
	StrategyBrightness
)

// brightnessFloor is the per-component threshold used by StrategyBrightness.
const brightnessFloor = -50

// ParseStrategy maps a tool-facing strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "polygon":
		return StrategyPolygon, nil
	case "brightness":
		return StrategyBrightness, nil
	default:
		return 0, fmt.Errorf("unknown LUT strategy %q", name)
	}
}

// String returns the tool-facing name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyPolygon:
		return "polygon"
	case StrategyBrightness:
		return "brightness"
	default:
		return "unknown"
	}
}

// LUT is a fixed-size classification table indexed by the concatenation of
// the two signed chrominance bytes: entry (uint8(u)<<8 | uint8(v)). Each
// entry holds a class tag, 0 for background and 1..MaxClass for models.
//
// The storage is caller-owned; the segment package only writes into it.
type LUT []byte

// NewLUT allocates a zeroed classification table.
func NewLUT() LUT {
	return make(LUT, LUTSize)
}

// lutIndex maps a chrominance pair to its table entry.
func lutIndex(u, v int8) int {
	return int(uint8(u))<<8 | int(uint8(v))
}

// Populate walks the full table and assigns class tags for the model
// according to the strategy. The class must be in 1..MaxClass.
func (l LUT) Populate(model *Model, class uint8, strategy Strategy) error {
	if len(l) != LUTSize {
		return fmt.Errorf("LUT holds %d entries, want %d", len(l), LUTSize)
	}
	if class < 1 || class > MaxClass {
		return fmt.Errorf("class %d out of range 1..%d", class, MaxClass)
	}

	for i := 0; i < LUTSize; i++ {
		s := chroma.Sample{U: int8(i >> 8), V: int8(i & 0xff)}
		switch strategy {
		case StrategyBrightness:
			if s.U > brightnessFloor && s.V > brightnessFloor {
				l[i] = class
			} else {
				l[i] = 0
			}
		default:
			if (l[i] == 0 || l[i] >= class) && model.Contains(s) {
				l[i] = class
			}
		}
	}
	return nil
}

// Clear resets every entry tagged with class to background. ClassAll resets
// the whole table regardless of tag.
func (l LUT) Clear(class uint8) {
	for i := range l {
		if class == ClassAll || l[i] == class {
			l[i] = 0
		}
	}
}

// Lookup returns the class tag for a chrominance pair.
func (l LUT) Lookup(u, v int8) uint8 {
	return l[lutIndex(u, v)]
}
