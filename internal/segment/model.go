package segment

import "github.com/chromatag/chroma-tools-mcp/internal/chroma"

// Model is a four-line color model in chrominance space.
//
// Hue[0] is the upper hue boundary and Hue[1] the lower; both share the hue
// axis slope. Sat[0] and Sat[1] share the perpendicular slope, and after
// construction Sat[0]'s intercept is numerically >= Sat[1]'s. The ordering is
// an arbitrary convention, but Contains depends on it, so Train swaps the
// pair when a build comes out the other way around.
type Model struct {
	Hue [2]chroma.Line `json:"hue"`
	Sat [2]chroma.Line `json:"sat"`
}

// Contains reports whether the chrominance pair lies on the accepting side of
// all four boundaries. Pure and O(1).
func (m *Model) Contains(s chroma.Sample) bool {
	u := float64(s.U)
	v := float64(s.V)

	if m.Hue[0].At(u) < v {
		return false
	}
	if m.Hue[1].At(u) > v {
		return false
	}
	if m.Sat[0].At(u) < v {
		return false
	}
	if m.Sat[1].At(u) > v {
		return false
	}
	return true
}
