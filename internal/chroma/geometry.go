package chroma

import "math"

// Sample is a single chrominance measurement taken from one 2x2 mosaic block.
//
// Both components are signed and fit an 8-bit range: for 8-bit sensor data the
// recentered sums land in [-63, 64] after compression.
type Sample struct {
	U int8 `json:"u"`
	V int8 `json:"v"`
}

// Point is a position or direction in chrominance space with float precision.
//
// It is used for derived quantities (sample means, unit vectors) rather than
// raw measurements, which stay in Sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Line is a boundary in chrominance space in slope/intercept form:
// v = Slope*u + Intercept.
//
// A vertical boundary would need an infinite slope; the model builder avoids
// that case by clamping near-zero sample means before any slope is derived.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At returns the line's v value at the given u.
func (l Line) At(u float64) float64 {
	return l.Slope*u + l.Intercept
}

// Sign returns -1 for negative values and +1 otherwise. Zero maps to +1 so
// that directional decisions degrade to a consistent default.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
