// Package chroma defines the 2-D chrominance space shared by the sampling,
// segmentation, and lookup-table packages.
//
// A chrominance pair (u, v) is derived from a 2x2 Bayer-mosaic block:
// u from the red and first green component, v from the blue and second green
// component, each recentered at zero and compressed into a signed 8-bit range.
// The space is independent of overall brightness, which is what makes linear
// boundaries in it useful for color classification.
//
// The package is a pure-value leaf: points, samples, lines, and a handful of
// small geometric helpers. It has no side effects and no dependencies on the
// frame or model layers.
package chroma
