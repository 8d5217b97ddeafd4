// Package bayer provides raw Bayer-mosaic frame handling for the
// color-segmentation core.
//
// A Frame is a single-channel, row-major byte buffer straight off a sensor:
// each 2x2 block of the mosaic carries one red, two green, and one blue
// sample. The layout assumed throughout the package puts red at odd (x, y)
// coordinates:
//
//	even row:  B G B G ...
//	odd row :  G R G R ...
//
// # Chrominance sampling
//
// SampleChroma walks a rectangular region in 2x2 steps and reduces each block
// to a signed chrominance pair:
//
//	u = (R + G1 - 127) >> 1
//	v = (B + G2 - 127) >> 1
//
// Region offsets are forced to the nearest odd coordinate first so the four
// component reads land on the same mosaic phase everywhere, and so a sampled
// position always has one valid row above and one valid column to its left.
//
// # Frame ingestion
//
// Sensors deliver frames directly, but for offline work FromImage converts an
// ordinary decoded image into an equivalent mosaic, with optional downscaling
// and Gaussian pre-blur. FrameCache mirrors that for files on disk, caching
// converted frames by path so repeated tool calls avoid redundant decode work.
package bayer
