// Package segment builds and applies color-segmentation models in 2-D
// chrominance space.
//
// A model is four lines: two hue boundaries bracketing the angular extent of
// a sampled color cluster, and two saturation boundaries bracketing its radial
// extent. Together they enclose a convex, quadrilateral-like acceptance region
// in (u, v) space. A 65536-entry lookup table maps every representable
// chrominance pair to a small class tag so that per-pixel classification is a
// single indexed read.
//
// # Model fitting
//
// Train samples a rectangular frame region into chrominance pairs, computes
// the mean vector, and treats its angle as the principal hue axis. The hue
// boundaries are found by shifting a line of that slope through the origin
// outward in both directions until only the configured outlier fraction of
// samples remains excluded; the saturation boundaries do the same with the
// perpendicular line through the mean. Each boundary is then extended by its
// tolerance, the inner saturation boundary is floored at the minimum
// saturation, and the saturation pair is swapped if needed so the intercept
// ordering convention holds. A goodness score in [0, 100] reports how far the
// mean saturation clears the minimum-saturation floor.
//
// The outlier search terminates because the excluded fraction is monotonically
// non-increasing as the boundary moves outward, which holds for the convex,
// roughly unimodal clouds real color patches produce. Non-convex
// distributions are outside the search's contract; a defensive iteration cap
// stops runaways and reports them through Diagnostics without failing the
// build.
//
// # Region growing
//
// Grow expands a small seed rectangle in all four directions, one fixed-width
// strip at a time, as long as each candidate strip's mean chrominance stays
// within a fixed Euclidean distance of the seed's. The accepted rectangle is
// finally shrunk about its center to compensate for the fixed increment's
// overshoot.
//
// # Resource model
//
// Every Train and Grow call acquires its own sample buffer through the
// degrading allocator and abandons it before returning; no state is shared
// across calls. The Model and LUT values handed to the caller are theirs to
// own, and concurrent mutation of a shared LUT is the caller's problem to
// serialize. Populate and Clear scan all 65536 entries, so schedule them off
// any latency-sensitive classification path.
package segment
