// Package membuf provides the degrading sample-buffer allocator used by the
// model builder and region grower.
//
// On the embedded targets this design comes from, sample buffers compete with
// everything else for a small heap with no virtual memory. A partial buffer is
// strictly better than an outright failure because sampling accuracy degrades
// gracefully with fewer samples, so the allocator walks the request downward
// until something fits rather than giving up at the first refusal.
package membuf

import "github.com/chromatag/chroma-tools-mcp/internal/chroma"

// Decrement is how many samples are shaved off the request on each failed
// allocation attempt.
const Decrement = 256

// Grab attempts a single allocation of exactly n samples, returning nil if
// that size is not available. It exists so tests (and constrained runtimes)
// can inject scarcity; the default grab never fails.
type Grab func(n int) []chroma.Sample

// Allocator acquires sample buffers with a degrading size policy.
//
// The zero value is not usable; construct with New.
type Allocator struct {
	grab Grab
}

// New returns an Allocator backed by the given grab policy. Passing nil
// selects the default policy, a plain make that always succeeds.
func New(grab Grab) *Allocator {
	if grab == nil {
		grab = func(n int) []chroma.Sample {
			return make([]chroma.Sample, n)
		}
	}
	return &Allocator{grab: grab}
}

// Acquire obtains the largest available buffer no larger than n samples.
//
// It tries n first and, on failure, reduces the request by Decrement and
// retries until an allocation succeeds or the size reaches zero. The returned
// count is the achieved size, never more than requested. When no size down to
// zero can be satisfied the result is nil and zero.
func (a *Allocator) Acquire(n int) ([]chroma.Sample, int) {
	for size := n; ; size -= Decrement {
		if size < 0 {
			size = 0
		}
		if buf := a.grab(size); buf != nil {
			return buf, size
		}
		if size == 0 {
			return nil, 0
		}
	}
}
