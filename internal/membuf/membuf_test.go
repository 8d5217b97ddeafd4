package membuf

import (
	"testing"

	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
)

// grabWithCeiling simulates a heap that can satisfy allocations only up to
// the given number of samples.
func grabWithCeiling(ceiling int) Grab {
	return func(n int) []chroma.Sample {
		if n > ceiling {
			return nil
		}
		return make([]chroma.Sample, n)
	}
}

func TestAcquireFullSize(t *testing.T) {
	a := New(nil)
	buf, size := a.Acquire(1024)
	if size != 1024 {
		t.Errorf("size: got %d, want 1024", size)
	}
	if len(buf) != 1024 {
		t.Errorf("len(buf): got %d, want 1024", len(buf))
	}
}

func TestAcquireDegrades(t *testing.T) {
	tests := []struct {
		name     string
		request  int
		ceiling  int
		wantSize int
	}{
		{"one step down", 1024, 1000, 1024 - Decrement},
		{"several steps down", 4096, 600, 512},
		{"lands exactly on ceiling", 512, 256, 256},
		{"only empty buffer fits", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(grabWithCeiling(tt.ceiling))
			buf, size := a.Acquire(tt.request)
			if size != tt.wantSize {
				t.Errorf("size: got %d, want %d", size, tt.wantSize)
			}
			if buf == nil {
				t.Fatal("expected non-nil buffer")
			}
			if size > tt.request {
				t.Errorf("achieved size %d exceeds request %d", size, tt.request)
			}
		})
	}
}

func TestAcquireNothingAvailable(t *testing.T) {
	a := New(func(n int) []chroma.Sample { return nil })
	buf, size := a.Acquire(1024)
	if buf != nil || size != 0 {
		t.Errorf("got (%v, %d), want (nil, 0)", buf, size)
	}
}

func TestAcquireNeverExceedsRequest(t *testing.T) {
	a := New(nil)
	for _, n := range []int{0, 1, 255, 256, 257, 5000} {
		_, size := a.Acquire(n)
		if size > n {
			t.Errorf("Acquire(%d) reported size %d", n, size)
		}
	}
}
