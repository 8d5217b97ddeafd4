package bayer

import (
	"fmt"
	"os"
	"sync"

	"github.com/disintegration/imaging"
)

// FrameCache provides thread-safe caching of frames converted from image
// files, keyed by path, so repeated tool calls avoid redundant decode and
// mosaic work.
//
// Cached frames remain in memory until removed via Evict or Clear. The same
// file loaded through different path spellings produces separate entries.
type FrameCache struct {
	mu     sync.RWMutex
	opt    ConvertOptions
	frames map[string]*Frame
}

// NewFrameCache creates an empty cache. All frames loaded through it are
// converted with the given options.
func NewFrameCache(opt ConvertOptions) *FrameCache {
	return &FrameCache{
		opt:    opt,
		frames: make(map[string]*Frame),
	}
}

// Load returns the cached frame for path, decoding and converting the file on
// first use. Supported formats are those of the imaging package (PNG, JPEG,
// GIF, TIFF, BMP).
func (c *FrameCache) Load(path string) (*Frame, error) {
	c.mu.RLock()
	if f, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	frame := FromImage(img, c.opt)

	c.mu.Lock()
	c.frames[path] = frame
	c.mu.Unlock()

	return frame, nil
}

// Evict removes a single cache entry. Unknown paths are ignored.
func (c *FrameCache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// Clear drops every cached frame.
func (c *FrameCache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]*Frame)
	c.mu.Unlock()
}

// FrameInfo describes a loaded frame.
type FrameInfo struct {
	// Width and Height are the mosaic dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Blocks is the number of 2x2 mosaic blocks, the upper bound on
	// chrominance samples a full-frame region can produce.
	Blocks int `json:"blocks"`

	// FileSizeBytes is the size of the source file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadFrameInfo loads a frame through the cache and reports its metadata.
func LoadFrameInfo(cache *FrameCache, path string) (*FrameInfo, error) {
	frame, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &FrameInfo{
		Width:         frame.Width,
		Height:        frame.Height,
		Blocks:        (frame.Width / 2) * (frame.Height / 2),
		FileSizeBytes: stat.Size(),
	}, nil
}
