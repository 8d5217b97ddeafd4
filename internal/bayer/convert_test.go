package bayer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
)

// solidImage creates an in-memory image filled with one color.
func solidImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFromImageRoundTrip(t *testing.T) {
	// A solid color image converted to a mosaic must sample back to the
	// chrominance pair predicted by the channel arithmetic.
	img := solidImage(32, 32, color.RGBA{R: 200, G: 50, B: 30, A: 255})
	f := FromImage(img, ConvertOptions{})

	if f.Width != 32 || f.Height != 32 {
		t.Fatalf("frame dimensions: got %dx%d, want 32x32", f.Width, f.Height)
	}

	buf := make([]chroma.Sample, 512)
	n := SampleChroma(f, Region{X: 0, Y: 0, Width: 32, Height: 32}, buf)
	if n == 0 {
		t.Fatal("no samples collected")
	}
	for i := 0; i < n; i++ {
		if buf[i].U != 61 || buf[i].V != -24 {
			t.Fatalf("sample %d: got (%d,%d), want (61,-24)", i, buf[i].U, buf[i].V)
		}
	}
}

func TestFromImageMaxWidth(t *testing.T) {
	img := solidImage(200, 100, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	f := FromImage(img, ConvertOptions{MaxWidth: 50})
	if f.Width != 50 {
		t.Errorf("width: got %d, want 50", f.Width)
	}
	if f.Height != 25 {
		t.Errorf("height: got %d, want 25 (aspect preserved)", f.Height)
	}
}

func TestFromImageBlurKeepsUniform(t *testing.T) {
	img := solidImage(16, 16, color.RGBA{R: 90, G: 90, B: 90, A: 255})
	f := FromImage(img, ConvertOptions{BlurSigma: 1.5})

	// Blurring a solid color must not change it.
	for i, p := range f.Pixels {
		if p != 90 {
			t.Fatalf("pixel %d: got %d, want 90", i, p)
		}
	}
}

func TestFrameCacheLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solid.png")
	writePNG(t, path, solidImage(24, 24, color.RGBA{R: 10, G: 20, B: 30, A: 255}))

	cache := NewFrameCache(ConvertOptions{})
	f1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	f2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if f1 != f2 {
		t.Error("second Load should return the cached frame")
	}

	cache.Evict(path)
	f3, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if f3 == f1 {
		t.Error("Load after Evict should reconvert the file")
	}
}

func TestFrameCacheLoadMissing(t *testing.T) {
	cache := NewFrameCache(ConvertOptions{})
	if _, err := cache.Load("/nonexistent/frame.png"); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestLoadFrameInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "info.png")
	writePNG(t, path, solidImage(40, 30, color.RGBA{A: 255}))

	info, err := LoadFrameInfo(NewFrameCache(ConvertOptions{}), path)
	if err != nil {
		t.Fatalf("LoadFrameInfo failed: %v", err)
	}
	if info.Width != 40 || info.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", info.Width, info.Height)
	}
	if info.Blocks != 20*15 {
		t.Errorf("blocks: got %d, want %d", info.Blocks, 20*15)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("file size should be positive")
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}
