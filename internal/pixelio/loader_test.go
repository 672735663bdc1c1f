package pixelio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/pixel-ops-mcp/internal/pixel"
)

// writeTestPNG saves a small RGB buffer to a temp file and returns its path.
func writeTestPNG(t *testing.T, b *pixel.Buffer) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.png")
	if err := Save(path, b); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func rgbFixture(t *testing.T) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(4, 3, 3)
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}
	for i := range b.Pix {
		b.Pix[i] = uint8(i * 7)
	}
	return b
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	want := rgbFixture(t)
	path := writeTestPNG(t, want)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// PNG is lossless, so the buffer must survive bit for bit.
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoad_GrayExpandsToRGB(t *testing.T) {
	gray, err := pixel.New(3, 2, 1)
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}
	copy(gray.Pix, []uint8{0, 50, 100, 150, 200, 250})

	path := writeTestPNG(t, gray)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Loading always flattens to RGB; a grayscale source replicates its
	// intensity into all three channels.
	if got.C != 3 {
		t.Fatalf("channels: got %d, want 3", got.C)
	}
	for i, v := range gray.Pix {
		o := i * 3
		if got.Pix[o] != v || got.Pix[o+1] != v || got.Pix[o+2] != v {
			t.Errorf("pixel %d: got (%d,%d,%d), want (%d,%d,%d)",
				i, got.Pix[o], got.Pix[o+1], got.Pix[o+2], v, v, v)
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.png")

	if _, err := Load(path); !errors.Is(err, ErrNotFound) {
		t.Errorf("got err %v, want ErrNotFound", err)
	}
}

func TestLoad_DecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrDecode) {
		t.Errorf("got err %v, want ErrDecode", err)
	}
}

func TestSave_InvalidShape(t *testing.T) {
	bad := &pixel.Buffer{W: 2, H: 2, C: 2, Pix: make([]uint8, 8)}
	path := filepath.Join(t.TempDir(), "bad.png")

	if err := Save(path, bad); !errors.Is(err, pixel.ErrInvalidShape) {
		t.Errorf("got err %v, want ErrInvalidShape", err)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	b := rgbFixture(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.png")

	if err := Save(path, b); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestCache_ReusesBuffer(t *testing.T) {
	path := writeTestPNG(t, rgbFixture(t))
	cache := NewCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if first != second {
		t.Error("cache returned a different buffer for the same path")
	}

	cache.Evict(path)
	third, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if third == first {
		t.Error("Evict did not drop the cached buffer")
	}
}

func TestCache_Clear(t *testing.T) {
	path := writeTestPNG(t, rgbFixture(t))
	cache := NewCache()

	first, _ := cache.Load(path)
	cache.Clear()
	second, _ := cache.Load(path)
	if first == second {
		t.Error("Clear did not drop the cached buffer")
	}
}

func TestLoadInfo(t *testing.T) {
	path := writeTestPNG(t, rgbFixture(t))

	info, err := LoadInfo(NewCache(), path)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}

	if info.Width != 4 || info.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", info.Width, info.Height)
	}
	if info.Channels != 3 {
		t.Errorf("channels: got %d, want 3", info.Channels)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}
