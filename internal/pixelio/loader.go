package pixelio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-ops-mcp/internal/pixel"
)

// Errors reported by the loader. Failures are wrapped with the offending
// path; test with errors.Is.
var (
	// ErrNotFound indicates the source file does not exist.
	ErrNotFound = errors.New("image not found")

	// ErrDecode indicates the file exists but is not a decodable image.
	ErrDecode = errors.New("image decode failed")
)

// Load reads an image file and returns it as a 3-channel RGB buffer.
//
// Any decodable source (grayscale, palette, YCbCr, RGBA) is flattened to
// RGB; alpha is dropped. Returns ErrNotFound if the path does not exist and
// ErrDecode if the data cannot be decoded as PNG, JPEG, or GIF.
func Load(path string) (*pixel.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	// Clone normalizes every color model to NRGBA in one pass.
	return pixel.FromNRGBA(imaging.Clone(img)), nil
}

// Save writes a buffer to disk, choosing the encoder from the file
// extension (.png, .jpg, .jpeg, .gif, .tif, .tiff, .bmp).
//
// Only 1-channel (written as grayscale) and 3-channel (written as opaque
// RGB) buffers are accepted; anything else returns pixel.ErrInvalidShape.
// The destination directory is created if missing.
func Save(path string, b *pixel.Buffer) error {
	img, err := b.ToImage()
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Cache provides thread-safe caching of loaded buffers to avoid redundant
// disk reads.
//
// Buffers are keyed by the exact path string passed to Load; relative and
// absolute paths to the same file are distinct entries. Cached buffers are
// shared, so callers must treat them as read-only — every transform in this
// module already does.
type Cache struct {
	mu   sync.RWMutex
	bufs map[string]*pixel.Buffer
}

// NewCache creates an empty cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{
		bufs: make(map[string]*pixel.Buffer),
	}
}

// Load retrieves a buffer from the cache, reading and decoding the file on
// a miss.
func (c *Cache) Load(path string) (*pixel.Buffer, error) {
	c.mu.RLock()
	if b, ok := c.bufs[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	b, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.bufs[path] = b
	c.mu.Unlock()

	return b, nil
}

// Evict removes a single path from the cache. Unknown paths are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.bufs, path)
	c.mu.Unlock()
}

// Clear removes all cached buffers.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.bufs = make(map[string]*pixel.Buffer)
	c.mu.Unlock()
}

// Info contains metadata about an image file as seen by the tool surface.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Channels is always 3 for loaded images (sources are flattened to RGB).
	Channels int `json:"channels"`

	// Format is the detected image format, by file extension: "png",
	// "jpeg", "gif", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo loads an image through the cache and reports its metadata.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	b, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	return &Info{
		Width:         b.W,
		Height:        b.H,
		Channels:      b.C,
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
