package filter

import (
	"fmt"
	"sync"

	"github.com/ironsheep/pixel-ops-mcp/internal/pixel"
)

// PlaneFunc transforms a single-channel buffer into a new single-channel
// buffer of the same dimensions. All filters in this package fit this shape
// once their parameters are bound.
type PlaneFunc func(*pixel.Buffer) (*pixel.Buffer, error)

// EachChannel applies a single-channel filter independently to every
// channel of an image, assembling the results into a freshly allocated
// buffer of identical shape.
//
// Channels are processed concurrently; each goroutine reads its own
// extracted plane and writes to its own channel of the output, so no
// synchronization beyond the final join is needed. If the filter fails on
// any channel, the first error (by channel order) is returned.
//
// The filter must preserve plane dimensions; a mismatched result is
// reported as pixel.ErrInvalidShape.
func EachChannel(src *pixel.Buffer, fn PlaneFunc) (*pixel.Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("each channel: %w", err)
	}

	out := &pixel.Buffer{W: src.W, H: src.H, C: src.C, Pix: make([]uint8, len(src.Pix))}
	errs := make([]error, src.C)

	var wg sync.WaitGroup
	for c := 0; c < src.C; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			plane, err := fn(src.Plane(c))
			if err != nil {
				errs[c] = fmt.Errorf("channel %d: %w", c, err)
				return
			}
			if err := out.SetPlane(c, plane); err != nil {
				errs[c] = fmt.Errorf("channel %d: %w", c, err)
			}
		}(c)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
