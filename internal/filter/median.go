package filter

import (
	"fmt"
	"sort"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/pixel-ops-mcp/internal/pixel"
)

// Median replaces each sample of a single-channel buffer with the median of
// its ksize x ksize neighborhood, using the same zero-padding border policy
// as Correlate.
//
// The median is the order statistic at index (n-1)/2 of the sorted window,
// n = ksize². For an even-count window this is the lower of the two middle
// values. Every output sample comes from the window unchanged, so there is
// no averaging and no separate clamp step.
//
// Returns pixel.ErrInvalidShape unless the input is a valid 1-channel
// buffer, and ErrInvalidKernel for ksize < 1.
func Median(src *pixel.Buffer, ksize int) (*pixel.Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("median filter: %w", err)
	}
	if src.C != 1 {
		return nil, fmt.Errorf("median filter: %w: want 1 channel, got %d", pixel.ErrInvalidShape, src.C)
	}
	if ksize < 1 {
		return nil, fmt.Errorf("median filter: %w: ksize %d must be >= 1", ErrInvalidKernel, ksize)
	}

	pad := ksize / 2
	padded, pw := padPlane(src, pad)
	out := &pixel.Buffer{W: src.W, H: src.H, C: 1, Pix: make([]uint8, src.W*src.H)}
	mid := (ksize*ksize - 1) / 2

	parallel.Line(src.H, func(start, end int) {
		window := make([]float64, ksize*ksize)
		for y := start; y < end; y++ {
			for x := 0; x < src.W; x++ {
				i := 0
				for dy := 0; dy < ksize; dy++ {
					row := (y+dy)*pw + x
					for dx := 0; dx < ksize; dx++ {
						window[i] = padded[row+dx]
						i++
					}
				}
				sort.Float64s(window)
				// Padded values are exact small integers, so the cast is lossless.
				out.Pix[y*src.W+x] = uint8(window[mid])
			}
		}
	})

	return out, nil
}
