package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/pixel-ops-mcp/internal/pixel"
)

// ErrInvalidKernel indicates kernel parameters outside the supported range:
// an even or non-positive size, a weight slice of the wrong length, or a
// non-positive Gaussian sigma.
var ErrInvalidKernel = errors.New("invalid kernel")

// Kernel is a small square matrix of correlation weights.
//
// The size is odd and at least 1; the center tap sits at index size/2 in
// both dimensions. Weights are stored row-major.
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel builds a kernel from row-major weights.
//
// Returns ErrInvalidKernel unless size is odd, at least 1, and
// len(weights) == size*size. The weight slice is copied.
func NewKernel(size int, weights []float64) (Kernel, error) {
	if size < 1 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: size %d must be odd and >= 1", ErrInvalidKernel, size)
	}
	if len(weights) != size*size {
		return Kernel{}, fmt.Errorf("%w: %d weights for size %d, want %d",
			ErrInvalidKernel, len(weights), size, size*size)
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return Kernel{size: size, weights: w}, nil
}

// mustKernel wraps NewKernel for the package's fixed literal kernels.
func mustKernel(size int, weights []float64) Kernel {
	k, err := NewKernel(size, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Size returns the kernel's side length.
func (k Kernel) Size() int { return k.size }

// At returns the weight at row dy, column dx (0-based from the top-left tap).
func (k Kernel) At(dy, dx int) float64 { return k.weights[dy*k.size+dx] }

// MeanKernel returns a uniform box kernel whose weights sum to 1.
func MeanKernel(size int) (Kernel, error) {
	if size < 1 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: size %d must be odd and >= 1", ErrInvalidKernel, size)
	}
	w := make([]float64, size*size)
	v := 1.0 / float64(size*size)
	for i := range w {
		w[i] = v
	}
	return Kernel{size: size, weights: w}, nil
}

// SharpenKernel returns the standard 3x3 sharpening kernel.
func SharpenKernel() Kernel {
	return mustKernel(3, []float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	})
}

// GaussianKernel samples a 2D Gaussian with the given standard deviation on
// a size x size grid centered at the middle tap, normalized so the weights
// sum to 1.
//
// Normalization cannot divide by zero: every sampled weight is strictly
// positive, so the sum is as well. Returns ErrInvalidKernel for an even or
// non-positive size, or sigma <= 0.
func GaussianKernel(sigma float64, size int) (Kernel, error) {
	if size < 1 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: size %d must be odd and >= 1", ErrInvalidKernel, size)
	}
	if sigma <= 0 {
		return Kernel{}, fmt.Errorf("%w: sigma %v must be > 0", ErrInvalidKernel, sigma)
	}

	center := size / 2
	w := make([]float64, size*size)
	sum := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dy := float64(y - center)
			dx := float64(x - center)
			g := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			w[y*size+x] = g
			sum += g
		}
	}
	for i := range w {
		w[i] /= sum
	}
	return Kernel{size: size, weights: w}, nil
}

// padPlane copies a single-channel buffer into a float64 plane extended by
// pad zero-valued samples on every side, returning the padded plane and its
// width (w + 2*pad).
func padPlane(src *pixel.Buffer, pad int) ([]float64, int) {
	pw := src.W + 2*pad
	ph := src.H + 2*pad
	out := make([]float64, pw*ph)
	for y := 0; y < src.H; y++ {
		row := (y + pad) * pw
		for x := 0; x < src.W; x++ {
			out[row+pad+x] = float64(src.Pix[y*src.W+x])
		}
	}
	return out, pw
}

// Correlate slides the kernel over a zero-padded copy of a single-channel
// buffer and returns the raw weighted sums as an unclamped float64 plane of
// the same dimensions as the input.
//
// The kernel is applied in its stored orientation (no flip). Output pixel
// (x, y) is the sum over the kernel footprint of padded[y+dy][x+dx] *
// kernel[dy][dx], with the padding offset folded in so the footprint is
// centered on (x, y). Narrowing to uint8 is the caller's responsibility;
// the derived filters in this package do it through pixel.ClampUint8.
//
// Rows are processed in parallel; cost is O(H*W*k²).
//
// Returns pixel.ErrInvalidShape unless the input is a valid 1-channel
// buffer.
func Correlate(src *pixel.Buffer, k Kernel) ([]float64, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("correlate: %w", err)
	}
	if src.C != 1 {
		return nil, fmt.Errorf("correlate: %w: want 1 channel, got %d", pixel.ErrInvalidShape, src.C)
	}

	pad := k.size / 2
	padded, pw := padPlane(src, pad)
	out := make([]float64, src.W*src.H)

	parallel.Line(src.H, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < src.W; x++ {
				var sum float64
				for dy := 0; dy < k.size; dy++ {
					row := (y+dy)*pw + x
					krow := dy * k.size
					for dx := 0; dx < k.size; dx++ {
						sum += padded[row+dx] * k.weights[krow+dx]
					}
				}
				out[y*src.W+x] = sum
			}
		}
	})

	return out, nil
}

// narrowPlane converts a raw correlation response into a single-channel
// buffer via the shared clamp-and-round step.
func narrowPlane(resp []float64, w, h int) *pixel.Buffer {
	out := &pixel.Buffer{W: w, H: h, C: 1, Pix: make([]uint8, w*h)}
	for i, v := range resp {
		out.Pix[i] = pixel.ClampUint8(v)
	}
	return out
}

// Mean applies a box filter of the given odd size to a single-channel
// buffer, clamping the averaged values back to 8 bits.
func Mean(src *pixel.Buffer, size int) (*pixel.Buffer, error) {
	k, err := MeanKernel(size)
	if err != nil {
		return nil, fmt.Errorf("mean filter: %w", err)
	}
	resp, err := Correlate(src, k)
	if err != nil {
		return nil, fmt.Errorf("mean filter: %w", err)
	}
	return narrowPlane(resp, src.W, src.H), nil
}

// Sharpen applies the fixed 3x3 sharpening kernel to a single-channel
// buffer, clamping the result back to 8 bits.
func Sharpen(src *pixel.Buffer) (*pixel.Buffer, error) {
	resp, err := Correlate(src, SharpenKernel())
	if err != nil {
		return nil, fmt.Errorf("sharpen filter: %w", err)
	}
	return narrowPlane(resp, src.W, src.H), nil
}

// Gaussian blurs a single-channel buffer with a normalized Gaussian kernel
// of the given sigma and odd size, clamping the result back to 8 bits.
func Gaussian(src *pixel.Buffer, sigma float64, size int) (*pixel.Buffer, error) {
	k, err := GaussianKernel(sigma, size)
	if err != nil {
		return nil, fmt.Errorf("gaussian filter: %w", err)
	}
	resp, err := Correlate(src, k)
	if err != nil {
		return nil, fmt.Errorf("gaussian filter: %w", err)
	}
	return narrowPlane(resp, src.W, src.H), nil
}
