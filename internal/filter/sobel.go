package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/pixel-ops-mcp/internal/pixel"
)

// Errors reported by Sobel edge detection.
var (
	// ErrNoDirections indicates Sobel was called with an empty direction set.
	ErrNoDirections = errors.New("empty direction set")

	// ErrInvalidDirection indicates a direction outside the enumeration.
	ErrInvalidDirection = errors.New("invalid sobel direction")
)

// Direction selects one of the four fixed Sobel gradient kernels.
type Direction int

// The supported gradient directions, in degrees.
const (
	Dir0 Direction = iota
	Dir45
	Dir90
	Dir135
)

// DefaultDirections is the direction set used when a caller does not
// specify one: horizontal and vertical gradients, the conventional
// two-direction gradient magnitude.
var DefaultDirections = []Direction{Dir0, Dir90}

// sobelKernels holds the fixed 3x3 gradient kernel for each direction, in
// correlation orientation.
var sobelKernels = [...]Kernel{
	Dir0: mustKernel(3, []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}),
	Dir45: mustKernel(3, []float64{
		0, 1, 2,
		-1, 0, 1,
		-2, -1, 0,
	}),
	Dir90: mustKernel(3, []float64{
		1, 2, 1,
		0, 0, 0,
		-1, -2, -1,
	}),
	Dir135: mustKernel(3, []float64{
		2, 1, 0,
		1, 0, -1,
		0, -1, -2,
	}),
}

// ParseDirection maps a direction name from the tool surface ("0", "45",
// "90", "135") to its enumerated value.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "0":
		return Dir0, nil
	case "45":
		return Dir45, nil
	case "90":
		return Dir90, nil
	case "135":
		return Dir135, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
	}
}

// String returns the direction's angle in degrees.
func (d Direction) String() string {
	switch d {
	case Dir0:
		return "0"
	case Dir45:
		return "45"
	case Dir90:
		return "90"
	case Dir135:
		return "135"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Sobel runs edge detection on a single-channel buffer.
//
// Each requested direction's kernel is correlated over the input (zero
// padding, no flip), and the responses are combined per pixel into the
// Euclidean gradient magnitude sqrt(Σ r²), clamped to [0, 255] and
// narrowed to 8 bits.
//
// Returns ErrNoDirections for an empty direction set, ErrInvalidDirection
// for a direction outside the enumeration, and pixel.ErrInvalidShape unless
// the input is a valid 1-channel buffer. Callers that want the conventional
// two-direction magnitude pass DefaultDirections.
func Sobel(src *pixel.Buffer, directions []Direction) (*pixel.Buffer, error) {
	if len(directions) == 0 {
		return nil, fmt.Errorf("sobel: %w", ErrNoDirections)
	}
	for _, d := range directions {
		if d < Dir0 || d > Dir135 {
			return nil, fmt.Errorf("sobel: %w: %d", ErrInvalidDirection, int(d))
		}
	}

	responses := make([][]float64, 0, len(directions))
	for _, d := range directions {
		resp, err := Correlate(src, sobelKernels[d])
		if err != nil {
			return nil, fmt.Errorf("sobel %s°: %w", d, err)
		}
		responses = append(responses, resp)
	}

	out := &pixel.Buffer{W: src.W, H: src.H, C: 1, Pix: make([]uint8, src.W*src.H)}
	for i := range out.Pix {
		var sum float64
		for _, resp := range responses {
			sum += resp[i] * resp[i]
		}
		out.Pix[i] = pixel.ClampUint8(math.Sqrt(sum))
	}
	return out, nil
}
