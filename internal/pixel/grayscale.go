package pixel

import "fmt"

// GrayscaleMethod selects how the three color channels are combined into a
// single intensity value.
type GrayscaleMethod int

// The supported grayscale conversion methods.
const (
	// GrayLuminosity is the ITU-R BT.601 weighted sum
	// 0.299*R + 0.587*G + 0.114*B.
	GrayLuminosity GrayscaleMethod = iota

	// GrayMean is the plain channel average (R+G+B)/3.
	GrayMean

	// GrayRed, GrayGreen, and GrayBlue select a single channel directly.
	GrayRed
	GrayGreen
	GrayBlue
)

// ParseGrayscaleMethod maps a method name from the tool surface to its
// enumerated value. Recognized names are "luminosity", "mean", "RED",
// "GREEN", and "BLUE". Unknown names return ErrInvalidMethod.
func ParseGrayscaleMethod(name string) (GrayscaleMethod, error) {
	switch name {
	case "luminosity":
		return GrayLuminosity, nil
	case "mean":
		return GrayMean, nil
	case "RED":
		return GrayRed, nil
	case "GREEN":
		return GrayGreen, nil
	case "BLUE":
		return GrayBlue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, name)
	}
}

// String returns the tool-surface name of the method.
func (m GrayscaleMethod) String() string {
	switch m {
	case GrayLuminosity:
		return "luminosity"
	case GrayMean:
		return "mean"
	case GrayRed:
		return "RED"
	case GrayGreen:
		return "GREEN"
	case GrayBlue:
		return "BLUE"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Grayscale converts an RGB buffer to a grayscale-valued buffer that is
// still 3-channel: the per-pixel intensity is replicated into R, G, and B.
//
// The intensity is computed in float64 (so the mean of three 8-bit samples
// cannot wrap) and narrowed through ClampUint8. Returns ErrInvalidShape if
// the input is not 3-channel and ErrInvalidMethod for a method outside the
// enumeration. The input buffer is never modified.
func Grayscale(b *Buffer, method GrayscaleMethod) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("grayscale: %w", err)
	}
	if b.C != 3 {
		return nil, fmt.Errorf("grayscale: %w: want 3 channels, got %d", ErrInvalidShape, b.C)
	}

	var intensity func(r, g, bl float64) float64
	switch method {
	case GrayLuminosity:
		intensity = func(r, g, bl float64) float64 { return 0.299*r + 0.587*g + 0.114*bl }
	case GrayMean:
		intensity = func(r, g, bl float64) float64 { return (r + g + bl) / 3.0 }
	case GrayRed:
		intensity = func(r, _, _ float64) float64 { return r }
	case GrayGreen:
		intensity = func(_, g, _ float64) float64 { return g }
	case GrayBlue:
		intensity = func(_, _, bl float64) float64 { return bl }
	default:
		return nil, fmt.Errorf("grayscale: %w: %d", ErrInvalidMethod, int(method))
	}

	out := &Buffer{W: b.W, H: b.H, C: 3, Pix: make([]uint8, len(b.Pix))}
	for i := 0; i < b.W*b.H; i++ {
		o := i * 3
		gray := ClampUint8(intensity(
			float64(b.Pix[o+0]),
			float64(b.Pix[o+1]),
			float64(b.Pix[o+2]),
		))
		out.Pix[o+0] = gray
		out.Pix[o+1] = gray
		out.Pix[o+2] = gray
	}
	return out, nil
}
