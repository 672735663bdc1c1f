package pixel

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Error values reported by buffer validation and the point-wise operations.
// They are wrapped with context via fmt.Errorf("...: %w", err), so callers
// should test them with errors.Is.
var (
	// ErrInvalidShape indicates a buffer whose dimensions or channel count
	// do not fit the requested operation.
	ErrInvalidShape = errors.New("invalid image shape")

	// ErrDivisionByZero indicates a divide operation with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidMethod indicates an unrecognized grayscale method.
	ErrInvalidMethod = errors.New("invalid grayscale method")

	// ErrInvalidOp indicates an unrecognized point-wise operation.
	ErrInvalidOp = errors.New("invalid point-wise operation")
)

// Buffer is a dense, row-major 8-bit image.
//
// Samples are stored interleaved: the sample for pixel (x, y) channel c is
// Pix[(y*W+x)*C+c]. Valid buffers satisfy H >= 1, W >= 1, C of 1 or 3, and
// len(Pix) == H*W*C. Use New to construct a validated buffer.
type Buffer struct {
	// W is the image width in pixels.
	W int

	// H is the image height in pixels.
	H int

	// C is the number of channels: 1 (grayscale) or 3 (RGB).
	C int

	// Pix holds the samples in row-major interleaved order.
	Pix []uint8
}

// New allocates a zero-filled buffer of the given shape.
//
// Returns ErrInvalidShape unless w >= 1, h >= 1, and c is 1 or 3.
func New(w, h, c int) (*Buffer, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be at least 1x1", ErrInvalidShape, w, h)
	}
	if c != 1 && c != 3 {
		return nil, fmt.Errorf("%w: channel count %d not in {1,3}", ErrInvalidShape, c)
	}
	return &Buffer{
		W:   w,
		H:   h,
		C:   c,
		Pix: make([]uint8, w*h*c),
	}, nil
}

// Validate checks the buffer invariants, returning ErrInvalidShape on any
// violation. Operations call this before touching sample data.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidShape)
	}
	if b.W < 1 || b.H < 1 {
		return fmt.Errorf("%w: dimensions %dx%d must be at least 1x1", ErrInvalidShape, b.W, b.H)
	}
	if b.C != 1 && b.C != 3 {
		return fmt.Errorf("%w: channel count %d not in {1,3}", ErrInvalidShape, b.C)
	}
	if len(b.Pix) != b.W*b.H*b.C {
		return fmt.Errorf("%w: sample array length %d, want %d", ErrInvalidShape, len(b.Pix), b.W*b.H*b.C)
	}
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{W: b.W, H: b.H, C: b.C, Pix: pix}
}

// At returns the sample for pixel (x, y) channel c. Coordinates must be in
// bounds; At does not validate.
func (b *Buffer) At(x, y, c int) uint8 {
	return b.Pix[(y*b.W+x)*b.C+c]
}

// Set stores a sample for pixel (x, y) channel c.
func (b *Buffer) Set(x, y, c int, v uint8) {
	b.Pix[(y*b.W+x)*b.C+c] = v
}

// Plane extracts channel c as a new single-channel buffer.
//
// The returned buffer shares no storage with the receiver. Plane panics if c
// is out of range for the buffer's channel count.
func (b *Buffer) Plane(c int) *Buffer {
	if c < 0 || c >= b.C {
		panic(fmt.Sprintf("pixel: plane %d out of range for %d-channel buffer", c, b.C))
	}
	out := &Buffer{W: b.W, H: b.H, C: 1, Pix: make([]uint8, b.W*b.H)}
	for i := 0; i < b.W*b.H; i++ {
		out.Pix[i] = b.Pix[i*b.C+c]
	}
	return out
}

// SetPlane copies a single-channel buffer into channel c of the receiver.
// The plane must match the receiver's dimensions.
func (b *Buffer) SetPlane(c int, plane *Buffer) error {
	if c < 0 || c >= b.C {
		return fmt.Errorf("%w: channel %d out of range for %d-channel buffer", ErrInvalidShape, c, b.C)
	}
	if plane.C != 1 || plane.W != b.W || plane.H != b.H {
		return fmt.Errorf("%w: plane %dx%dx%d does not match %dx%d target",
			ErrInvalidShape, plane.W, plane.H, plane.C, b.W, b.H)
	}
	for i := 0; i < b.W*b.H; i++ {
		b.Pix[i*b.C+c] = plane.Pix[i]
	}
	return nil
}

// FromNRGBA converts a decoded image to a 3-channel buffer, dropping alpha.
//
// The source is sampled through its Pix array directly, so the conversion is
// a straight copy without color model round trips.
func FromNRGBA(img *image.NRGBA) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := &Buffer{W: w, H: h, C: 3, Pix: make([]uint8, w*h*3)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)
			o := (y*w + x) * 3
			out.Pix[o+0] = img.Pix[i+0]
			out.Pix[o+1] = img.Pix[i+1]
			out.Pix[o+2] = img.Pix[i+2]
		}
	}
	return out
}

// ToImage converts the buffer to a standard library image for encoding.
//
// Single-channel buffers become *image.Gray; 3-channel buffers become fully
// opaque *image.NRGBA.
func (b *Buffer) ToImage() (image.Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, b.W, b.H)
	if b.C == 1 {
		out := image.NewGray(rect)
		for y := 0; y < b.H; y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+b.W], b.Pix[y*b.W:(y+1)*b.W])
		}
		return out, nil
	}
	out := image.NewNRGBA(rect)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := out.PixOffset(x, y)
			o := (y*b.W + x) * 3
			out.Pix[i+0] = b.Pix[o+0]
			out.Pix[i+1] = b.Pix[o+1]
			out.Pix[i+2] = b.Pix[o+2]
			out.Pix[i+3] = 255
		}
	}
	return out, nil
}

// ClampUint8 narrows a wide intermediate value to an 8-bit sample.
//
// The value is rounded half away from zero, then clamped to [0, 255]. This
// is the single narrowing step shared by every operation in this module;
// NaN maps to 0 and +Inf to 255, so saturating policies for degenerate
// inputs (such as gamma correction of a zero pixel with a negative
// exponent) fall out of the clamp rather than of per-operation special
// cases.
func ClampUint8(v float64) uint8 {
	r := math.Round(v)
	if !(r > 0) { // catches negatives and NaN
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
