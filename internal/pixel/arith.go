package pixel

import (
	"fmt"
	"math"
)

// Op identifies a point-wise arithmetic operation.
type Op int

// The supported point-wise operations.
const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpGamma
)

// String returns the operation name as used by the tool surface.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpGamma:
		return "gamma"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Apply performs a point-wise operation with a constant operand on every
// sample of the image, returning a new buffer of identical shape.
//
// Each sample is widened to float64, combined with value, and narrowed
// through ClampUint8 (clamp to [0, 255], round half away from zero). The
// wide intermediate guarantees that true results such as 200+100 or 16*20
// are never wrapped before the final saturation.
//
// Semantics per operation:
//   - OpAdd, OpSubtract, OpMultiply: plain arithmetic on the widened sample.
//   - OpDivide: floor division, matching integer // semantics. A zero value
//     returns ErrDivisionByZero before any computation.
//   - OpGamma: (sample/255)^value * 255, computed in floating point.
//
// Gamma edge policy: for a zero sample with value < 0 the power is +Inf
// and saturates to 255; with value == 0 the power is 1 and the result is
// likewise 255. Both follow from IEEE-754 math.Pow plus the shared clamp.
//
// Returns ErrInvalidOp for an operation outside the enumeration.
func Apply(b *Buffer, op Op, value float64) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var fn func(float64) float64
	switch op {
	case OpAdd:
		fn = func(v float64) float64 { return v + value }
	case OpSubtract:
		fn = func(v float64) float64 { return v - value }
	case OpMultiply:
		fn = func(v float64) float64 { return v * value }
	case OpDivide:
		if value == 0 {
			return nil, fmt.Errorf("divide: %w", ErrDivisionByZero)
		}
		fn = func(v float64) float64 { return math.Floor(v / value) }
	case OpGamma:
		fn = func(v float64) float64 { return math.Pow(v/255.0, value) * 255.0 }
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidOp, int(op))
	}

	out := &Buffer{W: b.W, H: b.H, C: b.C, Pix: make([]uint8, len(b.Pix))}
	for i, v := range b.Pix {
		out.Pix[i] = ClampUint8(fn(float64(v)))
	}
	return out, nil
}

// Add adds a constant to every sample.
func Add(b *Buffer, value float64) (*Buffer, error) {
	return Apply(b, OpAdd, value)
}

// Subtract subtracts a constant from every sample.
func Subtract(b *Buffer, value float64) (*Buffer, error) {
	return Apply(b, OpSubtract, value)
}

// Multiply scales every sample by a constant factor.
func Multiply(b *Buffer, value float64) (*Buffer, error) {
	return Apply(b, OpMultiply, value)
}

// Divide floor-divides every sample by a constant divisor.
func Divide(b *Buffer, value float64) (*Buffer, error) {
	return Apply(b, OpDivide, value)
}

// Gamma applies gamma correction with the given exponent.
func Gamma(b *Buffer, value float64) (*Buffer, error) {
	return Apply(b, OpGamma, value)
}
