// Package pixel provides the in-memory image representation and point-wise
// transforms used by the pixel-ops tool server.
//
// The central type is Buffer, a dense row-major array of 8-bit samples with
// explicit height, width, and channel count. All transforms in this package
// (and in the filter package built on top of it) are pure functions: they
// validate their inputs eagerly, never mutate the input buffer, and return a
// freshly allocated output buffer of matching shape.
//
// # Saturation Contract
//
// Every operation computes intermediate results in float64 (wide enough to
// hold any true result for 8-bit inputs without wraparound) and narrows
// through a single shared step, ClampUint8, which clamps to [0, 255] and
// rounds half away from zero. Centralizing the clamp guarantees identical
// rounding behavior across arithmetic, grayscale conversion, and the
// convolution-based filters.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with origin at the top-left corner: X grows
// rightward, Y grows downward. Samples for a pixel's channels are stored
// contiguously (interleaved layout).
package pixel
