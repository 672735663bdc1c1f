// Package filter implements neighborhood operations over single-channel
// pixel buffers: generic 2D correlation with zero padding, the mean,
// sharpen, and Gaussian filters built on it, the (non-linear) median
// filter, and Sobel edge detection.
//
// All filters consume a 1-channel pixel.Buffer and produce a new one of the
// same dimensions; EachChannel lifts any of them to multi-channel images by
// applying the filter to each channel independently.
//
// # Border Policy
//
// Every neighborhood operation in this package extends the input with
// zero-valued samples: an input of HxW is conceptually padded to
// (H+2p)x(W+2p) with p = kernelSize/2 before the window slides over it.
// Border outputs therefore mix real samples with zeros. The same policy
// applies to the median filter even though it is not a convolution, so all
// filters agree on edge behavior.
//
// # Correlation Orientation
//
// Correlate applies the kernel in its stored orientation without flipping,
// i.e. true cross-correlation rather than mathematical convolution. The
// fixed kernels in this package (sharpen, Sobel) are written for that
// orientation.
//
// # Parallelism
//
// Output pixels depend only on read-only input and kernel data, so the
// row loops of Correlate and Median are split across goroutines with
// bild/parallel. Workers write to disjoint output rows; no locking is
// involved.
package filter
