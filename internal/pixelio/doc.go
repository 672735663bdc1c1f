// Package pixelio loads image files into pixel buffers and writes buffers
// back to disk.
//
// It is the boundary between the pure transforms in pixel/filter and the
// filesystem: decoding flattens every source image to a dense 3-channel RGB
// buffer (alpha dropped, palette and YCbCr sources expanded), and encoding
// accepts 1- or 3-channel buffers only. Supported read formats are PNG,
// JPEG, and GIF; the write format is chosen by file extension.
//
// The Cache type mirrors the loader cache of the original image tool
// server: decoded buffers are kept in memory keyed by path so repeated tool
// calls against the same file skip disk I/O. It is safe for concurrent use.
package pixelio
