// Package server implements the MCP (Model Context Protocol) server for pixel transform tools.
//
// This package provides a JSON-RPC 2.0 server that exposes point-wise
// arithmetic, grayscale conversion, and convolution-based filtering through
// the MCP protocol, enabling MCP-compatible clients to transform images on
// disk and receive the results inline.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Point-wise Arithmetic (saturating, per sample):
//   - image_add, image_subtract, image_multiply, image_divide, image_gamma
//
// Grayscale:
//   - gray_scale: Channel combination by luminosity, mean, or single channel
//
// Neighborhood Filters (per channel, zero-padded borders):
//   - mean_filter: Uniform box blur
//   - sharpen_filter: Fixed 3x3 sharpening kernel
//   - gaussian_filter: Normalized Gaussian blur
//   - median_filter: Order-statistic noise removal
//   - sobel: Directional gradient magnitude edge detection
//
// Every transform tool returns the result as a base64-encoded PNG and can
// optionally persist it to a caller-supplied output path.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process. Cached buffers
// are never mutated: every transform allocates a fresh output.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Validation failures (wrong channel count, zero divisor, unknown method or
// direction, malformed kernel parameters) are detected before any pixel work
// begins, so a failed call never leaves partial results.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
