package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/ironsheep/pixel-ops-mcp/internal/filter"
	"github.com/ironsheep/pixel-ops-mcp/internal/pixel"
	"github.com/ironsheep/pixel-ops-mcp/internal/pixelio"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_add", "mean_filter").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the image from cache
//  4. Calls the appropriate pixel/filter function
//  5. Returns the transformed result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Point-wise Arithmetic
	case "image_add":
		return s.handleArithmetic(args, pixel.OpAdd)
	case "image_subtract":
		return s.handleArithmetic(args, pixel.OpSubtract)
	case "image_multiply":
		return s.handleArithmetic(args, pixel.OpMultiply)
	case "image_divide":
		return s.handleArithmetic(args, pixel.OpDivide)
	case "image_gamma":
		return s.handleArithmetic(args, pixel.OpGamma)

	// Grayscale
	case "gray_scale":
		return s.handleGrayscale(args)

	// Neighborhood Filters
	case "mean_filter":
		return s.handleMeanFilter(args)
	case "sharpen_filter":
		return s.handleSharpenFilter(args)
	case "gaussian_filter":
		return s.handleGaussianFilter(args)
	case "median_filter":
		return s.handleMedianFilter(args)
	case "sobel":
		return s.handleSobel(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// TransformResult contains a transformed image encoded as base64 PNG.
type TransformResult struct {
	// Width of the output image in pixels (same as input).
	Width int `json:"width"`

	// Height of the output image in pixels (same as input).
	Height int `json:"height"`

	// ImageBase64 is the transformed image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png" for transform results.
	MimeType string `json:"mime_type"`

	// SavedTo echoes the output path when the caller asked for the result
	// to be written to disk; empty otherwise.
	SavedTo string `json:"saved_to,omitempty"`
}

// transformResult encodes a buffer as a base64 PNG result, optionally
// persisting it to output first.
func transformResult(b *pixel.Buffer, output string) (*TransformResult, error) {
	if output != "" {
		if err := pixelio.Save(output, b); err != nil {
			return nil, err
		}
	}

	img, err := b.ToImage()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode result image: %w", err)
	}

	return &TransformResult{
		Width:       b.W,
		Height:      b.H,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		SavedTo:     output,
	}, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return pixelio.LoadInfo(s.cache, a.Path)
}

// DimensionsResult contains just the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{Width: b.W, Height: b.H}, nil
}

// === Point-wise Arithmetic Handlers ===

type arithmeticArgs struct {
	Path   string  `json:"path"`
	Value  float64 `json:"value"`
	Output string  `json:"output"`
}

func (s *Server) handleArithmetic(args json.RawMessage, op pixel.Op) (interface{}, error) {
	var a arithmeticArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := pixel.Apply(b, op, a.Value)
	if err != nil {
		return nil, err
	}
	return transformResult(out, a.Output)
}

// === Grayscale Handler ===

type grayscaleArgs struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Output string `json:"output"`
}

func (s *Server) handleGrayscale(args json.RawMessage) (interface{}, error) {
	var a grayscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Method == "" {
		a.Method = "luminosity"
	}
	method, err := pixel.ParseGrayscaleMethod(a.Method)
	if err != nil {
		return nil, err
	}
	b, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := pixel.Grayscale(b, method)
	if err != nil {
		return nil, err
	}
	return transformResult(out, a.Output)
}

// === Neighborhood Filter Handlers ===

type meanFilterArgs struct {
	Path   string `json:"path"`
	Size   int    `json:"size"`
	Output string `json:"output"`
}

func (s *Server) handleMeanFilter(args json.RawMessage) (interface{}, error) {
	var a meanFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = 3
	}
	return s.applyPerChannel(a.Path, a.Output, func(p *pixel.Buffer) (*pixel.Buffer, error) {
		return filter.Mean(p, a.Size)
	})
}

type sharpenFilterArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

func (s *Server) handleSharpenFilter(args json.RawMessage) (interface{}, error) {
	var a sharpenFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.applyPerChannel(a.Path, a.Output, filter.Sharpen)
}

type gaussianFilterArgs struct {
	Path   string  `json:"path"`
	Sigma  float64 `json:"sigma"`
	Size   int     `json:"size"`
	Output string  `json:"output"`
}

func (s *Server) handleGaussianFilter(args json.RawMessage) (interface{}, error) {
	var a gaussianFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Sigma == 0 {
		a.Sigma = 1.0
	}
	if a.Size == 0 {
		a.Size = 3
	}
	return s.applyPerChannel(a.Path, a.Output, func(p *pixel.Buffer) (*pixel.Buffer, error) {
		return filter.Gaussian(p, a.Sigma, a.Size)
	})
}

type medianFilterArgs struct {
	Path   string `json:"path"`
	KSize  int    `json:"ksize"`
	Output string `json:"output"`
}

func (s *Server) handleMedianFilter(args json.RawMessage) (interface{}, error) {
	var a medianFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.KSize == 0 {
		a.KSize = 3
	}
	return s.applyPerChannel(a.Path, a.Output, func(p *pixel.Buffer) (*pixel.Buffer, error) {
		return filter.Median(p, a.KSize)
	})
}

type sobelArgs struct {
	Path   string   `json:"path"`
	Angles []string `json:"angles"`
	Output string   `json:"output"`
}

func (s *Server) handleSobel(args json.RawMessage) (interface{}, error) {
	var a sobelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	directions := filter.DefaultDirections
	if a.Angles != nil {
		directions = make([]filter.Direction, 0, len(a.Angles))
		for _, angle := range a.Angles {
			d, err := filter.ParseDirection(angle)
			if err != nil {
				return nil, err
			}
			directions = append(directions, d)
		}
	}

	return s.applyPerChannel(a.Path, a.Output, func(p *pixel.Buffer) (*pixel.Buffer, error) {
		return filter.Sobel(p, directions)
	})
}

// applyPerChannel loads an image from the cache, runs a single-channel
// filter over each of its channels, and packages the result.
func (s *Server) applyPerChannel(path, output string, fn filter.PlaneFunc) (interface{}, error) {
	b, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	out, err := filter.EachChannel(b, fn)
	if err != nil {
		return nil, err
	}
	return transformResult(out, output)
}
