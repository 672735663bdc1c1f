package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the input schema fragment shared by every tool: the image
// to operate on.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// outputProperty describes the optional destination path for transformed
// images.
func outputProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional path to write the transformed image to (format by extension)",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Point-wise Arithmetic
		{
			Name:        "image_add",
			Description: "Add a constant to every pixel, saturating at 255. Brightens the image.",
			InputSchema: arithmeticSchema("Constant to add to each sample"),
		},
		{
			Name:        "image_subtract",
			Description: "Subtract a constant from every pixel, saturating at 0. Darkens the image.",
			InputSchema: arithmeticSchema("Constant to subtract from each sample"),
		},
		{
			Name:        "image_multiply",
			Description: "Multiply every pixel by a constant factor, saturating at 255.",
			InputSchema: arithmeticSchema("Factor to multiply each sample by"),
		},
		{
			Name:        "image_divide",
			Description: "Floor-divide every pixel by a constant divisor. A zero divisor is an error.",
			InputSchema: arithmeticSchema("Divisor for each sample (must be non-zero)"),
		},
		{
			Name:        "image_gamma",
			Description: "Apply gamma correction: (sample/255)^gamma * 255. Gamma < 1 brightens, > 1 darkens.",
			InputSchema: arithmeticSchema("Gamma exponent"),
		},

		// Grayscale
		{
			Name:        "gray_scale",
			Description: "Convert an RGB image to grayscale (replicated across all 3 channels).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
					"method": map[string]interface{}{
						"type":        "string",
						"description": "Conversion method: luminosity (default), mean, RED, GREEN, or BLUE",
						"enum":        []string{"luminosity", "mean", "RED", "GREEN", "BLUE"},
					},
				},
				"required": []string{"path"},
			},
		},

		// Neighborhood Filters
		{
			Name:        "mean_filter",
			Description: "Blur the image with a uniform box filter, applied per channel with zero padding at the borders.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Kernel side length, odd and >= 1 (default 3)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sharpen_filter",
			Description: "Sharpen the image with the standard 3x3 kernel, applied per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "gaussian_filter",
			Description: "Blur the image with a normalized Gaussian kernel, applied per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
					"sigma": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian standard deviation, > 0 (default 1.0)",
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Kernel side length, odd and >= 1 (default 3)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "median_filter",
			Description: "Remove noise by replacing each pixel with its neighborhood median, applied per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
					"ksize": map[string]interface{}{
						"type":        "integer",
						"description": "Neighborhood side length, >= 1 (default 3)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sobel",
			Description: "Detect edges as the Euclidean magnitude of directional Sobel gradients, applied per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
					"angles": map[string]interface{}{
						"type":        "array",
						"description": "Gradient directions in degrees: \"0\", \"45\", \"90\", \"135\" (default [\"0\",\"90\"])",
						"items": map[string]interface{}{
							"type": "string",
							"enum": []string{"0", "45", "90", "135"},
						},
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// arithmeticSchema is the shared input schema for the five point-wise
// arithmetic tools, which differ only in the meaning of "value".
func arithmeticSchema(valueDescription string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path":   pathProperty(),
			"output": outputProperty(),
			"value": map[string]interface{}{
				"type":        "number",
				"description": valueDescription,
			},
		},
		"required": []string{"path", "value"},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
