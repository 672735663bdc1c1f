package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_add",
		"image_subtract",
		"image_multiply",
		"image_divide",
		"image_gamma",
		"gray_scale",
		"mean_filter",
		"sharpen_filter",
		"gaussian_filter",
		"median_filter",
		"sobel",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check all expected tools exist
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok || schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want object", schemaType)
			}

			// Every tool takes a path, and every tool requires it.
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties missing")
			}
			if _, ok := props["path"]; !ok {
				t.Error("path property missing")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Fatal("required list missing")
			}
			foundPath := false
			for _, r := range required {
				if r == "path" {
					foundPath = true
				}
			}
			if !foundPath {
				t.Error("path not in required list")
			}
		})
	}
}
