package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// tuningProperties describes the optional fitting overrides shared by the
// training tools. Omitted values use the production defaults.
func tuningProperties() map[string]interface{} {
	return map[string]interface{}{
		"iterate_step": map[string]interface{}{
			"type":        "number",
			"description": "Intercept shift per search round. Default 0.31",
			"default":     0.31,
		},
		"hue_tol": map[string]interface{}{
			"type":        "number",
			"description": "Hue boundary extension factor. Default 1.0",
			"default":     1.0,
		},
		"sat_tol": map[string]interface{}{
			"type":        "number",
			"description": "Saturation boundary extension factor. Default 1.0",
			"default":     1.0,
		},
		"min_sat": map[string]interface{}{
			"type":        "number",
			"description": "Minimum saturation floor for the inner boundary. Default 2.0",
			"default":     2.0,
		},
		"max_sat_ratio": map[string]interface{}{
			"type":        "number",
			"description": "Extension multiplier for the outer saturation boundary. Default 2.0",
			"default":     2.0,
		},
		"outlier_ratio": map[string]interface{}{
			"type":        "number",
			"description": "Fraction of samples a boundary may leave outside. Default 0.1",
			"default":     0.1,
		},
		"max_samples": map[string]interface{}{
			"type":        "integer",
			"description": "Requested sample buffer size. Default 32768",
			"default":     32768,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	trainProperties := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"class": map[string]interface{}{
			"type":        "integer",
			"description": "Class tag to train (1-7)",
			"minimum":     1,
			"maximum":     7,
		},
		"region": map[string]interface{}{
			"type":        "object",
			"description": "Sample rectangle in frame coordinates",
			"properties": map[string]interface{}{
				"x":      map[string]interface{}{"type": "integer"},
				"y":      map[string]interface{}{"type": "integer"},
				"width":  map[string]interface{}{"type": "integer"},
				"height": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"x", "y", "width", "height"},
		},
	}
	growProperties := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Seed pixel X coordinate (0-based)",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Seed pixel Y coordinate (0-based)",
		},
	}
	for name, prop := range tuningProperties() {
		trainProperties[name] = prop
		growProperties[name] = prop
	}

	return []Tool{
		// Frame Handling
		{
			Name:        "frame_load",
			Description: "Load an image file as a Bayer-mosaic frame and return its dimensions and sample capacity. The frame is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "frame_dimensions",
			Description: "Get the width and height of a loaded frame.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Model Building
		{
			Name:        "color_train",
			Description: "Fit a four-line color model from a frame region and store it under a class tag. Returns the model, its goodness score (0-100), and a hex swatch of the mean color.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": trainProperties,
				"required":   []string{"path", "class", "region"},
			},
		},
		{
			Name:        "region_grow",
			Description: "Grow a sample rectangle outward from a seed pixel until the surrounding color diverges. Use the result as the region for color_train.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": growProperties,
				"required":   []string{"path", "x", "y"},
			},
		},
		{
			Name:        "model_describe",
			Description: "Report the stored model for a class: boundary lines, goodness score, sample count, mean chrominance, and hex swatch.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"class": map[string]interface{}{
						"type":        "integer",
						"description": "Class tag (1-7)",
						"minimum":     1,
						"maximum":     7,
					},
				},
				"required": []string{"class"},
			},
		},
		{
			Name:        "chroma_classify",
			Description: "Test a chrominance pair against a stored model and the classification table.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"class": map[string]interface{}{
						"type":        "integer",
						"description": "Class tag (1-7)",
						"minimum":     1,
						"maximum":     7,
					},
					"u": map[string]interface{}{
						"type":        "integer",
						"description": "Red-green chrominance component (-128 to 127)",
					},
					"v": map[string]interface{}{
						"type":        "integer",
						"description": "Blue-green chrominance component (-128 to 127)",
					},
				},
				"required": []string{"class", "u", "v"},
			},
		},

		// Lookup Table
		{
			Name:        "lut_populate",
			Description: "Fill the classification table for a class. The polygon strategy tags entries inside the stored model without stealing from higher-priority classes; the brightness strategy tags every sufficiently bright pair.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"class": map[string]interface{}{
						"type":        "integer",
						"description": "Class tag (1-7)",
						"minimum":     1,
						"maximum":     7,
					},
					"strategy": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"polygon", "brightness"},
						"description": "Population strategy. Default polygon",
						"default":     "polygon",
					},
				},
				"required": []string{"class"},
			},
		},
		{
			Name:        "lut_clear",
			Description: "Reset classification table entries. Class 0 clears the entire table; 1-7 clears only that class's entries.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"class": map[string]interface{}{
						"type":        "integer",
						"description": "Class tag to clear, or 0 for all. Default 0",
						"minimum":     0,
						"maximum":     7,
						"default":     0,
					},
				},
			},
		},
		{
			Name:        "lut_lookup",
			Description: "Read the class tag stored for a chrominance pair.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"u": map[string]interface{}{
						"type":        "integer",
						"description": "Red-green chrominance component (-128 to 127)",
					},
					"v": map[string]interface{}{
						"type":        "integer",
						"description": "Blue-green chrominance component (-128 to 127)",
					},
				},
				"required": []string{"u", "v"},
			},
		},
		{
			Name:        "lut_export_png",
			Description: "Render the classification table as a 256x256 base64-encoded PNG, one pixel per (u, v) pair, colored by class.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
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
